package engine

import "testing"

func TestRuleSetValidate(t *testing.T) {
	rules := DefaultRules()
	tests := []struct {
		name    string
		field   string
		value   string
		wantErr bool
		wantMsg string
	}{
		{name: "title empty", field: FieldTitle, value: "", wantErr: true, wantMsg: "no title provided"},
		{name: "title whitespace", field: FieldTitle, value: " \t ", wantErr: true, wantMsg: "no title provided"},
		{name: "title ok", field: FieldTitle, value: "a", wantErr: false},
		{name: "body empty", field: FieldBody, value: "", wantErr: true, wantMsg: "no body provided"},
		{name: "body ok", field: FieldBody, value: "words", wantErr: false},
		{name: "unregistered field passes", field: "tags", value: "", wantErr: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := rules.Validate(tt.field, tt.value)
			if v.HasErrors != tt.wantErr {
				t.Errorf("HasErrors = %v, want %v", v.HasErrors, tt.wantErr)
			}
			if v.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", v.Message, tt.wantMsg)
			}
		})
	}
}

func TestValidateIsDeterministic(t *testing.T) {
	rules := DefaultRules()
	for i := 0; i < 3; i++ {
		v := rules.Validate(FieldTitle, "")
		if !v.HasErrors || v.Message != "no title provided" {
			t.Fatalf("run %d: %+v", i, v)
		}
	}
}
