package tui

import "testing"

func TestParsePath(t *testing.T) {
	tests := []struct {
		path     string
		wantName string
		wantArg  string
	}{
		{"/", routeHome, ""},
		{"", routeHome, ""},
		{"/post/42", routePost, "42"},
		{"post/42", routePost, "42"},
		{"/post/42/edit", routeEdit, "42"},
		{"/profile/bob", routeProfile, "bob"},
		{"/login", routeLogin, ""},
		{"/post", routeHome, ""},
		{"/bogus/thing", routeHome, ""},
		{"/post/42/delete", routeHome, ""},
	}
	for _, tt := range tests {
		name, arg := parsePath(tt.path)
		if name != tt.wantName || arg != tt.wantArg {
			t.Errorf("parsePath(%q) = (%q, %q), want (%q, %q)",
				tt.path, name, arg, tt.wantName, tt.wantArg)
		}
	}
}

func TestFormatDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2020-04-09T17:45:00.000Z", "9-4-2020"},
		{"2026-12-01T00:00:00Z", "1-12-2026"},
		{"not a date", "not a date"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := formatDate(tt.in); got != tt.want {
			t.Errorf("formatDate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFuzzyMatchScore(t *testing.T) {
	tests := []struct {
		label string
		query string
		want  bool
	}{
		{"Go Home", "home", true},
		{"Go Home", "gh", true},
		{"Go Home", "xyz", false},
		{"Log In", "lgin", true},
		{"Quit", "", true},
		{"Search Posts", "sp", true},
		{"Search Posts", "stsop", false},
	}
	for _, tt := range tests {
		got, _ := fuzzyMatchScore(tt.label, tt.query)
		if got != tt.want {
			t.Errorf("fuzzyMatchScore(%q, %q) = %v, want %v", tt.label, tt.query, got, tt.want)
		}
	}
}

func TestFuzzyMatchScoreRanking(t *testing.T) {
	_, prefix := fuzzyMatchScore("Quit", "qu")
	_, scattered := fuzzyMatchScore("Quick Update", "qu")
	if prefix <= scattered {
		t.Errorf("prefix+closeness should outrank a longer label: %d vs %d", prefix, scattered)
	}

	_, consecutive := fuzzyMatchScore("Search Posts", "sea")
	_, sparse := fuzzyMatchScore("Set All Items", "sea")
	if consecutive <= sparse {
		t.Errorf("consecutive run should outrank sparse match: %d vs %d", consecutive, sparse)
	}
}

func TestCommandMatchScore(t *testing.T) {
	cmd := command{id: "nav:home", label: "Go Home", description: "Return to the feed"}

	if ok, _ := commandMatchScore(cmd, "feed"); !ok {
		t.Error("description should be matchable")
	}
	if ok, _ := commandMatchScore(cmd, "nav"); !ok {
		t.Error("id should be matchable")
	}
	if ok, _ := commandMatchScore(cmd, "zzz"); ok {
		t.Error("no field matches zzz")
	}

	_, exact := commandMatchScore(command{id: "app:quit", label: "Quit"}, "quit")
	_, partial := commandMatchScore(command{id: "nav:quick", label: "Quick Nav"}, "quit")
	if exact <= partial {
		t.Errorf("exact label match should win: %d vs %d", exact, partial)
	}
}
