package engine

import "strings"

// Registered field names for editor views.
const (
	FieldTitle = "title"
	FieldBody  = "body"
)

// Verdict is the result of validating one field.
type Verdict struct {
	HasErrors bool
	Message   string
}

// Rule checks a raw value. ok=false carries the user-facing message.
type Rule func(value string) (ok bool, message string)

// Required fails on values that are empty after trimming.
func Required(message string) Rule {
	return func(value string) (bool, string) {
		if strings.TrimSpace(value) == "" {
			return false, message
		}
		return true, ""
	}
}

// RuleSet maps field name to its rules, evaluated in order; the first
// failure wins.
type RuleSet map[string][]Rule

// DefaultRules is the editor rule set.
func DefaultRules() RuleSet {
	return RuleSet{
		FieldTitle: {Required("no title provided")},
		FieldBody:  {Required("no body provided")},
	}
}

// Validate evaluates the rules for one field. Stateless and deterministic;
// fields with no registered rules always pass.
func (rs RuleSet) Validate(name, value string) Verdict {
	for _, rule := range rs[name] {
		if ok, msg := rule(value); !ok {
			return Verdict{HasErrors: true, Message: msg}
		}
	}
	return Verdict{}
}
