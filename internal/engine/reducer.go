package engine

import "strings"

// Reducer is the pure state-transition function (state, action) → state.
// It never performs I/O and never mutates its input; callers may apply it
// any number of times with the same inputs and get the same output.
type Reducer struct {
	Rules RuleSet
}

func NewReducer(rules RuleSet) Reducer {
	if rules == nil {
		rules = DefaultRules()
	}
	return Reducer{Rules: rules}
}

func (r Reducer) Reduce(s ViewState, a Action) ViewState {
	switch a.Kind {
	case KindFieldChanged:
		f := s.Fields[a.Field]
		f.Value = a.Value
		// typing clears the error; only a validation pass may set it
		f.HasErrors = false
		f.Message = ""
		return s.withField(a.Field, f)

	case KindFieldBlurred:
		f := s.Fields[a.Field]
		v := r.Rules.Validate(a.Field, f.Value)
		f.HasErrors = v.HasErrors
		f.Message = v.Message
		return s.withField(a.Field, f)

	case KindSubmitRequested:
		// Re-validate everything: blur-time results are not trusted because
		// a field may never have been blurred.
		next := make(map[string]Field, len(s.Fields))
		clean := true
		for name, f := range s.Fields {
			v := r.Rules.Validate(name, f.Value)
			f.HasErrors = v.HasErrors
			f.Message = v.Message
			next[name] = f
			if v.HasErrors {
				clean = false
			}
		}
		s.Fields = next
		if clean {
			s.SubmitGeneration++
		}
		return s

	case KindFetchCompleted:
		if a.Post == nil {
			return s
		}
		s = s.withField(FieldTitle, Field{Value: a.Post.Title})
		s = s.withField(FieldBody, Field{Value: a.Post.Body})
		s.Lifecycle = Ready
		return s

	case KindFetchNotFound:
		s.Lifecycle = NotFound
		return s

	case KindSaveStarted:
		s.Lifecycle = Saving
		return s

	case KindSaveFinished:
		s.Lifecycle = Ready
		return s

	case KindSaveFailed:
		s.Lifecycle = SaveError
		return s

	case KindSearchTermChanged:
		s.Search.Term = a.Value
		if strings.TrimSpace(a.Value) == "" {
			s.Search.Visibility = Hidden
		}
		return s

	case KindSearchTriggered:
		if strings.TrimSpace(s.Search.Term) == "" {
			return s
		}
		s.Search.RequestGeneration++
		s.Search.Visibility = Loading
		return s

	case KindSearchResultsArrived:
		if a.Generation != s.Search.RequestGeneration {
			// stale response from a superseded request
			return s
		}
		s.Search.Results = a.Results
		s.Search.Visibility = Results
		return s
	}

	// Unknown kinds are a deliberate no-op.
	return s
}
