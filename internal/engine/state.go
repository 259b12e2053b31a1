// Package engine is the asynchronous state-orchestration core every
// interactive view is built on: a pure reducer over an immutable ViewState,
// plus a lifecycle-bound effect scheduler that issues cancellable network
// requests, debounces search input, and feeds results back as actions.
package engine

import "github.com/scribeapp/scribe/internal/api"

// Lifecycle is the fetch/save state machine of a resource-bound view.
//
//	Idle → Fetching → {Ready, NotFound}
//	Ready → Saving → {Ready, SaveError}; SaveError → Saving (resubmit)
type Lifecycle uint8

const (
	Idle Lifecycle = iota
	Fetching
	Ready
	NotFound
	Saving
	SaveError
)

func (l Lifecycle) String() string {
	switch l {
	case Idle:
		return "idle"
	case Fetching:
		return "fetching"
	case Ready:
		return "ready"
	case NotFound:
		return "not-found"
	case Saving:
		return "saving"
	case SaveError:
		return "save-error"
	}
	return "unknown"
}

// Field is one editable input. HasErrors is only ever set by a validation
// pass; a raw value change clears it.
type Field struct {
	Value     string
	HasErrors bool
	Message   string
}

// Visibility is the search overlay's result-area state.
type Visibility uint8

const (
	Hidden Visibility = iota
	Loading
	Results
)

func (v Visibility) String() string {
	switch v {
	case Hidden:
		return "hidden"
	case Loading:
		return "loading"
	case Results:
		return "results"
	}
	return "unknown"
}

// SearchState is the live-search portion of a ViewState. RequestGeneration
// identifies the current request; responses stamped with an older generation
// are discarded by the reducer.
type SearchState struct {
	Term              string
	Results           []api.Post
	Visibility        Visibility
	RequestGeneration int
}

// ViewState is the immutable state tree of one view instance. Reduction
// copies the value and clones only the touched subtree, so untouched fields
// keep reference equality across transitions.
type ViewState struct {
	Fields           map[string]Field
	Lifecycle        Lifecycle
	ResourceID       string
	SubmitGeneration int
	Search           SearchState
}

// NewEditorState is the mount state of an editor view bound to a resource:
// the fetch effect fires immediately, so it is born Fetching.
func NewEditorState(resourceID string) ViewState {
	return ViewState{
		Fields: map[string]Field{
			FieldTitle: {},
			FieldBody:  {},
		},
		Lifecycle:  Fetching,
		ResourceID: resourceID,
	}
}

// NewSearchState is the mount state of a search overlay.
func NewSearchState() ViewState {
	return ViewState{Lifecycle: Idle}
}

// withField returns a copy of s whose Fields map is cloned with one entry
// replaced. The only place Fields is ever written.
func (s ViewState) withField(name string, f Field) ViewState {
	next := make(map[string]Field, len(s.Fields))
	for k, v := range s.Fields {
		next[k] = v
	}
	next[name] = f
	s.Fields = next
	return s
}
