package engine

import "github.com/scribeapp/scribe/internal/api"

// Kind tags an Action. The set is closed; the reducer treats kinds it does
// not recognise as a no-op rather than an error.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindFieldChanged
	KindFieldBlurred
	KindSubmitRequested
	KindFetchCompleted
	KindFetchNotFound
	KindSaveStarted
	KindSaveFinished
	KindSaveFailed
	KindSearchTermChanged
	KindSearchTriggered
	KindSearchResultsArrived
)

func (k Kind) String() string {
	switch k {
	case KindFieldChanged:
		return "field-changed"
	case KindFieldBlurred:
		return "field-blurred"
	case KindSubmitRequested:
		return "submit-requested"
	case KindFetchCompleted:
		return "fetch-completed"
	case KindFetchNotFound:
		return "fetch-not-found"
	case KindSaveStarted:
		return "save-started"
	case KindSaveFinished:
		return "save-finished"
	case KindSaveFailed:
		return "save-failed"
	case KindSearchTermChanged:
		return "search-term-changed"
	case KindSearchTriggered:
		return "search-triggered"
	case KindSearchResultsArrived:
		return "search-results-arrived"
	}
	return "unknown"
}

// Action is the only input the reducer accepts. Payload fields are used per
// kind; unused ones stay zero.
type Action struct {
	Kind       Kind
	Field      string     // field-changed, field-blurred
	Value      string     // new field value or search term
	Post       *api.Post  // fetch-completed
	Results    []api.Post // search-results-arrived
	Generation int        // search-results-arrived: generation at issue time
}

func FieldChanged(name, value string) Action {
	return Action{Kind: KindFieldChanged, Field: name, Value: value}
}

func FieldBlurred(name string) Action {
	return Action{Kind: KindFieldBlurred, Field: name}
}

func SubmitRequested() Action {
	return Action{Kind: KindSubmitRequested}
}

func FetchCompleted(post *api.Post) Action {
	return Action{Kind: KindFetchCompleted, Post: post}
}

func FetchNotFound() Action {
	return Action{Kind: KindFetchNotFound}
}

func SaveStarted() Action {
	return Action{Kind: KindSaveStarted}
}

func SaveFinished() Action {
	return Action{Kind: KindSaveFinished}
}

func SaveFailed() Action {
	return Action{Kind: KindSaveFailed}
}

func SearchTermChanged(term string) Action {
	return Action{Kind: KindSearchTermChanged, Value: term}
}

func SearchTriggered() Action {
	return Action{Kind: KindSearchTriggered}
}

func SearchResultsArrived(results []api.Post, generation int) Action {
	return Action{Kind: KindSearchResultsArrived, Results: results, Generation: generation}
}
