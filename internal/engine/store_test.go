package engine

import (
	"testing"
)

func TestStoreAppliesInDispatchOrder(t *testing.T) {
	s := NewStore(NewSearchState(), NewReducer(nil))

	var seen []Kind
	s.Subscribe(func(_, _ ViewState, act Action) {
		seen = append(seen, act.Kind)
	})

	s.Dispatch(SearchTermChanged("a"))
	s.Dispatch(SearchTermChanged("ab"))
	s.Dispatch(SearchTriggered())

	want := []Kind{KindSearchTermChanged, KindSearchTermChanged, KindSearchTriggered}
	if len(seen) != len(want) {
		t.Fatalf("saw %d actions, want %d", len(seen), len(want))
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("action %d = %v, want %v", i, seen[i], want[i])
		}
	}
	if got := s.State().Search.Term; got != "ab" {
		t.Errorf("term = %q, want %q", got, "ab")
	}
}

func TestStoreReentrantDispatchIsQueued(t *testing.T) {
	s := NewStore(NewEditorState("42"), NewReducer(nil))

	var order []Kind
	s.Subscribe(func(_, next ViewState, act Action) {
		order = append(order, act.Kind)
		// mirror the scheduler: a submit transition immediately dispatches
		// the follow-up action from inside the listener
		if act.Kind == KindSubmitRequested && next.SubmitGeneration == 1 {
			s.Dispatch(SaveStarted())
		}
	})

	s.Dispatch(FieldChanged(FieldTitle, "t"))
	s.Dispatch(FieldChanged(FieldBody, "b"))
	s.Dispatch(SubmitRequested())

	want := []Kind{KindFieldChanged, KindFieldChanged, KindSubmitRequested, KindSaveStarted}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
	if got := s.State().Lifecycle; got != Saving {
		t.Errorf("lifecycle = %v, want %v", got, Saving)
	}
}

func TestStoreListenerSeesPrevAndNext(t *testing.T) {
	s := NewStore(NewSearchState(), NewReducer(nil))

	var prevGen, nextGen int
	s.Subscribe(func(prev, next ViewState, act Action) {
		if act.Kind == KindSearchTriggered {
			prevGen = prev.Search.RequestGeneration
			nextGen = next.Search.RequestGeneration
		}
	})

	s.Dispatch(SearchTermChanged("dogs"))
	s.Dispatch(SearchTriggered())

	if prevGen != 0 || nextGen != 1 {
		t.Errorf("listener saw generations prev=%d next=%d, want prev=0 next=1", prevGen, nextGen)
	}
}
