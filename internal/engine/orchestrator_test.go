package engine

import "testing"

func TestIssueSupersedesSameSlot(t *testing.T) {
	o := NewOrchestrator()
	defer o.Close()

	first := o.Issue(SlotFetch)
	second := o.Issue(SlotFetch)

	if !first.Cancelled() {
		t.Error("issuing into an occupied slot must cancel the prior call")
	}
	if second.Cancelled() {
		t.Error("the superseding call must be live")
	}
}

func TestSlotsAreIndependent(t *testing.T) {
	o := NewOrchestrator()
	defer o.Close()

	fetch := o.Issue(SlotFetch)
	save := o.Issue(SlotSave)
	o.Issue(SlotSearch)

	o.Cancel(SlotSave)
	if fetch.Cancelled() {
		t.Error("cancelling save must not touch fetch")
	}
	if !save.Cancelled() {
		t.Error("Cancel(SlotSave) must cancel the save handle")
	}
}

func TestDoneReleasesSlot(t *testing.T) {
	o := NewOrchestrator()
	defer o.Close()

	first := o.Issue(SlotSave)
	first.Done()

	second := o.Issue(SlotSave)
	if second.Cancelled() {
		t.Error("slot released by Done must accept a fresh live handle")
	}
}

func TestCloseCancelsEverything(t *testing.T) {
	o := NewOrchestrator()

	fetch := o.Issue(SlotFetch)
	search := o.Issue(SlotSearch)
	o.Close()

	if !fetch.Cancelled() || !search.Cancelled() {
		t.Error("Close must cancel every live handle")
	}

	// handles issued after Close are born cancelled
	late := o.Issue(SlotFetch)
	if !late.Cancelled() {
		t.Error("a handle issued after Close must be cancelled already")
	}
}
