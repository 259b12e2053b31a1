package engine

// View bundles one store with its scheduler: the unit a screen mounts.
// Lifecycle is Start once, actions until Close, then the instance is
// discarded; state never survives an unmount.
type View struct {
	store *Store
	sched *Scheduler
}

// NewView builds a view instance. The returned view is inert until Start.
func NewView(cfg Config) *View {
	var initial ViewState
	switch cfg.Mode {
	case ModeSearch:
		initial = NewSearchState()
	default:
		initial = NewEditorState(cfg.ResourceID)
	}
	store := NewStore(initial, NewReducer(nil))
	sched := newScheduler(store, cfg)
	store.Subscribe(sched.react)
	return &View{store: store, sched: sched}
}

// Store exposes the underlying store, mainly so hosts can subscribe for
// re-render notifications.
func (v *View) Store() *Store { return v.store }

// State returns the current state snapshot.
func (v *View) State() ViewState { return v.store.State() }

// Dispatch feeds one action into the reducer.
func (v *View) Dispatch(act Action) { v.store.Dispatch(act) }

// Start runs the mount effect (fetch, for resource-bound views).
func (v *View) Start() { v.sched.start() }

// Close cancels every pending timer and in-flight request. After Close no
// response may mutate observable state.
func (v *View) Close() { v.sched.close() }
