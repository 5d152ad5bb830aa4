package state

import "sync"

type Phase int

const (
	BOOTING Phase = iota
	RENDERING
	EXPORTING
	DONE
	ERROR
)

func (p Phase) String() string {
	switch p {
	case BOOTING:
		return "booting"
	case RENDERING:
		return "rendering"
	case EXPORTING:
		return "exporting"
	case DONE:
		return "done"
	case ERROR:
		return "error"
	default:
		return "unknown"
	}
}

// Output is one file written by an export run.
type Output struct {
	Name  string
	Path  string
	Size  int // edge length in pixels
	Bytes int64
}

type State struct {
	Phase   Phase
	Outputs []Output
	Err     string
}

type Store struct {
	mu    sync.RWMutex
	state State
}

func NewStore() *Store {
	return &Store{state: State{Phase: BOOTING}}
}

func (store *Store) Snapshot() State {
	store.mu.RLock()
	defer store.mu.RUnlock()
	snap := store.state
	snap.Outputs = append([]Output(nil), store.state.Outputs...)
	return snap
}

func (store *Store) SetPhase(phase Phase) {
	store.mu.Lock()
	store.state.Phase = phase
	store.mu.Unlock()
}

func (store *Store) AddOutput(out Output) {
	store.mu.Lock()
	store.state.Outputs = append(store.state.Outputs, out)
	store.mu.Unlock()
}

// Fail moves the store to ERROR and records err.
func (store *Store) Fail(err error) {
	store.mu.Lock()
	store.state.Phase = ERROR
	if err != nil {
		store.state.Err = err.Error()
	}
	store.mu.Unlock()
}
