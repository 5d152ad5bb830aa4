package state

import (
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestStoreSnapshotIsCopy(t *testing.T) {
	store := NewStore()
	if got := store.Snapshot().Phase; got != BOOTING {
		t.Fatalf("initial phase = %v, want booting", got)
	}
	store.AddOutput(Output{Name: "a_16x16.png", Size: 16, Bytes: 10})
	snap := store.Snapshot()
	snap.Outputs[0].Name = "mutated"

	want := []Output{{Name: "a_16x16.png", Size: 16, Bytes: 10}}
	if d := cmp.Diff(want, store.Snapshot().Outputs); d != "" {
		t.Errorf("outputs changed through snapshot (-want +got):\n%s", d)
	}
}

func TestStoreFail(t *testing.T) {
	store := NewStore()
	store.SetPhase(EXPORTING)
	store.Fail(errors.New("disk full"))
	snap := store.Snapshot()
	if snap.Phase != ERROR || snap.Err != "disk full" {
		t.Errorf("snapshot = %+v", snap)
	}
	if snap.Phase.String() != "error" {
		t.Errorf("Phase.String() = %q", snap.Phase.String())
	}
}

func TestStoreConcurrentAdd(t *testing.T) {
	store := NewStore()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			store.AddOutput(Output{Size: i})
			_ = store.Snapshot()
		}(i)
	}
	wg.Wait()
	if n := len(store.Snapshot().Outputs); n != 8 {
		t.Errorf("outputs = %d, want 8", n)
	}
}
