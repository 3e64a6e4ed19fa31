package todo

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"tasklist/storage"
)

// recordingSaver remembers every list it was asked to save
type recordingSaver struct {
	saved [][]storage.Task
	err   error
}

func (r *recordingSaver) Save(tasks []storage.Task) error {
	r.saved = append(r.saved, tasks)
	return r.err
}

func TestSubscribeReceivesEvents(t *testing.T) {
	s := newTestStore(t)

	var got []EventType
	unsubscribe := s.Subscribe(func(e Event) { got = append(got, e.Type) })

	a := mustAdd(t, s, "A")
	s.Toggle(a.ID)
	s.BeginEdit(a.ID)
	s.SetDraft("A2")
	s.CancelEdit()
	s.BeginEdit(a.ID)
	s.CommitEdit()
	s.ClearCompleted()
	s.Delete(a.ID)

	want := []EventType{
		EventTasksChanged, // add
		EventTasksChanged, // toggle
		EventEditChanged,  // begin
		EventEditChanged,  // draft
		EventEditChanged,  // cancel
		EventEditChanged,  // begin
		EventTasksChanged, // commit
		EventTasksChanged, // clear
		EventTasksChanged, // delete
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}

	unsubscribe()
	mustAdd(t, s, "B")
	if len(got) != len(want) {
		t.Errorf("Unsubscribed observer still called: %d events", len(got))
	}
}

func TestEventCarriesStateAfterMutation(t *testing.T) {
	s := newTestStore(t)

	var last Event
	s.Subscribe(func(e Event) { last = e })

	a := mustAdd(t, s, "A")
	if diff := cmp.Diff([]storage.Task{a}, last.Tasks); diff != "" {
		t.Errorf("event tasks mismatch (-want +got):\n%s", diff)
	}

	s.BeginEdit(a.ID)
	if last.Edit == nil || last.Edit.TargetID != a.ID {
		t.Errorf("Expected edit session in event, got %+v", last.Edit)
	}

	// Event payloads are copies
	last.Edit.Draft = "tampered"
	if session, _ := s.Edit(); session.Draft != "A" {
		t.Errorf("Event should not alias the session, got %q", session.Draft)
	}
}

func TestObserversRunInSubscriptionOrder(t *testing.T) {
	s := newTestStore(t)

	var order []string
	s.Subscribe(func(Event) { order = append(order, "first") })
	s.Subscribe(func(Event) { order = append(order, "second") })

	mustAdd(t, s, "A")

	if diff := cmp.Diff([]string{"first", "second"}, order); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestAutoSaveOnlyOnListChanges(t *testing.T) {
	s := newTestStore(t)
	saver := &recordingSaver{}
	AutoSave(s, saver)

	a := mustAdd(t, s, "A")
	s.Add("   ")
	s.BeginEdit(a.ID)
	s.SetDraft("A2")
	s.CancelEdit()

	if len(saver.saved) != 1 {
		t.Fatalf("Expected 1 save (add only), got %d", len(saver.saved))
	}

	s.Toggle(a.ID)
	if len(saver.saved) != 2 {
		t.Fatalf("Expected save after toggle, got %d", len(saver.saved))
	}
	if !saver.saved[1][0].Completed {
		t.Error("Saved list should reflect the toggle")
	}
}

func TestAutoSaveSwallowsErrors(t *testing.T) {
	s := newTestStore(t)
	saver := &recordingSaver{err: errors.New("quota exceeded")}
	AutoSave(s, saver)

	a := mustAdd(t, s, "A")
	s.Toggle(a.ID)

	if len(saver.saved) != 2 {
		t.Errorf("Expected 2 save attempts, got %d", len(saver.saved))
	}
	if got, _ := s.Get(a.ID); !got.Completed {
		t.Error("In-memory state should survive a failed save")
	}
}

func TestAutoSaveRoundTripThroughSnapshot(t *testing.T) {
	kv, err := storage.NewJSONStore(filepath.Join(t.TempDir(), "tasks.json"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer kv.Close()
	snap := storage.NewSnapshot(kv, "")

	s := NewStore(snap.Load(), WithClock(frozenClock))
	AutoSave(s, snap)

	mustAdd(t, s, "A")
	b := mustAdd(t, s, "B")
	s.Toggle(b.ID)

	// A fresh session sees the same list
	reloaded := NewStore(snap.Load())
	if diff := cmp.Diff(s.Tasks(), reloaded.Tasks()); diff != "" {
		t.Errorf("reloaded list mismatch (-want +got):\n%s", diff)
	}
}
