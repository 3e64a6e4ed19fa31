package todo

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEditCommit(t *testing.T) {
	s := newTestStore(t)
	a := mustAdd(t, s, "A")

	if !s.BeginEdit(a.ID) {
		t.Fatal("BeginEdit should succeed")
	}
	session, ok := s.Edit()
	if !ok {
		t.Fatal("Expected an open session")
	}
	if diff := cmp.Diff(EditSession{TargetID: a.ID, Draft: "A"}, session); diff != "" {
		t.Errorf("session mismatch (-want +got):\n%s", diff)
	}
	if !s.Editing(a.ID) {
		t.Error("Editing(a) should be true")
	}

	s.SetDraft("Apples and pears")
	if !s.CommitEdit() {
		t.Fatal("CommitEdit should succeed")
	}

	if _, ok := s.Edit(); ok {
		t.Error("Commit should close the session")
	}
	if got, _ := s.Get(a.ID); got.Text != "Apples and pears" {
		t.Errorf("Expected committed text, got %q", got.Text)
	}
}

func TestCommitKeepsDraftVerbatim(t *testing.T) {
	tests := []struct {
		name  string
		draft string
	}{
		{"padded", "  padded  "},
		{"empty", ""},
		{"whitespace", "   "},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestStore(t)
			a := mustAdd(t, s, "A")

			s.BeginEdit(a.ID)
			s.SetDraft(tc.draft)
			s.CommitEdit()

			if got, _ := s.Get(a.ID); got.Text != tc.draft {
				t.Errorf("Expected draft %q stored verbatim, got %q", tc.draft, got.Text)
			}
			if s.Len() != 1 {
				t.Errorf("Commit should never remove the task, got %d tasks", s.Len())
			}
		})
	}
}

func TestCancelEdit(t *testing.T) {
	s := newTestStore(t)
	a := mustAdd(t, s, "A")

	s.BeginEdit(a.ID)
	s.SetDraft("changed")
	if !s.CancelEdit() {
		t.Fatal("CancelEdit should succeed")
	}

	if _, ok := s.Edit(); ok {
		t.Error("Cancel should close the session")
	}
	if got, _ := s.Get(a.ID); got.Text != "A" {
		t.Errorf("Cancel should not apply the draft, got %q", got.Text)
	}
}

func TestIdleEditOperationsAreNoOps(t *testing.T) {
	s := newTestStore(t)
	a := mustAdd(t, s, "A")

	if s.SetDraft("x") {
		t.Error("SetDraft while idle should report false")
	}
	if s.CommitEdit() {
		t.Error("CommitEdit while idle should report false")
	}
	if s.CancelEdit() {
		t.Error("CancelEdit while idle should report false")
	}
	if got, _ := s.Get(a.ID); got.Text != "A" {
		t.Errorf("Idle operations changed the task: %q", got.Text)
	}
}

func TestBeginEditReplacesSession(t *testing.T) {
	s := newTestStore(t)
	a := mustAdd(t, s, "A")
	b := mustAdd(t, s, "B")

	s.BeginEdit(a.ID)
	s.SetDraft("unsaved A draft")
	s.BeginEdit(b.ID)

	session, ok := s.Edit()
	if !ok {
		t.Fatal("Expected an open session")
	}
	if diff := cmp.Diff(EditSession{TargetID: b.ID, Draft: "B"}, session); diff != "" {
		t.Errorf("session mismatch (-want +got):\n%s", diff)
	}
	if s.Editing(a.ID) {
		t.Error("A should no longer be in edit mode")
	}

	s.CommitEdit()
	if got, _ := s.Get(a.ID); got.Text != "A" {
		t.Errorf("Discarded draft leaked into A: %q", got.Text)
	}
}

func TestDeleteClosesSessionOnTarget(t *testing.T) {
	s := newTestStore(t)
	a := mustAdd(t, s, "A")
	b := mustAdd(t, s, "B")

	// Deleting another task keeps the session
	s.BeginEdit(a.ID)
	s.Delete(b.ID)
	if !s.Editing(a.ID) {
		t.Error("Deleting a non-target task should keep the session")
	}

	s.Delete(a.ID)
	if _, ok := s.Edit(); ok {
		t.Error("Deleting the target should close the session")
	}
}

func TestClearCompletedClosesSessionOnTarget(t *testing.T) {
	s := newTestStore(t)
	a := mustAdd(t, s, "A")
	s.Toggle(a.ID)

	s.BeginEdit(a.ID)
	s.ClearCompleted()

	if _, ok := s.Edit(); ok {
		t.Error("Clearing the target should close the session")
	}
}
