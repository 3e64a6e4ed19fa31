package todo

// BeginEdit opens an edit session on task id seeded with its current text.
// An already open session is replaced and its draft discarded.
func (s *Store) BeginEdit(id int64) bool {
	i := s.indexOf(id)
	if i < 0 {
		return false
	}

	s.edit = &EditSession{TargetID: id, Draft: s.tasks[i].Text}

	s.publish(EventEditChanged)
	return true
}

// SetDraft replaces the draft text of the open session
func (s *Store) SetDraft(text string) bool {
	if s.edit == nil {
		return false
	}

	s.edit.Draft = text

	s.publish(EventEditChanged)
	return true
}

// CommitEdit writes the draft to the target task as-is and closes the session.
// The draft is neither trimmed nor rejected when empty.
func (s *Store) CommitEdit() bool {
	if s.edit == nil {
		return false
	}

	session := *s.edit
	s.edit = nil

	if i := s.indexOf(session.TargetID); i >= 0 {
		s.tasks[i].Text = session.Draft
	}

	s.publish(EventTasksChanged)
	return true
}

// CancelEdit closes the session without applying the draft
func (s *Store) CancelEdit() bool {
	if s.edit == nil {
		return false
	}

	s.edit = nil

	s.publish(EventEditChanged)
	return true
}

// Edit returns a copy of the open session, if any
func (s *Store) Edit() (EditSession, bool) {
	if s.edit == nil {
		return EditSession{}, false
	}
	return *s.edit, true
}

// Editing reports whether task id is the current edit target
func (s *Store) Editing(id int64) bool {
	return s.edit != nil && s.edit.TargetID == id
}
