package workspace

import "github.com/dmitrijs2005/timereport/internal/client/models"

// Store caches the result set of the active scope: notes for the note
// scopes, students for the roster. Resetting it to a new scope drops the
// previous results.
type Store struct {
	scope    Scope
	notes    []*models.Note
	students []*models.Student
}

func (s *Store) Scope() Scope { return s.scope }

func (s *Store) Reset(scope Scope) {
	s.scope = scope
	s.notes = nil
	s.students = nil
}

func (s *Store) SetNotes(notes []*models.Note) {
	s.notes = notes
	s.students = nil
}

func (s *Store) SetStudents(students []*models.Student) {
	s.students = students
	s.notes = nil
}

func (s *Store) Notes() []*models.Note { return s.notes }

func (s *Store) Students() []*models.Student { return s.students }

func (s *Store) Note(id int64) *models.Note {
	for _, n := range s.notes {
		if n.ID == id {
			return n
		}
	}
	return nil
}

func (s *Store) Student(id int64) *models.Student {
	for _, st := range s.students {
		if st.ID == id {
			return st
		}
	}
	return nil
}

// UpdateStatus changes the cached status of note id and reports whether the
// note was cached.
func (s *Store) UpdateStatus(id int64, status models.Status) bool {
	n := s.Note(id)
	if n == nil {
		return false
	}
	n.Status = status
	return true
}

func (s *Store) Remove(id int64) {
	out := make([]*models.Note, 0, len(s.notes))
	for _, n := range s.notes {
		if n.ID != id {
			out = append(out, n)
		}
	}
	s.notes = out
}
