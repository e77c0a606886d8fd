package workspace

import "fmt"

type ScopeKind int

const (
	ScopeNone ScopeKind = iota
	ScopeOwnNotes
	ScopeRoster
	ScopeStudentNotes
)

func (k ScopeKind) String() string {
	switch k {
	case ScopeOwnNotes:
		return "own-notes"
	case ScopeRoster:
		return "roster"
	case ScopeStudentNotes:
		return "student-notes"
	default:
		return "none"
	}
}

// Scope is the query whose results the list shows. StudentID and
// StudentName are set only for ScopeStudentNotes.
type Scope struct {
	Kind        ScopeKind `json:"kind"`
	StudentID   int64     `json:"student_id,omitempty"`
	StudentName string    `json:"student_name,omitempty"`
}

func OwnNotesScope() Scope { return Scope{Kind: ScopeOwnNotes} }

func RosterScope() Scope { return Scope{Kind: ScopeRoster} }

func StudentNotesScope(id int64, name string) Scope {
	return Scope{Kind: ScopeStudentNotes, StudentID: id, StudentName: name}
}

func (s Scope) String() string {
	if s.Kind == ScopeStudentNotes {
		return fmt.Sprintf("%s(%d)", s.Kind, s.StudentID)
	}
	return s.Kind.String()
}

// Selection is the navigation state: the active scope and which note and
// student are active in it. Zero ids mean nothing is active. It holds no
// references and can be copied, compared and serialised freely.
type Selection struct {
	Scope           Scope `json:"scope"`
	ActiveNoteID    int64 `json:"active_note_id,omitempty"`
	ActiveStudentID int64 `json:"active_student_id,omitempty"`
}

func (s Selection) HasActiveNote() bool {
	return s.ActiveNoteID != 0
}

// Enter returns the selection for a newly activated scope. The active note
// is always dropped; the active student is the scope's student, so entering
// the roster clears it.
func (s Selection) Enter(scope Scope) Selection {
	return Selection{Scope: scope, ActiveStudentID: scope.StudentID}
}

func (s Selection) WithActiveNote(id int64) Selection {
	s.ActiveNoteID = id
	return s
}
