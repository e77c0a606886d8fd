package workspace

import "github.com/dmitrijs2005/timereport/internal/client/models"

const (
	PlaceholderOwnNotes = "Select a report"
	PlaceholderRoster   = "Select a student to see their reports."
	MessageDeleted      = "Report deleted."
	MessageNoAccess     = "Failed to load or no access."
	LabelBack           = "Back to all"
	LabelEmpty          = "No reports"
)

type RowKind int

const (
	RowNote RowKind = iota
	RowStudent
	RowBack
	RowEmpty
)

// Row is one line of the list fragment. Ref numbers the selectable rows
// (notes and students) from 1 and is 0 for the back and empty rows.
type Row struct {
	Kind      RowKind
	Ref       int
	ID        int64
	Label     string
	Badge     models.Badge
	Active    bool
	Deletable bool
}

// Detail is the detail fragment. Either Note is set, or Text holds a
// placeholder or an inline message.
type Detail struct {
	Note       *models.Note
	Badge      models.Badge
	Attachment *models.Attachment
	Text       string
}

type ReviewControls struct {
	NoteID  int64
	Current models.Status
	Options []models.Status
}

// View is everything the interface renders for one state.
type View struct {
	Heading string
	Rows    []Row
	Detail  Detail
	// Review is nil unless the session is a teacher's with an open note.
	Review *ReviewControls
}

// Row returns the selectable row numbered ref.
func (v View) Row(ref int) (Row, bool) {
	for _, r := range v.Rows {
		if r.Ref == ref && ref > 0 {
			return r, true
		}
	}
	return Row{}, false
}

// Snapshot is the state Compose derives a View from.
type Snapshot struct {
	Selection Selection
	Notes     []*models.Note
	Students  []*models.Student
	Detail    *models.Note
	Message   string
}

// CanReview is the review guard: a teacher with an active note.
func CanReview(sess models.Session, sel Selection) bool {
	return sess.IsTeacher() && sel.HasActiveNote()
}

// Compose derives the view for sess from snap. It has no side effects.
func Compose(sess models.Session, snap Snapshot) View {
	sel := snap.Selection
	v := View{Heading: heading(sel.Scope)}

	switch sel.Scope.Kind {
	case ScopeRoster:
		for i, st := range snap.Students {
			v.Rows = append(v.Rows, Row{
				Kind:   RowStudent,
				Ref:    i + 1,
				ID:     st.ID,
				Label:  st.Username,
				Active: st.ID == sel.ActiveStudentID,
			})
		}
	case ScopeStudentNotes, ScopeOwnNotes:
		if sel.Scope.Kind == ScopeStudentNotes {
			v.Rows = append(v.Rows, Row{Kind: RowBack, Label: LabelBack})
		}
		for i, n := range snap.Notes {
			v.Rows = append(v.Rows, Row{
				Kind:      RowNote,
				Ref:       i + 1,
				ID:        n.ID,
				Label:     n.Title,
				Badge:     n.Badge(),
				Active:    n.ID == sel.ActiveNoteID,
				Deletable: sel.Scope.Kind == ScopeOwnNotes,
			})
		}
		if len(snap.Notes) == 0 {
			v.Rows = append(v.Rows, Row{Kind: RowEmpty, Label: LabelEmpty})
		}
	}

	if snap.Detail != nil && sel.HasActiveNote() && snap.Detail.ID == sel.ActiveNoteID {
		v.Detail = Detail{
			Note:       snap.Detail,
			Badge:      snap.Detail.Badge(),
			Attachment: snap.Detail.Attachment(),
		}
		if CanReview(sess, sel) {
			v.Review = &ReviewControls{
				NoteID:  snap.Detail.ID,
				Current: snap.Detail.Status,
				Options: models.ReviewStatuses,
			}
		}
	} else {
		v.Detail = Detail{Text: snap.Message}
	}

	return v
}

func heading(s Scope) string {
	switch s.Kind {
	case ScopeOwnNotes:
		return "My reports"
	case ScopeRoster:
		return "Students"
	case ScopeStudentNotes:
		return "Reports: " + s.StudentName
	default:
		return ""
	}
}
