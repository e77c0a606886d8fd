package workspace

import (
	"testing"

	"github.com/dmitrijs2005/timereport/internal/client/models"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestCompose(t *testing.T) {
	student := models.Session{Credential: "s", Role: models.RoleStudent}
	teacher := models.Session{Credential: "t", Role: models.RoleTeacher}

	week := &models.Note{ID: 7, Title: "Week", Status: models.StatusVerified, AttachmentRef: "https://cdn/x/Photo.PNG?sig=1"}
	other := &models.Note{ID: 8, Title: "Other", Status: models.StatusRejected}

	tests := []struct {
		name string
		sess models.Session
		snap Snapshot
		want View
	}{
		{
			name: "logged out",
			want: View{},
		},
		{
			name: "own notes with placeholder",
			sess: student,
			snap: Snapshot{
				Selection: Selection{Scope: OwnNotesScope()},
				Notes:     []*models.Note{week, other},
				Message:   PlaceholderOwnNotes,
			},
			want: View{
				Heading: "My reports",
				Rows: []Row{
					{Kind: RowNote, Ref: 1, ID: 7, Label: "Week", Badge: models.BadgePositive, Deletable: true},
					{Kind: RowNote, Ref: 2, ID: 8, Label: "Other", Badge: models.BadgeNegative, Deletable: true},
				},
				Detail: Detail{Text: PlaceholderOwnNotes},
			},
		},
		{
			name: "own notes empty",
			sess: student,
			snap: Snapshot{Selection: Selection{Scope: OwnNotesScope()}},
			want: View{
				Heading: "My reports",
				Rows:    []Row{{Kind: RowEmpty, Label: LabelEmpty}},
			},
		},
		{
			name: "student sees detail without review",
			sess: student,
			snap: Snapshot{
				Selection: Selection{Scope: OwnNotesScope(), ActiveNoteID: 7},
				Notes:     []*models.Note{week},
				Detail:    week,
			},
			want: View{
				Heading: "My reports",
				Rows: []Row{
					{Kind: RowNote, Ref: 1, ID: 7, Label: "Week", Badge: models.BadgePositive, Active: true, Deletable: true},
				},
				Detail: Detail{
					Note:       week,
					Badge:      models.BadgePositive,
					Attachment: &models.Attachment{Ref: week.AttachmentRef, Kind: models.AttachmentImage},
				},
			},
		},
		{
			name: "roster",
			sess: teacher,
			snap: Snapshot{
				Selection: Selection{Scope: RosterScope()},
				Students:  []*models.Student{{ID: 1, Username: "anna"}, {ID: 2, Username: "bob"}},
				Message:   PlaceholderRoster,
			},
			want: View{
				Heading: "Students",
				Rows: []Row{
					{Kind: RowStudent, Ref: 1, ID: 1, Label: "anna"},
					{Kind: RowStudent, Ref: 2, ID: 2, Label: "bob"},
				},
				Detail: Detail{Text: PlaceholderRoster},
			},
		},
		{
			name: "student notes with review",
			sess: teacher,
			snap: Snapshot{
				Selection: Selection{Scope: StudentNotesScope(1, "anna"), ActiveStudentID: 1, ActiveNoteID: 8},
				Notes:     []*models.Note{other},
				Detail:    other,
			},
			want: View{
				Heading: "Reports: anna",
				Rows: []Row{
					{Kind: RowBack, Label: LabelBack},
					{Kind: RowNote, Ref: 1, ID: 8, Label: "Other", Badge: models.BadgeNegative, Active: true},
				},
				Detail: Detail{Note: other, Badge: models.BadgeNegative},
				Review: &ReviewControls{NoteID: 8, Current: models.StatusRejected, Options: models.ReviewStatuses},
			},
		},
		{
			name: "student notes empty",
			sess: teacher,
			snap: Snapshot{Selection: Selection{Scope: StudentNotesScope(1, "anna"), ActiveStudentID: 1}},
			want: View{
				Heading: "Reports: anna",
				Rows: []Row{
					{Kind: RowBack, Label: LabelBack},
					{Kind: RowEmpty, Label: LabelEmpty},
				},
			},
		},
		{
			name: "detail for another note is not shown",
			sess: teacher,
			snap: Snapshot{
				Selection: Selection{Scope: StudentNotesScope(1, "anna"), ActiveStudentID: 1, ActiveNoteID: 7},
				Notes:     []*models.Note{other},
				Detail:    other,
				Message:   MessageNoAccess,
			},
			want: View{
				Heading: "Reports: anna",
				Rows: []Row{
					{Kind: RowBack, Label: LabelBack},
					{Kind: RowNote, Ref: 1, ID: 8, Label: "Other", Badge: models.BadgeNegative},
				},
				Detail: Detail{Text: MessageNoAccess},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compose(tt.sess, tt.snap)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Compose() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCanReview(t *testing.T) {
	teacher := models.Session{Credential: "t", Role: models.RoleTeacher}
	student := models.Session{Credential: "s", Role: models.RoleStudent}
	active := Selection{Scope: StudentNotesScope(1, "a"), ActiveNoteID: 3}

	assert.True(t, CanReview(teacher, active))
	assert.False(t, CanReview(teacher, Selection{Scope: RosterScope()}))
	assert.False(t, CanReview(student, active))
	assert.False(t, CanReview(models.Session{Role: models.RoleTeacher}, active))
}

func TestView_Row(t *testing.T) {
	v := View{Rows: []Row{{Kind: RowBack}, {Kind: RowNote, Ref: 1, ID: 5}}}

	r, ok := v.Row(1)
	assert.True(t, ok)
	assert.Equal(t, int64(5), r.ID)

	_, ok = v.Row(0)
	assert.False(t, ok)
	_, ok = v.Row(2)
	assert.False(t, ok)
}

func TestSelection_Enter(t *testing.T) {
	sel := Selection{Scope: StudentNotesScope(4, "d"), ActiveStudentID: 4, ActiveNoteID: 9}

	assert.Equal(t, Selection{Scope: RosterScope()}, sel.Enter(RosterScope()))
	assert.Equal(t,
		Selection{Scope: StudentNotesScope(5, "e"), ActiveStudentID: 5},
		sel.Enter(StudentNotesScope(5, "e")))
	assert.Equal(t, "student-notes(5)", StudentNotesScope(5, "e").String())
	assert.Equal(t, "roster", RosterScope().String())
}

func TestStore(t *testing.T) {
	var s Store
	s.Reset(OwnNotesScope())
	s.SetNotes([]*models.Note{{ID: 1, Status: models.StatusPending}, {ID: 2}})

	assert.True(t, s.UpdateStatus(1, models.StatusAccepted))
	assert.False(t, s.UpdateStatus(3, models.StatusAccepted))
	assert.Equal(t, models.StatusAccepted, s.Note(1).Status)

	s.Remove(1)
	assert.Nil(t, s.Note(1))
	assert.Len(t, s.Notes(), 1)

	s.Reset(RosterScope())
	assert.Empty(t, s.Notes())
	assert.Equal(t, RosterScope(), s.Scope())
}
