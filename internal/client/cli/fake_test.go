package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/dmitrijs2005/timereport/internal/client/models"
	"github.com/dmitrijs2005/timereport/internal/client/workspace"
	"github.com/dmitrijs2005/timereport/internal/logging"
)

// fakeAuth implements services.AuthService.
type fakeAuth struct {
	session models.Session

	loginCreds models.Credentials
	loginSess  models.Session
	loginErr   error

	regCreds   models.Credentials
	regTeacher bool
	regErr     error

	restored   models.Session
	restoreErr error

	logoutErr error
	logouts   int
	closed    bool
}

func (f *fakeAuth) Login(_ context.Context, c models.Credentials) (models.Session, error) {
	f.loginCreds = c
	if f.loginErr != nil {
		return models.Session{}, f.loginErr
	}
	f.session = f.loginSess
	return f.session, nil
}

func (f *fakeAuth) Register(_ context.Context, c models.Credentials, isTeacher bool) error {
	f.regCreds, f.regTeacher = c, isTeacher
	return f.regErr
}

func (f *fakeAuth) Restore(context.Context) (models.Session, error) {
	f.session = f.restored
	return f.restored, f.restoreErr
}

func (f *fakeAuth) Logout(context.Context) error {
	f.logouts++
	f.session = models.Session{}
	return f.logoutErr
}

func (f *fakeAuth) Current() models.Session { return f.session }

func (f *fakeAuth) Close(context.Context) error {
	f.closed = true
	return nil
}

// fakeNotes implements workspace.NoteAPI over a fixed data set.
type fakeNotes struct {
	own      []*models.Note
	students []*models.Student
	byID     map[int64]*models.Note

	created  models.NoteDraft
	deleted  []int64
	statuses []models.Status
	err      error
}

func (f *fakeNotes) ListOwn(context.Context) ([]*models.Note, error) {
	return clone(f.own), f.err
}

func (f *fakeNotes) Create(_ context.Context, d models.NoteDraft) (*models.Note, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.created = d
	n := &models.Note{ID: int64(100 + len(f.own)), Title: d.Title, Content: d.Content, Status: models.StatusPending}
	f.own = append(f.own, n)
	f.byID[n.ID] = n
	return n, nil
}

func (f *fakeNotes) Get(_ context.Context, id int64) (*models.Note, error) {
	if f.err != nil {
		return nil, f.err
	}
	c := *f.byID[id]
	return &c, nil
}

func (f *fakeNotes) Delete(_ context.Context, id int64) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, id)
	out := f.own[:0]
	for _, n := range f.own {
		if n.ID != id {
			out = append(out, n)
		}
	}
	f.own = out
	return nil
}

func (f *fakeNotes) ListStudents(context.Context) ([]*models.Student, error) {
	return f.students, f.err
}

func (f *fakeNotes) ListStudentNotes(_ context.Context, id int64) ([]*models.Note, error) {
	var out []*models.Note
	for _, n := range f.own {
		if n.OwnerID == id {
			c := *n
			out = append(out, &c)
		}
	}
	return out, f.err
}

func (f *fakeNotes) SetStatus(_ context.Context, id int64, st models.Status) (models.Status, error) {
	if f.err != nil {
		return "", f.err
	}
	f.statuses = append(f.statuses, st)
	f.byID[id].Status = st
	return st, nil
}

func clone(in []*models.Note) []*models.Note {
	out := make([]*models.Note, 0, len(in))
	for _, n := range in {
		c := *n
		out = append(out, &c)
	}
	return out
}

func sampleNotes() *fakeNotes {
	w1 := &models.Note{ID: 1, OwnerID: 5, Title: "Week 1", Content: "Did X", Status: models.StatusPending, AttachmentRef: "/uploads/a.png"}
	w2 := &models.Note{ID: 2, OwnerID: 5, Title: "Week 2", Content: "Did Y", Status: models.StatusRejected}
	return &fakeNotes{
		own:      []*models.Note{w1, w2},
		students: []*models.Student{{ID: 5, Username: "anna"}},
		byID:     map[int64]*models.Note{1: w1, 2: w2},
	}
}

var (
	studentSess = models.Session{Credential: "s", Role: models.RoleStudent, DisplayName: "anna"}
	teacherSess = models.Session{Credential: "t", Role: models.RoleTeacher, DisplayName: "mrs.k"}
)

// newTestApp builds an App over fakes. Prompts read from input; everything
// the user would see lands in the returned buffer.
func newTestApp(auth *fakeAuth, notes *fakeNotes, input string) (*App, *bytes.Buffer) {
	out := &bytes.Buffer{}
	ws := workspace.New(notes, auth, logging.Nop())
	a := newApp(auth, ws, logging.Nop(), strings.NewReader(input), out)
	return a, out
}

// stubPrompts replaces the interactive helpers for one test.
func stubPrompts(t *testing.T, texts []string, password string, yes bool) {
	t.Helper()
	origST, origGP, origML, origC := getSimpleText, getPassword, getMultiline, confirm

	i := 0
	next := func() string {
		if i >= len(texts) {
			t.Fatalf("unexpected prompt #%d", i+1)
		}
		s := texts[i]
		i++
		return s
	}
	getSimpleText = func(*bufio.Reader, string, io.Writer) (string, error) { return next(), nil }
	getMultiline = func(*bufio.Reader, string, io.Writer) (string, error) { return next(), nil }
	getPassword = func(io.Writer) ([]byte, error) { return []byte(password), nil }
	confirm = func(*bufio.Reader, string, io.Writer) (bool, error) { return yes, nil }

	t.Cleanup(func() {
		getSimpleText, getPassword, getMultiline, confirm = origST, origGP, origML, origC
	})
}
