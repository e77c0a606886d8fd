package workspace

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/timereport/internal/client/models"
)

// fakeAPI is an in-memory NoteAPI. Lists return copies so the workspace
// never shares records with it. hook, when set, runs before a call returns
// and lets a test act while the call is still "in flight".
type fakeAPI struct {
	mu sync.Mutex

	students []*models.Student
	notes    map[int64]*models.Note
	order    []int64
	nextID   int64

	hidden map[int64]bool
	errFor map[string]error
	calls  []string

	hook func(method string, arg int64)
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{notes: map[int64]*models.Note{}, hidden: map[int64]bool{}, errFor: map[string]error{}, nextID: 100}
}

func (f *fakeAPI) addStudent(id int64, name string) {
	f.students = append(f.students, &models.Student{ID: id, Username: name})
}

func (f *fakeAPI) addNote(id, owner int64, title string, st models.Status) {
	f.notes[id] = &models.Note{ID: id, OwnerID: owner, Title: title, Content: title + " body", Status: st}
	f.order = append(f.order, id)
}

func (f *fakeAPI) record(method string, arg int64) error {
	f.mu.Lock()
	f.calls = append(f.calls, fmt.Sprintf("%s:%d", method, arg))
	err := f.errFor[method]
	f.mu.Unlock()
	return err
}

func (f *fakeAPI) runHook(method string, arg int64) {
	if f.hook == nil {
		return
	}
	h := f.hook
	f.hook = nil
	h(method, arg)
}

func (f *fakeAPI) listFor(owner int64) []*models.Note {
	var out []*models.Note
	for _, id := range f.order {
		if n, ok := f.notes[id]; ok && n.OwnerID == owner {
			c := *n
			out = append(out, &c)
		}
	}
	return out
}

const ownID int64 = 1

func (f *fakeAPI) ListOwn(context.Context) ([]*models.Note, error) {
	err := f.record("ListOwn", 0)
	out := f.listFor(ownID)
	f.runHook("ListOwn", 0)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (f *fakeAPI) Create(_ context.Context, d models.NoteDraft) (*models.Note, error) {
	if err := f.record("Create", 0); err != nil {
		return nil, err
	}
	f.nextID++
	f.addNote(f.nextID, ownID, d.Title, models.StatusPending)
	c := *f.notes[f.nextID]
	return &c, nil
}

func (f *fakeAPI) Get(_ context.Context, id int64) (*models.Note, error) {
	err := f.record("Get", id)
	f.runHook("Get", id)
	if err != nil {
		return nil, err
	}
	n, ok := f.notes[id]
	if !ok {
		return nil, fmt.Errorf("note %d not found", id)
	}
	c := *n
	return &c, nil
}

func (f *fakeAPI) Delete(_ context.Context, id int64) error {
	if err := f.record("Delete", id); err != nil {
		return err
	}
	delete(f.notes, id)
	return nil
}

func (f *fakeAPI) ListStudents(context.Context) ([]*models.Student, error) {
	err := f.record("ListStudents", 0)
	f.runHook("ListStudents", 0)
	if err != nil {
		return nil, err
	}
	out := make([]*models.Student, 0, len(f.students))
	for _, s := range f.students {
		c := *s
		out = append(out, &c)
	}
	return out, nil
}

func (f *fakeAPI) ListStudentNotes(_ context.Context, studentID int64) ([]*models.Note, error) {
	err := f.record("ListStudentNotes", studentID)
	out := f.listFor(studentID)
	f.runHook("ListStudentNotes", studentID)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (f *fakeAPI) SetStatus(_ context.Context, noteID int64, st models.Status) (models.Status, error) {
	if err := f.record("SetStatus", noteID); err != nil {
		return "", err
	}
	if n, ok := f.notes[noteID]; ok {
		n.Status = st
	}
	return st, nil
}

func (f *fakeAPI) callList() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

type fakeSession struct {
	sess    models.Session
	logouts int
}

func (f *fakeSession) Current() models.Session { return f.sess }

func (f *fakeSession) Logout(context.Context) error {
	f.logouts++
	f.sess = models.Session{}
	return nil
}

func studentSession() *fakeSession {
	return &fakeSession{sess: models.Session{Credential: "tok-s", Role: models.RoleStudent, DisplayName: "alice"}}
}

func teacherSession() *fakeSession {
	return &fakeSession{sess: models.Session{Credential: "tok-t", Role: models.RoleTeacher, DisplayName: "mr-smith"}}
}
