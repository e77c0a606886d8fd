package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/dmitrijs2005/timereport/internal/client/models"
	"github.com/dmitrijs2005/timereport/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/timereport/internal/dbx"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE metadata (key TEXT PRIMARY KEY, value BLOB NOT NULL)`)
	require.NoError(t, err)
	return db
}

func getMeta(t *testing.T, db *sql.DB, k string) (string, bool) {
	t.Helper()
	var v []byte
	err := db.QueryRow(`SELECT value FROM metadata WHERE key = ?`, k).Scan(&v)
	if err == sql.ErrNoRows {
		return "", false
	}
	require.NoError(t, err)
	return string(v), true
}

// fakeClient implements client.Client and records what it was asked.
type fakeClient struct {
	credential string
	calls      []string

	session models.Session
	authErr error

	registerErr    error
	lastIsTeacher  bool
	lastCreated    models.NoteDraft
	created        *models.Note
	statusReturned models.Status
	err            error
}

func (f *fakeClient) SetCredential(token string) { f.credential = token }

func (f *fakeClient) Authenticate(_ context.Context, username, _ string) (models.Session, error) {
	f.calls = append(f.calls, "Authenticate:"+username)
	return f.session, f.authErr
}

func (f *fakeClient) Register(_ context.Context, username, _ string, isTeacher bool) error {
	f.calls = append(f.calls, "Register:"+username)
	f.lastIsTeacher = isTeacher
	return f.registerErr
}

func (f *fakeClient) ListOwnNotes(context.Context) ([]*models.Note, error) {
	f.calls = append(f.calls, "ListOwnNotes")
	return nil, f.err
}

func (f *fakeClient) CreateNote(_ context.Context, d models.NoteDraft) (*models.Note, error) {
	f.calls = append(f.calls, "CreateNote")
	f.lastCreated = d
	return f.created, f.err
}

func (f *fakeClient) GetNote(context.Context, int64) (*models.Note, error) {
	f.calls = append(f.calls, "GetNote")
	return nil, f.err
}

func (f *fakeClient) DeleteNote(context.Context, int64) error {
	f.calls = append(f.calls, "DeleteNote")
	return f.err
}

func (f *fakeClient) ListStudents(context.Context) ([]*models.Student, error) {
	f.calls = append(f.calls, "ListStudents")
	return nil, f.err
}

func (f *fakeClient) ListStudentNotes(context.Context, int64) ([]*models.Note, error) {
	f.calls = append(f.calls, "ListStudentNotes")
	return nil, f.err
}

func (f *fakeClient) SetNoteStatus(_ context.Context, _ int64, st models.Status) (models.Status, error) {
	f.calls = append(f.calls, "SetNoteStatus")
	if f.statusReturned != "" {
		return f.statusReturned, f.err
	}
	return st, f.err
}

func (f *fakeClient) Close() error { return nil }

// fakeRepo implements metadata.Repository in memory.
type fakeRepo struct {
	data     map[string][]byte
	getErr   error
	clearErr error
	clears   int
}

func (f *fakeRepo) Get(_ context.Context, key string) ([]byte, bool, error) {
	if f.getErr != nil {
		return nil, false, f.getErr
	}
	v, ok := f.data[key]
	return v, ok, nil
}

func (f *fakeRepo) Set(_ context.Context, key string, value []byte) error {
	if f.data == nil {
		f.data = map[string][]byte{}
	}
	f.data[key] = value
	return nil
}

func (f *fakeRepo) SetMany(ctx context.Context, pairs map[string][]byte) error {
	for k, v := range pairs {
		_ = f.Set(ctx, k, v)
	}
	return nil
}

func (f *fakeRepo) Clear(context.Context) error {
	f.clears++
	if f.clearErr != nil {
		return f.clearErr
	}
	f.data = nil
	return nil
}

// withRepo points the service at repo instead of SQLite.
func withRepo(a AuthService, repo metadata.Repository) AuthService {
	a.(*authService).newRepo = func(dbx.DBTX) metadata.Repository { return repo }
	return a
}
