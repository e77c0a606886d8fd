package client

import (
	"context"

	"github.com/dmitrijs2005/timereport/internal/client/models"
)

// Client is the transport-agnostic contract with the Time Report service.
// Every call except Authenticate and Register carries the credential last
// given to SetCredential.
type Client interface {
	// SetCredential replaces the bearer credential. An empty string clears it.
	SetCredential(token string)

	Authenticate(ctx context.Context, username, password string) (models.Session, error)
	Register(ctx context.Context, username, password string, isTeacher bool) error

	ListOwnNotes(ctx context.Context) ([]*models.Note, error)
	CreateNote(ctx context.Context, draft models.NoteDraft) (*models.Note, error)
	GetNote(ctx context.Context, id int64) (*models.Note, error)
	DeleteNote(ctx context.Context, id int64) error

	ListStudents(ctx context.Context) ([]*models.Student, error)
	ListStudentNotes(ctx context.Context, studentID int64) ([]*models.Note, error)
	SetNoteStatus(ctx context.Context, noteID int64, status models.Status) (models.Status, error)

	Close() error
}
