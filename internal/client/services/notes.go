package services

import (
	"context"

	"github.com/dmitrijs2005/timereport/internal/client/client"
	"github.com/dmitrijs2005/timereport/internal/client/models"
	"github.com/dmitrijs2005/timereport/internal/logging"
)

// NoteService fronts the note, roster and review calls. Invalid input is
// rejected here and never reaches the transport.
type NoteService interface {
	ListOwn(ctx context.Context) ([]*models.Note, error)
	Create(ctx context.Context, draft models.NoteDraft) (*models.Note, error)
	Get(ctx context.Context, id int64) (*models.Note, error)
	Delete(ctx context.Context, id int64) error
	ListStudents(ctx context.Context) ([]*models.Student, error)
	ListStudentNotes(ctx context.Context, studentID int64) ([]*models.Note, error)
	SetStatus(ctx context.Context, noteID int64, status models.Status) (models.Status, error)
}

type noteService struct {
	client client.Client
	log    logging.Logger
}

func NewNoteService(c client.Client, log logging.Logger) NoteService {
	return &noteService{client: c, log: log.With("component", "notes")}
}

func (s *noteService) ListOwn(ctx context.Context) ([]*models.Note, error) {
	return s.client.ListOwnNotes(ctx)
}

func (s *noteService) Create(ctx context.Context, draft models.NoteDraft) (*models.Note, error) {
	if err := models.Validate(draft); err != nil {
		return nil, err
	}
	n, err := s.client.CreateNote(ctx, draft)
	if err != nil {
		return nil, err
	}
	s.log.Info(ctx, "note submitted", "note_id", n.ID, "attachment", draft.Attachment != nil)
	return n, nil
}

func (s *noteService) Get(ctx context.Context, id int64) (*models.Note, error) {
	return s.client.GetNote(ctx, id)
}

func (s *noteService) Delete(ctx context.Context, id int64) error {
	if err := s.client.DeleteNote(ctx, id); err != nil {
		return err
	}
	s.log.Info(ctx, "note deleted", "note_id", id)
	return nil
}

func (s *noteService) ListStudents(ctx context.Context) ([]*models.Student, error) {
	return s.client.ListStudents(ctx)
}

func (s *noteService) ListStudentNotes(ctx context.Context, studentID int64) ([]*models.Note, error) {
	return s.client.ListStudentNotes(ctx, studentID)
}

// SetStatus accepts only pending, accepted and rejected.
func (s *noteService) SetStatus(ctx context.Context, noteID int64, status models.Status) (models.Status, error) {
	if _, err := models.ParseReviewStatus(string(status)); err != nil {
		return "", err
	}
	got, err := s.client.SetNoteStatus(ctx, noteID, status)
	if err != nil {
		return "", err
	}
	s.log.Info(ctx, "status changed", "note_id", noteID, "status", got)
	return got, nil
}
