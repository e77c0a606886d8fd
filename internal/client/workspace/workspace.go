// Package workspace holds the interactive state of a logged-in client: the
// active query scope and its cached results, the selection, the open note
// and the review workflow on it.
//
// Every query is issued under a ticket naming the scope generation (and,
// for note fetches, the detail generation) current at the time. A response
// whose ticket is no longer current is dropped with ErrSuperseded, so a
// slow answer for student A can never land in student B's list.
//
// Workspace is not safe for concurrent use; the client drives it from one
// goroutine.
package workspace

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/timereport/internal/client/client"
	"github.com/dmitrijs2005/timereport/internal/client/models"
	"github.com/dmitrijs2005/timereport/internal/logging"
)

// NoteAPI is the subset of services.NoteService the workspace drives.
type NoteAPI interface {
	ListOwn(ctx context.Context) ([]*models.Note, error)
	Create(ctx context.Context, draft models.NoteDraft) (*models.Note, error)
	Get(ctx context.Context, id int64) (*models.Note, error)
	Delete(ctx context.Context, id int64) error
	ListStudents(ctx context.Context) ([]*models.Student, error)
	ListStudentNotes(ctx context.Context, studentID int64) ([]*models.Note, error)
	SetStatus(ctx context.Context, noteID int64, status models.Status) (models.Status, error)
}

// SessionSource provides the current session and tears it down.
type SessionSource interface {
	Current() models.Session
	Logout(ctx context.Context) error
}

type ticket struct {
	scope  uint64
	detail uint64
}

type Workspace struct {
	api     NoteAPI
	session SessionSource
	log     logging.Logger

	sel     Selection
	store   Store
	detail  *models.Note
	message string

	scopeGen  uint64
	detailGen uint64
}

func New(api NoteAPI, session SessionSource, log logging.Logger) *Workspace {
	return &Workspace{api: api, session: session, log: log.With("component", "workspace")}
}

// Selection returns a copy of the navigation state.
func (w *Workspace) Selection() Selection {
	return w.sel
}

// Snapshot copies the state the view is composed from.
func (w *Workspace) Snapshot() Snapshot {
	snap := Snapshot{
		Selection: w.sel,
		Notes:     append([]*models.Note(nil), w.store.Notes()...),
		Students:  append([]*models.Student(nil), w.store.Students()...),
		Message:   w.message,
	}
	if w.detail != nil {
		d := *w.detail
		snap.Detail = &d
	}
	return snap
}

func (w *Workspace) View() View {
	return Compose(w.session.Current(), w.Snapshot())
}

// Reset forgets every scope, result and selection.
func (w *Workspace) Reset() {
	w.scopeGen++
	w.detailGen++
	w.sel = Selection{}
	w.store.Reset(Scope{})
	w.detail = nil
	w.message = ""
}

// Start opens the landing scope for the session's role: own notes for a
// student, the roster for a teacher.
func (w *Workspace) Start(ctx context.Context) error {
	sess := w.session.Current()
	if !sess.Authenticated() {
		return ErrNotAuthenticated
	}
	if sess.Role == models.RoleTeacher {
		return w.OpenRoster(ctx)
	}
	return w.OpenOwnNotes(ctx)
}

func (w *Workspace) OpenOwnNotes(ctx context.Context) error {
	if err := w.require(models.RoleStudent); err != nil {
		return err
	}
	t := w.enter(OwnNotesScope(), PlaceholderOwnNotes)
	return w.loadNotes(ctx, t)
}

func (w *Workspace) OpenRoster(ctx context.Context) error {
	if err := w.require(models.RoleTeacher); err != nil {
		return err
	}
	t := w.enter(RosterScope(), PlaceholderRoster)
	return w.loadStudents(ctx, t)
}

// OpenStudent switches from the roster to one student's notes.
func (w *Workspace) OpenStudent(ctx context.Context, studentID int64) error {
	if err := w.require(models.RoleTeacher); err != nil {
		return err
	}
	if w.sel.Scope.Kind != ScopeRoster {
		return ErrNotPermitted
	}
	st := w.store.Student(studentID)
	if st == nil {
		return ErrNotInScope
	}
	t := w.enter(StudentNotesScope(st.ID, st.Username), "")
	return w.loadNotes(ctx, t)
}

// Back leaves a student's notes for the roster.
func (w *Workspace) Back(ctx context.Context) error {
	if w.sel.Scope.Kind != ScopeStudentNotes {
		return ErrNotPermitted
	}
	return w.OpenRoster(ctx)
}

// Refresh re-runs the active scope's query. The open note stays open if it
// is still listed.
func (w *Workspace) Refresh(ctx context.Context) error {
	if !w.session.Current().Authenticated() {
		return ErrNotAuthenticated
	}
	t := ticket{scope: w.scopeGen, detail: w.detailGen}
	switch w.sel.Scope.Kind {
	case ScopeRoster:
		return w.loadStudents(ctx, t)
	case ScopeOwnNotes, ScopeStudentNotes:
		return w.loadNotes(ctx, t)
	default:
		return w.Start(ctx)
	}
}

// OpenNote makes id the active note and fetches it. A note the caller may
// not see leaves an inline message instead of failing the session.
func (w *Workspace) OpenNote(ctx context.Context, id int64) error {
	if !w.session.Current().Authenticated() {
		return ErrNotAuthenticated
	}
	if w.store.Note(id) == nil {
		return ErrNotInScope
	}

	w.detailGen++
	t := ticket{scope: w.scopeGen, detail: w.detailGen}
	w.sel = w.sel.WithActiveNote(id)
	w.detail = nil
	w.message = ""

	n, err := w.api.Get(ctx, id)
	if errors.Is(err, client.ErrUnauthorized) {
		return w.fail(ctx, err)
	}
	if !w.current(t) {
		return ErrSuperseded
	}
	if err != nil {
		if errors.Is(err, client.ErrNoAccess) {
			w.message = MessageNoAccess
		}
		return w.fail(ctx, err)
	}

	w.detail = n
	return nil
}

// SetStatus changes the review status of the open note. It always issues
// the update, even when the status is unchanged.
func (w *Workspace) SetStatus(ctx context.Context, status models.Status) error {
	sess := w.session.Current()
	if !sess.Authenticated() {
		return ErrNotAuthenticated
	}
	if !sess.IsTeacher() {
		return ErrNotPermitted
	}
	if !CanReview(sess, w.sel) {
		return ErrNoActiveNote
	}

	noteID := w.sel.ActiveNoteID
	t := ticket{scope: w.scopeGen, detail: w.detailGen}

	got, err := w.api.SetStatus(ctx, noteID, status)
	if err != nil {
		return w.fail(ctx, err)
	}
	if w.scopeGen != t.scope {
		return ErrSuperseded
	}

	w.store.UpdateStatus(noteID, got)
	if w.detail != nil && w.detail.ID == noteID {
		w.detail.Status = got
	}
	w.log.Info(ctx, "status updated", "note_id", noteID, "status", got)
	return nil
}

// Delete removes one of the student's own notes and reloads the list.
func (w *Workspace) Delete(ctx context.Context, id int64) error {
	if err := w.require(models.RoleStudent); err != nil {
		return err
	}
	if w.sel.Scope.Kind != ScopeOwnNotes {
		return ErrNotPermitted
	}
	if w.store.Note(id) == nil {
		return ErrNotInScope
	}

	t := ticket{scope: w.scopeGen, detail: w.detailGen}
	if err := w.api.Delete(ctx, id); err != nil {
		return w.fail(ctx, err)
	}
	if w.scopeGen != t.scope {
		return ErrSuperseded
	}

	w.store.Remove(id)
	if w.sel.ActiveNoteID == id {
		w.detailGen++
		w.sel = w.sel.WithActiveNote(0)
		w.detail = nil
		w.message = MessageDeleted
	}
	return w.loadNotes(ctx, ticket{scope: w.scopeGen, detail: w.detailGen})
}

// Submit creates a note for the student and reloads their list.
func (w *Workspace) Submit(ctx context.Context, draft models.NoteDraft) (*models.Note, error) {
	if err := w.require(models.RoleStudent); err != nil {
		return nil, err
	}

	n, err := w.api.Create(ctx, draft)
	if err != nil {
		return nil, w.fail(ctx, err)
	}

	if w.sel.Scope.Kind == ScopeOwnNotes {
		if err := w.loadNotes(ctx, ticket{scope: w.scopeGen, detail: w.detailGen}); err != nil {
			return n, err
		}
	}
	return n, nil
}

func (w *Workspace) require(role models.Role) error {
	sess := w.session.Current()
	if !sess.Authenticated() {
		return ErrNotAuthenticated
	}
	if sess.Role != role {
		return ErrNotPermitted
	}
	return nil
}

// enter activates scope, invalidating every outstanding ticket, and returns
// the ticket for the scope's own query.
func (w *Workspace) enter(scope Scope, placeholder string) ticket {
	w.scopeGen++
	w.detailGen++
	w.sel = w.sel.Enter(scope)
	w.store.Reset(scope)
	w.detail = nil
	w.message = placeholder
	w.log.Debug(context.Background(), "scope changed", "scope", scope.String())
	return ticket{scope: w.scopeGen, detail: w.detailGen}
}

func (w *Workspace) current(t ticket) bool {
	return t.scope == w.scopeGen && t.detail == w.detailGen
}

func (w *Workspace) loadNotes(ctx context.Context, t ticket) error {
	scope := w.sel.Scope

	var (
		notes []*models.Note
		err   error
	)
	if scope.Kind == ScopeStudentNotes {
		notes, err = w.api.ListStudentNotes(ctx, scope.StudentID)
	} else {
		notes, err = w.api.ListOwn(ctx)
	}
	if errors.Is(err, client.ErrUnauthorized) {
		return w.fail(ctx, err)
	}
	if t.scope != w.scopeGen {
		w.log.Debug(ctx, "dropping stale list", "scope", scope.String())
		return ErrSuperseded
	}
	if err != nil {
		return w.fail(ctx, err)
	}

	w.store.SetNotes(notes)
	w.keepActiveIfListed()
	return nil
}

func (w *Workspace) loadStudents(ctx context.Context, t ticket) error {
	students, err := w.api.ListStudents(ctx)
	if errors.Is(err, client.ErrUnauthorized) {
		return w.fail(ctx, err)
	}
	if t.scope != w.scopeGen {
		w.log.Debug(ctx, "dropping stale roster")
		return ErrSuperseded
	}
	if err != nil {
		return w.fail(ctx, err)
	}
	w.store.SetStudents(students)
	return nil
}

// keepActiveIfListed drops the active note when a reload no longer lists it.
func (w *Workspace) keepActiveIfListed() {
	if !w.sel.HasActiveNote() || w.store.Note(w.sel.ActiveNoteID) != nil {
		return
	}
	w.detailGen++
	w.sel = w.sel.WithActiveNote(0)
	w.detail = nil
	if w.message == "" {
		w.message = placeholderFor(w.sel.Scope)
	}
}

func placeholderFor(s Scope) string {
	switch s.Kind {
	case ScopeOwnNotes:
		return PlaceholderOwnNotes
	case ScopeRoster:
		return PlaceholderRoster
	default:
		return ""
	}
}

// fail tears the session down on an authorization failure before handing
// the error back. Callers route ErrUnauthorized here before any staleness
// check so a superseded response still ends the session.
func (w *Workspace) fail(ctx context.Context, err error) error {
	if !errors.Is(err, client.ErrUnauthorized) {
		return err
	}
	w.log.Warn(ctx, "authorization rejected, logging out")
	w.Reset()
	if lerr := w.session.Logout(ctx); lerr != nil {
		w.log.Error(ctx, "logout after authorization failure", "error", lerr)
	}
	return err
}
