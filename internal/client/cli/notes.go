package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/dmitrijs2005/timereport/internal/client/client"
	"github.com/dmitrijs2005/timereport/internal/client/models"
	"github.com/dmitrijs2005/timereport/internal/client/workspace"
)

// readFile is a test seam for attachment uploads.
var readFile = os.ReadFile

// start opens the landing list for the session's role and shows it.
func (a *App) start(ctx context.Context) error {
	return a.show(ctx, a.workspace.Start(ctx))
}

// show reports err, if any, and renders the current view.
// A no-access failure already shown in the detail pane is not repeated.
func (a *App) show(ctx context.Context, err error) error {
	v := a.workspace.View()
	inline := errors.Is(err, client.ErrNoAccess) && v.Detail.Text == workspace.MessageNoAccess
	if err != nil && !inline {
		if err = a.report(ctx, err); err == nil {
			return nil
		}
	}
	renderView(a.out, v)
	return err
}

// List reloads the active list.
func (a *App) List(ctx context.Context) error {
	return a.show(ctx, a.workspace.Refresh(ctx))
}

// Students shows the roster.
func (a *App) Students(ctx context.Context) error {
	return a.show(ctx, a.workspace.OpenRoster(ctx))
}

func (a *App) Back(ctx context.Context) error {
	return a.show(ctx, a.workspace.Back(ctx))
}

// row resolves a list number typed by the user against the current view.
func (a *App) row(ref string) (workspace.Row, error) {
	n, err := strconv.Atoi(ref)
	if err != nil {
		return workspace.Row{}, workspace.ErrNotInScope
	}
	r, ok := a.workspace.View().Row(n)
	if !ok {
		return workspace.Row{}, workspace.ErrNotInScope
	}
	return r, nil
}

// Open opens the student or the report numbered ref in the current list.
func (a *App) Open(ctx context.Context, ref string) error {
	if !a.isLoggedIn() {
		return a.report(ctx, workspace.ErrNotAuthenticated)
	}
	r, err := a.row(ref)
	if err != nil {
		return a.report(ctx, err)
	}

	if r.Kind == workspace.RowStudent {
		return a.show(ctx, a.workspace.OpenStudent(ctx, r.ID))
	}
	return a.show(ctx, a.workspace.OpenNote(ctx, r.ID))
}

// Submit collects a new report and sends it.
func (a *App) Submit(ctx context.Context) error {
	if !a.isLoggedIn() {
		return a.report(ctx, workspace.ErrNotAuthenticated)
	}
	if a.isTeacher() {
		return a.report(ctx, workspace.ErrNotPermitted)
	}

	draft, err := a.readDraft()
	if err != nil {
		return a.report(ctx, err)
	}

	n, err := a.workspace.Submit(ctx, draft)
	if err != nil {
		return a.show(ctx, err)
	}

	fmt.Fprintf(a.out, "Report %q submitted.\n", n.Title)
	renderView(a.out, a.workspace.View())
	return nil
}

func (a *App) readDraft() (models.NoteDraft, error) {
	title, err := getSimpleText(a.reader, "Title", a.out)
	if err != nil {
		return models.NoteDraft{}, err
	}
	content, err := getMultiline(a.reader, "Content", a.out)
	if err != nil {
		return models.NoteDraft{}, err
	}
	path, err := getSimpleText(a.reader, "Attachment file (empty for none)", a.out)
	if err != nil {
		return models.NoteDraft{}, err
	}

	draft := models.NoteDraft{Title: title, Content: content}
	if path != "" {
		data, err := readFile(path)
		if err != nil {
			return models.NoteDraft{}, fmt.Errorf("read attachment: %w", err)
		}
		draft.Attachment = &models.Upload{Filename: filepath.Base(path), Data: data}
	}
	return draft, nil
}

// Delete removes one of the student's reports after confirmation.
func (a *App) Delete(ctx context.Context, ref string) error {
	if !a.isLoggedIn() {
		return a.report(ctx, workspace.ErrNotAuthenticated)
	}
	r, err := a.row(ref)
	if err != nil {
		return a.report(ctx, err)
	}
	if !r.Deletable {
		return a.report(ctx, workspace.ErrNotPermitted)
	}

	ok, err := confirm(a.reader, fmt.Sprintf("Delete %q?", r.Label), a.out)
	if err != nil {
		return a.report(ctx, err)
	}
	if !ok {
		fmt.Fprintln(a.out, "Cancelled.")
		return nil
	}

	return a.show(ctx, a.workspace.Delete(ctx, r.ID))
}

// Review sets the status of the open report.
func (a *App) Review(ctx context.Context, status models.Status) error {
	if err := a.workspace.SetStatus(ctx, status); err != nil {
		return a.report(ctx, err)
	}
	fmt.Fprintln(a.out, "Status updated!")
	renderView(a.out, a.workspace.View())
	return nil
}
