package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/timereport/internal/client/client"
	"github.com/dmitrijs2005/timereport/internal/client/models"
	"github.com/dmitrijs2005/timereport/internal/client/workspace"
)

const (
	msgUnavailable    = "Service unavailable"
	msgSessionExpired = "Your session has expired. Please log in again."
	msgLoginFirst     = "Please log in first."
	msgNotHere        = "Not available here."
	msgNoSelection    = "Open a report first."
	msgNoSuchRow      = "No such entry in the list."
)

// userMessage turns err into what the user is told. The empty string means
// nothing is shown.
func userMessage(err error) string {
	var (
		verr *models.ValidationError
		aerr *client.AuthError
	)

	switch {
	case errors.As(err, &verr):
		return "Fill in all fields: " + strings.Join(verr.Fields, ", ")
	case errors.As(err, &aerr):
		return aerr.Message
	case errors.Is(err, workspace.ErrSuperseded):
		return ""
	case errors.Is(err, client.ErrUnauthorized):
		return msgSessionExpired
	case errors.Is(err, client.ErrUnavailable):
		return msgUnavailable
	case errors.Is(err, client.ErrNoAccess):
		return workspace.MessageNoAccess
	case errors.Is(err, workspace.ErrNotAuthenticated):
		return msgLoginFirst
	case errors.Is(err, workspace.ErrNotPermitted):
		return msgNotHere
	case errors.Is(err, workspace.ErrNoActiveNote):
		return msgNoSelection
	case errors.Is(err, workspace.ErrNotInScope):
		return msgNoSuchRow
	default:
		return fmt.Sprintf("Error: %s", err)
	}
}

// report shows err to the user and logs anything unexpected. It returns err
// unchanged, or nil for a superseded response.
func (a *App) report(ctx context.Context, err error) error {
	if errors.Is(err, workspace.ErrSuperseded) {
		a.log.Debug(ctx, "superseded response ignored")
		return nil
	}

	msg := userMessage(err)
	if strings.HasPrefix(msg, "Error: ") {
		a.log.Error(ctx, "command failed", "error", err)
	}
	if msg != "" {
		fmt.Fprintln(a.out, msg)
	}
	return err
}
