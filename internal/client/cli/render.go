package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/timereport/internal/client/models"
	"github.com/dmitrijs2005/timereport/internal/client/workspace"
)

const separator = "----------------------------------------"

// reviewCommands names the REPL command for each settable status.
var reviewCommands = map[models.Status]string{
	models.StatusAccepted: "accept",
	models.StatusRejected: "reject",
	models.StatusPending:  "pending",
}

// renderView prints the list and detail fragments of v. A view without a
// heading (logged out) prints nothing.
func renderView(w io.Writer, v workspace.View) {
	if v.Heading == "" {
		return
	}

	fmt.Fprintf(w, "== %s ==\n", v.Heading)
	for _, r := range v.Rows {
		renderRow(w, r)
	}
	fmt.Fprintln(w, separator)
	renderDetail(w, v.Detail)
	if v.Review != nil {
		renderReview(w, v.Review)
	}
}

func renderRow(w io.Writer, r workspace.Row) {
	marker := " "
	if r.Active {
		marker = ">"
	}

	switch r.Kind {
	case workspace.RowBack:
		fmt.Fprintf(w, "  <- %s (back)\n", r.Label)
	case workspace.RowEmpty:
		fmt.Fprintf(w, "     %s\n", r.Label)
	case workspace.RowStudent:
		fmt.Fprintf(w, "%s %2d. %s\n", marker, r.Ref, r.Label)
	case workspace.RowNote:
		fmt.Fprintf(w, "%s %2d. %s  [%s]\n", marker, r.Ref, r.Label, r.Badge)
	}
}

func renderDetail(w io.Writer, d workspace.Detail) {
	if d.Note == nil {
		if d.Text != "" {
			fmt.Fprintln(w, d.Text)
		}
		return
	}

	fmt.Fprintln(w, d.Note.Title)
	fmt.Fprintln(w)
	fmt.Fprintln(w, d.Note.Content)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Status: %s\n", d.Badge)

	if att := d.Attachment; att != nil {
		if att.Kind == models.AttachmentImage {
			fmt.Fprintf(w, "Image: %s\n", att.Ref)
		} else {
			fmt.Fprintf(w, "Open attachment: %s\n", att.Ref)
		}
	}
}

func renderReview(w io.Writer, rc *workspace.ReviewControls) {
	opts := make([]string, 0, len(rc.Options))
	for _, st := range rc.Options {
		label := reviewCommands[st]
		if st == rc.Current {
			label += " (current)"
		}
		opts = append(opts, label)
	}
	fmt.Fprintf(w, "Review: %s\n", strings.Join(opts, " | "))
}
