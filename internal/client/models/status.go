package models

import (
	"errors"
	"fmt"
	"strings"
)

// Status is the review state of a note.
type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"

	// StatusVerified is a legacy spelling of StatusAccepted still returned by
	// older records. It is displayed like accepted and never sent.
	StatusVerified Status = "verified"
)

var ErrUnknownStatus = errors.New("unknown status")

// ReviewStatuses are the values a teacher may set, in display order.
var ReviewStatuses = []Status{StatusAccepted, StatusRejected, StatusPending}

// ParseReviewStatus accepts only the statuses a teacher can set.
func ParseReviewStatus(s string) (Status, error) {
	switch st := Status(strings.ToLower(strings.TrimSpace(s))); st {
	case StatusPending, StatusAccepted, StatusRejected:
		return st, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
	}
}

// Badge is the three-way display classification of a status.
type Badge int

const (
	BadgeUnderReview Badge = iota
	BadgePositive
	BadgeNegative
)

// BadgeFor maps every status, known or not, to exactly one badge.
func BadgeFor(s Status) Badge {
	switch s {
	case StatusAccepted, StatusVerified:
		return BadgePositive
	case StatusRejected:
		return BadgeNegative
	default:
		return BadgeUnderReview
	}
}

func (b Badge) Label() string {
	switch b {
	case BadgePositive:
		return "Accepted"
	case BadgeNegative:
		return "Not accepted"
	default:
		return "Under review"
	}
}

func (b Badge) Symbol() string {
	switch b {
	case BadgePositive:
		return "✔"
	case BadgeNegative:
		return "✖"
	default:
		return "⏳"
	}
}

func (b Badge) String() string {
	return b.Symbol() + " " + b.Label()
}
