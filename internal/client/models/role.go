// Package models defines the client-side domain types of Time Report:
// roles, review statuses and their display badges, notes, students,
// attachments and the session.
package models

import (
	"errors"
	"fmt"
)

// Role is what the service granted the session at login.
type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
)

var ErrUnknownRole = errors.New("unknown role")

func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleStudent, RoleTeacher:
		return r, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
	}
}

// Label is the role as shown next to the display name.
func (r Role) Label() string {
	switch r {
	case RoleTeacher:
		return "Teacher"
	case RoleStudent:
		return "Student"
	default:
		return string(r)
	}
}
