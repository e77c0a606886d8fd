package models

import (
	"path"
	"strings"
	"time"
)

// Note is a student's report as returned by the service.
type Note struct {
	ID            int64
	Title         string
	Content       string
	AttachmentRef string
	Status        Status
	OwnerID       int64
	UpdatedAt     time.Time
}

func (n *Note) Badge() Badge {
	return BadgeFor(n.Status)
}

// Attachment returns nil when the note has no attachment.
func (n *Note) Attachment() *Attachment {
	if n.AttachmentRef == "" {
		return nil
	}
	return &Attachment{Ref: n.AttachmentRef, Kind: DetectAttachmentKind(n.AttachmentRef)}
}

// Student is a roster entry visible to teachers.
type Student struct {
	ID       int64
	Username string
}

type AttachmentKind int

const (
	AttachmentFile AttachmentKind = iota
	AttachmentImage
)

// Attachment is a reference to an uploaded file and how to present it.
type Attachment struct {
	Ref  string
	Kind AttachmentKind
}

var imageExtensions = map[string]struct{}{
	".jpeg": {},
	".jpg":  {},
	".gif":  {},
	".png":  {},
}

// DetectAttachmentKind classifies ref by its extension, ignoring case and
// any query string. Only jpeg, jpg, gif and png count as images.
func DetectAttachmentKind(ref string) AttachmentKind {
	if i := strings.IndexAny(ref, "?#"); i >= 0 {
		ref = ref[:i]
	}
	if _, ok := imageExtensions[strings.ToLower(path.Ext(ref))]; ok {
		return AttachmentImage
	}
	return AttachmentFile
}
