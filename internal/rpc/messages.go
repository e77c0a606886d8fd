package rpc

import "time"

// Empty is used where a call takes or returns nothing.
type Empty struct{}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	Role        string `json:"role"`
	Username    string `json:"username"`
}

type RegisterRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	IsTeacher bool   `json:"is_teacher"`
}

type RegisterResponse struct {
	Message string `json:"message"`
}

type Note struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	AttachmentURL string    `json:"attachment_url,omitempty"`
	Status        string    `json:"status"`
	OwnerID       int64     `json:"owner_id"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type NoteList struct {
	Notes []*Note `json:"notes"`
}

// Attachment carries file bytes with a new note; Data is base64 on the wire.
type Attachment struct {
	Filename string `json:"filename"`
	Data     []byte `json:"data"`
}

type CreateNoteRequest struct {
	Title      string      `json:"title"`
	Content    string      `json:"content"`
	Attachment *Attachment `json:"attachment,omitempty"`
}

// NoteRequest addresses a single note for GetNote and DeleteNote.
type NoteRequest struct {
	ID int64 `json:"id"`
}

type Student struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

type StudentList struct {
	Students []*Student `json:"students"`
}

type StudentNotesRequest struct {
	StudentID int64 `json:"student_id"`
}

type SetNoteStatusRequest struct {
	NoteID int64  `json:"note_id"`
	Status string `json:"status"`
}

type SetNoteStatusResponse struct {
	NoteID int64  `json:"note_id"`
	Status string `json:"status"`
}
