package rpctest

import (
	"context"
	"sort"
	"unicode/utf8"

	"github.com/dmitrijs2005/timereport/internal/rpc"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	roleStudent = "student"
	roleTeacher = "teacher"
)

var (
	errNoteNotFound = status.Error(codes.NotFound, "note not found or access denied")
	errTeacherOnly  = status.Error(codes.PermissionDenied, "teachers only")
)

type handler struct {
	s *Server
}

func (h *handler) Login(_ context.Context, in *rpc.LoginRequest) (*rpc.LoginResponse, error) {
	h.s.mu.Lock()
	u, ok := h.s.users[in.Username]
	ttl := h.s.tokenTTL
	h.s.mu.Unlock()

	if !ok || u.password != in.Password {
		return nil, status.Error(codes.Unauthenticated, "Incorrect username or password")
	}

	token, err := issueToken(u.id, u.role, h.s.secret, ttl)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &rpc.LoginResponse{AccessToken: token, Role: u.role, Username: u.username}, nil
}

func (h *handler) Register(_ context.Context, in *rpc.RegisterRequest) (*rpc.RegisterResponse, error) {
	if in.Username == "" || in.Password == "" {
		return nil, status.Error(codes.InvalidArgument, "Username and password are required")
	}

	h.s.mu.Lock()
	defer h.s.mu.Unlock()

	if _, exists := h.s.users[in.Username]; exists {
		return nil, status.Error(codes.AlreadyExists, "Username already registered")
	}
	role := roleStudent
	if in.IsTeacher {
		role = roleTeacher
	}
	h.s.addUserLocked(in.Username, in.Password, role)
	return &rpc.RegisterResponse{Message: "User created successfully"}, nil
}

func (h *handler) ListOwnNotes(ctx context.Context, _ *rpc.Empty) (*rpc.NoteList, error) {
	caller := callerFrom(ctx)
	return &rpc.NoteList{Notes: h.notesOf(caller.UserID)}, nil
}

func (h *handler) CreateNote(ctx context.Context, in *rpc.CreateNoteRequest) (*rpc.Note, error) {
	caller := callerFrom(ctx)
	if caller.Role != roleStudent {
		return nil, status.Error(codes.PermissionDenied, "students only")
	}
	if n := utf8.RuneCountInString(in.Title); n < 1 || n > 100 {
		return nil, status.Error(codes.InvalidArgument, "title must be 1 to 100 characters")
	}
	if in.Content == "" {
		return nil, status.Error(codes.InvalidArgument, "content is required")
	}

	note := &rpc.Note{Title: in.Title, Content: in.Content, Status: "pending", OwnerID: caller.UserID}
	if in.Attachment != nil && in.Attachment.Filename != "" {
		note.AttachmentURL = "/uploads/" + uuid.NewString() + "_" + in.Attachment.Filename
	}

	h.s.mu.Lock()
	defer h.s.mu.Unlock()
	h.s.addNoteLocked(note)
	cp := *note
	return &cp, nil
}

func (h *handler) GetNote(ctx context.Context, in *rpc.NoteRequest) (*rpc.Note, error) {
	caller := callerFrom(ctx)

	h.s.mu.Lock()
	defer h.s.mu.Unlock()

	n, ok := h.s.notes[in.ID]
	if !ok || (caller.Role != roleTeacher && n.OwnerID != caller.UserID) {
		return nil, errNoteNotFound
	}
	cp := *n
	return &cp, nil
}

func (h *handler) DeleteNote(ctx context.Context, in *rpc.NoteRequest) (*rpc.Empty, error) {
	caller := callerFrom(ctx)

	h.s.mu.Lock()
	defer h.s.mu.Unlock()

	n, ok := h.s.notes[in.ID]
	if !ok || n.OwnerID != caller.UserID {
		return nil, errNoteNotFound
	}
	delete(h.s.notes, in.ID)
	return &rpc.Empty{}, nil
}

func (h *handler) ListStudents(ctx context.Context, _ *rpc.Empty) (*rpc.StudentList, error) {
	if callerFrom(ctx).Role != roleTeacher {
		return nil, errTeacherOnly
	}

	h.s.mu.Lock()
	defer h.s.mu.Unlock()

	out := make([]*rpc.Student, 0)
	for _, u := range h.s.users {
		if u.role == roleStudent {
			out = append(out, &rpc.Student{ID: u.id, Username: u.username})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return &rpc.StudentList{Students: out}, nil
}

func (h *handler) ListStudentNotes(ctx context.Context, in *rpc.StudentNotesRequest) (*rpc.NoteList, error) {
	if callerFrom(ctx).Role != roleTeacher {
		return nil, errTeacherOnly
	}
	return &rpc.NoteList{Notes: h.notesOf(in.StudentID)}, nil
}

func (h *handler) SetNoteStatus(ctx context.Context, in *rpc.SetNoteStatusRequest) (*rpc.SetNoteStatusResponse, error) {
	if callerFrom(ctx).Role != roleTeacher {
		return nil, errTeacherOnly
	}
	switch in.Status {
	case "pending", "accepted", "rejected":
	default:
		return nil, status.Error(codes.InvalidArgument, "unknown status")
	}

	h.s.mu.Lock()
	defer h.s.mu.Unlock()

	n, ok := h.s.notes[in.NoteID]
	if !ok {
		return nil, errNoteNotFound
	}
	n.Status = in.Status
	return &rpc.SetNoteStatusResponse{NoteID: n.ID, Status: n.Status}, nil
}

// notesOf returns copies of ownerID's notes, most recently updated first.
func (h *handler) notesOf(ownerID int64) []*rpc.Note {
	h.s.mu.Lock()
	defer h.s.mu.Unlock()

	out := make([]*rpc.Note, 0)
	for _, n := range h.s.notes {
		if n.OwnerID == ownerID {
			cp := *n
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	return out
}
