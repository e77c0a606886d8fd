package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/timereport/internal/client/models"
	"github.com/dmitrijs2005/timereport/internal/common"
	"github.com/dmitrijs2005/timereport/internal/logging"
	"github.com/dmitrijs2005/timereport/internal/rpc"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	dialOpts    []grpc.DialOption
	timeout     time.Duration
	log         logging.Logger

	conn        *grpc.ClientConn
	client      rpc.TimeReportServiceClient
	accessToken string
}

// NewTimeReportClient connects lazily to endpointURL. Extra dial options are
// applied after the defaults, so tests can swap the transport. A zero
// timeout leaves call deadlines to the caller's context.
func NewTimeReportClient(endpointURL string, timeout time.Duration, log logging.Logger, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{
		endpointURL: endpointURL,
		dialOpts:    opts,
		timeout:     timeout,
		log:         log.With("component", "grpc_client"),
	}
	if err := c.InitGRPCClient(); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {
	opts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor),
	}, s.dialOpts...)

	conn, err := grpc.NewClient(s.endpointURL, opts...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = rpc.NewTimeReportServiceClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *GRPCClient) SetCredential(token string) {
	s.accessToken = token
}

func withCredential(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	md.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if s.accessToken != "" {
		ctx = withCredential(ctx, s.accessToken)
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

// loggingInterceptor tags the call with a fresh request id and logs its
// outcome and duration.
func (s *GRPCClient) loggingInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	requestID := uuid.NewString()
	ctx = metadata.AppendToOutgoingContext(ctx, common.RequestIDHeaderName, requestID)

	start := time.Now()
	err := invoker(ctx, method, req, reply, cc, opts...)
	elapsed := time.Since(start)

	if err != nil {
		s.log.Warn(ctx, "rpc failed", "method", method, "request_id", requestID,
			"code", status.Code(err).String(), "duration", elapsed)
		return err
	}
	s.log.Debug(ctx, "rpc done", "method", method, "request_id", requestID, "duration", elapsed)
	return nil
}

func (s *GRPCClient) callCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.timeout)
}

func (s *GRPCClient) Authenticate(ctx context.Context, username, password string) (models.Session, error) {
	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	resp, err := s.client.Login(ctx, &rpc.LoginRequest{Username: username, Password: password})
	if err != nil {
		return models.Session{}, s.mapAuthError(err)
	}

	role, err := models.ParseRole(resp.Role)
	if err != nil {
		return models.Session{}, err
	}

	name := resp.Username
	if name == "" {
		name = username
	}
	s.accessToken = resp.AccessToken

	return models.Session{Credential: resp.AccessToken, Role: role, DisplayName: name}, nil
}

func (s *GRPCClient) Register(ctx context.Context, username, password string, isTeacher bool) error {
	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	req := &rpc.RegisterRequest{Username: username, Password: password, IsTeacher: isTeacher}
	if _, err := s.client.Register(ctx, req); err != nil {
		return s.mapAuthError(err)
	}
	return nil
}

func (s *GRPCClient) ListOwnNotes(ctx context.Context) ([]*models.Note, error) {
	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	resp, err := s.client.ListOwnNotes(ctx, &rpc.Empty{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return toNotes(resp.Notes), nil
}

func (s *GRPCClient) CreateNote(ctx context.Context, draft models.NoteDraft) (*models.Note, error) {
	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	req := &rpc.CreateNoteRequest{Title: draft.Title, Content: draft.Content}
	if draft.Attachment != nil {
		req.Attachment = &rpc.Attachment{Filename: draft.Attachment.Filename, Data: draft.Attachment.Data}
	}

	resp, err := s.client.CreateNote(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	return toNote(resp), nil
}

func (s *GRPCClient) GetNote(ctx context.Context, id int64) (*models.Note, error) {
	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	resp, err := s.client.GetNote(ctx, &rpc.NoteRequest{ID: id})
	if err != nil {
		return nil, s.mapError(err)
	}
	return toNote(resp), nil
}

func (s *GRPCClient) DeleteNote(ctx context.Context, id int64) error {
	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	if _, err := s.client.DeleteNote(ctx, &rpc.NoteRequest{ID: id}); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) ListStudents(ctx context.Context) ([]*models.Student, error) {
	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	resp, err := s.client.ListStudents(ctx, &rpc.Empty{})
	if err != nil {
		return nil, s.mapError(err)
	}

	out := make([]*models.Student, 0, len(resp.Students))
	for _, st := range resp.Students {
		out = append(out, &models.Student{ID: st.ID, Username: st.Username})
	}
	return out, nil
}

func (s *GRPCClient) ListStudentNotes(ctx context.Context, studentID int64) ([]*models.Note, error) {
	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	resp, err := s.client.ListStudentNotes(ctx, &rpc.StudentNotesRequest{StudentID: studentID})
	if err != nil {
		return nil, s.mapError(err)
	}
	return toNotes(resp.Notes), nil
}

func (s *GRPCClient) SetNoteStatus(ctx context.Context, noteID int64, st models.Status) (models.Status, error) {
	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	resp, err := s.client.SetNoteStatus(ctx, &rpc.SetNoteStatusRequest{NoteID: noteID, Status: string(st)})
	if err != nil {
		return "", s.mapError(err)
	}
	if resp.Status == "" {
		return st, nil
	}
	return models.Status(resp.Status), nil
}

func (s *GRPCClient) mapError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrUnavailable
	}
	st, ok := status.FromError(err)
	if !ok {
		return fmt.Errorf("rpc error: %w", err)
	}

	switch st.Code() {
	case codes.Unauthenticated:
		return ErrUnauthorized
	case codes.PermissionDenied, codes.NotFound:
		return ErrNoAccess
	case codes.Unavailable, codes.DeadlineExceeded, codes.Canceled:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}

// mapAuthError keeps transport failures as ErrUnavailable and turns anything
// else into an AuthError carrying the service message.
func (s *GRPCClient) mapAuthError(err error) error {
	if errors.Is(s.mapError(err), ErrUnavailable) {
		return ErrUnavailable
	}
	if st, ok := status.FromError(err); ok {
		return &AuthError{Message: st.Message()}
	}
	return &AuthError{Message: err.Error()}
}

func toNote(n *rpc.Note) *models.Note {
	if n == nil {
		return nil
	}
	return &models.Note{
		ID:            n.ID,
		Title:         n.Title,
		Content:       n.Content,
		AttachmentRef: n.AttachmentURL,
		Status:        models.Status(n.Status),
		OwnerID:       n.OwnerID,
		UpdatedAt:     n.UpdatedAt,
	}
}

func toNotes(in []*rpc.Note) []*models.Note {
	out := make([]*models.Note, 0, len(in))
	for _, n := range in {
		out = append(out, toNote(n))
	}
	return out
}
