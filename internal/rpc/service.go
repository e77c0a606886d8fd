package rpc

import (
	"context"

	"google.golang.org/grpc"
)

const ServiceName = "timereport.v1.TimeReportService"

const (
	LoginMethod            = "/" + ServiceName + "/Login"
	RegisterMethod         = "/" + ServiceName + "/Register"
	ListOwnNotesMethod     = "/" + ServiceName + "/ListOwnNotes"
	CreateNoteMethod       = "/" + ServiceName + "/CreateNote"
	GetNoteMethod          = "/" + ServiceName + "/GetNote"
	DeleteNoteMethod       = "/" + ServiceName + "/DeleteNote"
	ListStudentsMethod     = "/" + ServiceName + "/ListStudents"
	ListStudentNotesMethod = "/" + ServiceName + "/ListStudentNotes"
	SetNoteStatusMethod    = "/" + ServiceName + "/SetNoteStatus"
)

// TimeReportServiceClient is the client API of the Time Report service.
type TimeReportServiceClient interface {
	Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error)
	Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*RegisterResponse, error)
	ListOwnNotes(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*NoteList, error)
	CreateNote(ctx context.Context, in *CreateNoteRequest, opts ...grpc.CallOption) (*Note, error)
	GetNote(ctx context.Context, in *NoteRequest, opts ...grpc.CallOption) (*Note, error)
	DeleteNote(ctx context.Context, in *NoteRequest, opts ...grpc.CallOption) (*Empty, error)
	ListStudents(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*StudentList, error)
	ListStudentNotes(ctx context.Context, in *StudentNotesRequest, opts ...grpc.CallOption) (*NoteList, error)
	SetNoteStatus(ctx context.Context, in *SetNoteStatusRequest, opts ...grpc.CallOption) (*SetNoteStatusResponse, error)
}

type timeReportServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewTimeReportServiceClient(cc grpc.ClientConnInterface) TimeReportServiceClient {
	return &timeReportServiceClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *timeReportServiceClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error) {
	return invoke[LoginResponse](ctx, c.cc, LoginMethod, in, opts)
}

func (c *timeReportServiceClient) Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*RegisterResponse, error) {
	return invoke[RegisterResponse](ctx, c.cc, RegisterMethod, in, opts)
}

func (c *timeReportServiceClient) ListOwnNotes(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*NoteList, error) {
	return invoke[NoteList](ctx, c.cc, ListOwnNotesMethod, in, opts)
}

func (c *timeReportServiceClient) CreateNote(ctx context.Context, in *CreateNoteRequest, opts ...grpc.CallOption) (*Note, error) {
	return invoke[Note](ctx, c.cc, CreateNoteMethod, in, opts)
}

func (c *timeReportServiceClient) GetNote(ctx context.Context, in *NoteRequest, opts ...grpc.CallOption) (*Note, error) {
	return invoke[Note](ctx, c.cc, GetNoteMethod, in, opts)
}

func (c *timeReportServiceClient) DeleteNote(ctx context.Context, in *NoteRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, DeleteNoteMethod, in, opts)
}

func (c *timeReportServiceClient) ListStudents(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*StudentList, error) {
	return invoke[StudentList](ctx, c.cc, ListStudentsMethod, in, opts)
}

func (c *timeReportServiceClient) ListStudentNotes(ctx context.Context, in *StudentNotesRequest, opts ...grpc.CallOption) (*NoteList, error) {
	return invoke[NoteList](ctx, c.cc, ListStudentNotesMethod, in, opts)
}

func (c *timeReportServiceClient) SetNoteStatus(ctx context.Context, in *SetNoteStatusRequest, opts ...grpc.CallOption) (*SetNoteStatusResponse, error) {
	return invoke[SetNoteStatusResponse](ctx, c.cc, SetNoteStatusMethod, in, opts)
}
