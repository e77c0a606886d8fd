package rpc

import (
	"context"
	"strings"

	"google.golang.org/grpc"
)

// TimeReportServiceServer is implemented by anything serving the Time Report
// API. The client tree only ships an in-memory implementation (rpctest).
type TimeReportServiceServer interface {
	Login(context.Context, *LoginRequest) (*LoginResponse, error)
	Register(context.Context, *RegisterRequest) (*RegisterResponse, error)
	ListOwnNotes(context.Context, *Empty) (*NoteList, error)
	CreateNote(context.Context, *CreateNoteRequest) (*Note, error)
	GetNote(context.Context, *NoteRequest) (*Note, error)
	DeleteNote(context.Context, *NoteRequest) (*Empty, error)
	ListStudents(context.Context, *Empty) (*StudentList, error)
	ListStudentNotes(context.Context, *StudentNotesRequest) (*NoteList, error)
	SetNoteStatus(context.Context, *SetNoteStatusRequest) (*SetNoteStatusResponse, error)
}

func unary[Req any, Resp any](fullMethod string, call func(TimeReportServiceServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: fullMethod[strings.LastIndex(fullMethod, "/")+1:],
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(TimeReportServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(TimeReportServiceServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// ServiceDesc describes the Time Report service for grpc.Server.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*TimeReportServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(LoginMethod, TimeReportServiceServer.Login),
		unary(RegisterMethod, TimeReportServiceServer.Register),
		unary(ListOwnNotesMethod, TimeReportServiceServer.ListOwnNotes),
		unary(CreateNoteMethod, TimeReportServiceServer.CreateNote),
		unary(GetNoteMethod, TimeReportServiceServer.GetNote),
		unary(DeleteNoteMethod, TimeReportServiceServer.DeleteNote),
		unary(ListStudentsMethod, TimeReportServiceServer.ListStudents),
		unary(ListStudentNotesMethod, TimeReportServiceServer.ListStudentNotes),
		unary(SetNoteStatusMethod, TimeReportServiceServer.SetNoteStatus),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "timereport.v1",
}

func RegisterTimeReportServiceServer(s grpc.ServiceRegistrar, srv TimeReportServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}
