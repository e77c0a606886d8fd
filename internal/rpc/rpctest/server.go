// Package rpctest runs an in-memory Time Report service over an in-process
// gRPC connection, for tests of the client stack.
//
// The server keeps users and notes in maps and enforces the same rules as
// the real service: students see and delete only their own notes, only
// teachers read the roster or change a status, and every call other than
// Login and Register needs a valid bearer token.
//
//	srv := rpctest.NewServer()
//	defer srv.Close()
//	teacher := srv.AddUser("mrs.k", "pw", "teacher")
//	c, _ := client.NewTimeReportClient(srv.Target(), time.Second, logging.Nop(), srv.DialOptions()...)
package rpctest

import (
	"context"
	"net"
	"sync"
	"time"

	"github.com/dmitrijs2005/timereport/internal/common"
	"github.com/dmitrijs2005/timereport/internal/rpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/test/bufconn"
)

const bufSize = 1 << 20

type user struct {
	id       int64
	username string
	password string
	role     string
}

// Call is one request observed by the server.
type Call struct {
	Method    string
	Token     string
	RequestID string
}

type Server struct {
	secret   []byte
	tokenTTL time.Duration

	lis  *bufconn.Listener
	grpc *grpc.Server

	mu     sync.Mutex
	nextID int64
	users  map[string]*user
	notes  map[int64]*rpc.Note
	calls  []Call
	now    func() time.Time
}

// NewServer starts serving immediately; call Close when done.
func NewServer() *Server {
	s := &Server{
		secret:   []byte("rpctest-secret"),
		tokenTTL: time.Hour,
		lis:      bufconn.Listen(bufSize),
		users:    make(map[string]*user),
		notes:    make(map[int64]*rpc.Note),
		now:      time.Now,
	}

	s.grpc = grpc.NewServer(grpc.ChainUnaryInterceptor(s.authInterceptor))
	rpc.RegisterTimeReportServiceServer(s.grpc, &handler{s: s})

	go func() { _ = s.grpc.Serve(s.lis) }()
	return s
}

// Target is the dial target to pass together with DialOptions.
func (s *Server) Target() string {
	return "passthrough:///bufnet"
}

func (s *Server) DialOptions() []grpc.DialOption {
	return []grpc.DialOption{
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return s.lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}
}

func (s *Server) Close() {
	s.grpc.Stop()
	_ = s.lis.Close()
}

// SetTokenTTL changes the lifetime of tokens issued from now on. A negative
// value issues already expired tokens.
func (s *Server) SetTokenTTL(ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokenTTL = ttl
}

func (s *Server) AddUser(username, password, role string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addUserLocked(username, password, role)
}

func (s *Server) addUserLocked(username, password, role string) int64 {
	s.nextID++
	s.users[username] = &user{id: s.nextID, username: username, password: password, role: role}
	return s.nextID
}

// AddNote stores a note owned by ownerID and returns its id.
func (s *Server) AddNote(ownerID int64, title, content, status string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addNoteLocked(&rpc.Note{Title: title, Content: content, Status: status, OwnerID: ownerID})
}

func (s *Server) addNoteLocked(n *rpc.Note) int64 {
	s.nextID++
	n.ID = s.nextID
	n.UpdatedAt = s.now().Add(time.Duration(n.ID) * time.Millisecond)
	s.notes[n.ID] = n
	return n.ID
}

// Note returns a copy of the stored note, or nil.
func (s *Server) Note(id int64) *rpc.Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.notes[id]
	if !ok {
		return nil
	}
	cp := *n
	return &cp
}

// Calls returns every request received so far, in order.
func (s *Server) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Call(nil), s.calls...)
}

func (s *Server) record(method string, md metadata.MD) {
	c := Call{Method: method}
	if v := md.Get(common.AuthorizationHeaderName); len(v) > 0 {
		c.Token = v[0]
	}
	if v := md.Get(common.RequestIDHeaderName); len(v) > 0 {
		c.RequestID = v[0]
	}

	s.mu.Lock()
	s.calls = append(s.calls, c)
	s.mu.Unlock()
}
