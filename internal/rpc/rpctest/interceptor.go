package rpctest

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/timereport/internal/common"
	"github.com/dmitrijs2005/timereport/internal/rpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const claimsKey ctxKey = "claims"

var publicMethods = map[string]struct{}{
	rpc.LoginMethod:    {},
	rpc.RegisterMethod: {},
}

func (s *Server) authInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	md, _ := metadata.FromIncomingContext(ctx)
	s.record(info.FullMethod, md)

	if _, ok := publicMethods[info.FullMethod]; ok {
		return handler(ctx, req)
	}

	var raw string
	if values := md.Get(common.AuthorizationHeaderName); len(values) > 0 {
		raw = strings.TrimPrefix(values[0], common.BearerPrefix)
	}
	if raw == "" {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	claims, err := parseToken(raw, s.secret)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, err.Error())
	}

	return handler(context.WithValue(ctx, claimsKey, claims), req)
}

func callerFrom(ctx context.Context) *Claims {
	c, _ := ctx.Value(claimsKey).(*Claims)
	return c
}
