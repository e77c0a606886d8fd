// Package common holds values shared by the transport and the interactive
// client: metadata keys and small byte helpers.
package common

// AuthorizationHeaderName is the outgoing gRPC metadata key that carries the
// session credential.
const AuthorizationHeaderName = "authorization"

// BearerPrefix precedes the credential in AuthorizationHeaderName.
const BearerPrefix = "Bearer "

// RequestIDHeaderName tags each outbound call so client and server logs can
// be correlated.
const RequestIDHeaderName = "x-request-id"
