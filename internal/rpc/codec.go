// Package rpc is the wire contract of the Time Report service: method names,
// request and response messages, a typed client and the server descriptor.
//
// Messages are plain Go structs encoded as JSON. The codec registers itself
// with grpc under CodecName and every call made through
// NewTimeReportServiceClient selects it via the content subtype, so both
// ends agree without generated code.
package rpc

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

// CodecName is the grpc content subtype ("application/grpc+json").
const CodecName = "json"

type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string {
	return CodecName
}

func init() {
	encoding.RegisterCodec(jsonCodec{})
}
