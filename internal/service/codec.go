package service

import (
	"encoding/json"

	"connectrpc.com/connect"
)

// jsonCodec lets Connect carry plain Go structs as JSON. It replaces the
// default protojson codec, which only accepts proto messages.
type jsonCodec struct{}

var _ connect.Codec = jsonCodec{}

func (jsonCodec) Name() string { return "json" }

func (jsonCodec) Marshal(msg any) ([]byte, error) {
	return json.Marshal(msg)
}

func (jsonCodec) Unmarshal(data []byte, msg any) error {
	return json.Unmarshal(data, msg)
}

// WithJSON selects the JSON codec on a handler or client.
func WithJSON() connect.Option {
	return connect.WithCodec(jsonCodec{})
}
