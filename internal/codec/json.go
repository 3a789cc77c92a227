package codec

import "encoding/json"

// JSON encodes collections as indented JSON.
type JSON struct{}

// Encode serializes v as indented JSON.
func (JSON) Encode(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}

// Decode parses a JSON blob into v.
func (JSON) Decode(blob []byte, v any) error {
	return json.Unmarshal(blob, v)
}

// Name returns "json".
func (JSON) Name() string { return "json" }
