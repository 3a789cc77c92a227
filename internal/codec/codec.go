// Package codec provides the interchangeable wire encodings used by the
// repository. Accounts, settings and provider services are stored as JSON;
// the profile and the catalog keep the legacy XML document shape.
//
// Both codecs obey the same contract: Decode(Encode(x)) restores every
// defined field of x. Failure handling for malformed blobs lives in the
// repository, which maps any Decode error to "collection absent".
package codec

// Codec encodes one collection's full state to a text blob and back.
type Codec interface {
	// Encode serializes v into a text blob.
	Encode(v any) ([]byte, error)
	// Decode parses blob into v.
	Decode(blob []byte, v any) error
	// Name identifies the wire format, e.g. "json" or "xml".
	Name() string
}
