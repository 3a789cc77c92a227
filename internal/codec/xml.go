package codec

import (
	"encoding/xml"
	"fmt"
)

// xmlHeader matches the declaration the legacy xml2js builder emitted.
const xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

// XML encodes collections as XML documents in the legacy schema: one root
// element per collection, one child element per scalar field.
type XML struct{}

// Encode serializes v as an indented XML document with a declaration.
func (XML) Encode(v any) ([]byte, error) {
	body, err := xml.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xmlHeader), body...), nil
}

// Decode parses an XML blob into v. An empty blob is rejected so callers
// treat it the same as a malformed document.
func (XML) Decode(blob []byte, v any) error {
	if len(blob) == 0 {
		return fmt.Errorf("empty xml document")
	}
	return xml.Unmarshal(blob, v)
}

// Name returns "xml".
func (XML) Name() string { return "xml" }
