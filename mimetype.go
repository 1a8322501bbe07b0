package bodycodec

import (
	"strings"
)

// MimeType enumerates the content types with built-in encoders. Non default
// types can be used by wrapping a custom string:
//
//	MimeType("text/csv")
type MimeType string

const (
	JSON           = MimeType("application/json")
	XML            = MimeType("application/xml")
	YAML           = MimeType("application/yaml")
	Msgpack        = MimeType("application/msgpack")
	Protobuf       = MimeType("application/protobuf")
	FormURLEncoded = MimeType("application/x-www-form-urlencoded")
	FormData       = MimeType("multipart/form-data")
	Text           = MimeType("text/plain")
	OctetStream    = MimeType("application/octet-stream")
	// Unknown is used when the incoming string is blank.
	Unknown = MimeType("")
)

// Default mime types that encode objects (as opposed to raw text), matched
// by bare subtype as well as the full "application/..." form.
var objectMimeTypes = []MimeType{JSON, XML, YAML, Msgpack, Protobuf}

// Interface for objects carrying headers, such as http.Request.Header.
type headerFetcher interface {
	Get(string) string
}

// FromHeader extracts the MimeType from a Content-Type header.
func FromHeader(headers headerFetcher) MimeType {
	return FromString(headers.Get("Content-Type"))
}

// FromString converts a content type string to a MimeType. Parameters such
// as ";charset=utf-8" are stripped and case is ignored. Default types are
// also recognized by subtype suffix, so "json", "x-json", "application/json"
// and "application/hal+json" all yield JSON.
func FromString(incoming string) MimeType {
	incoming = strings.TrimSpace(strings.ToLower(incoming))
	if mediaType, _, found := strings.Cut(incoming, ";"); found {
		incoming = strings.TrimSpace(mediaType)
	}

	if incoming == "" {
		return Unknown
	}
	if incoming == "text/plain" || incoming == "text" {
		return Text
	}

	for _, mimeType := range objectMimeTypes {
		subtype := strings.Split(string(mimeType), "/")[1]
		if strings.HasSuffix(incoming, subtype) {
			return mimeType
		}
	}

	return MimeType(incoming)
}
