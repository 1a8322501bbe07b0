package bodycodec

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// CharsetUTF8 is the charset recorded for text bodies.
const CharsetUTF8 = "utf-8"

// RequestTemplate accumulates the pieces of an outgoing HTTP request.
// It is owned by the request-building pipeline; encoders only populate the
// body, charset and content type. A template is not safe for concurrent
// mutation.
type RequestTemplate struct {
	method  string
	url     string
	queries url.Values
	header  http.Header
	body    []byte
	charset string
}

// NewRequestTemplate creates a template for the given method and URL.
func NewRequestTemplate(method, rawURL string) *RequestTemplate {
	return &RequestTemplate{
		method:  method,
		url:     rawURL,
		queries: url.Values{},
		header:  http.Header{},
	}
}

// Method sets the HTTP method for the template.
func (t *RequestTemplate) Method(method string) *RequestTemplate {
	t.method = method
	return t
}

// URL sets the target URL for the template.
func (t *RequestTemplate) URL(rawURL string) *RequestTemplate {
	t.url = rawURL
	return t
}

// Query adds a single query parameter.
func (t *RequestTemplate) Query(key, value string) *RequestTemplate {
	t.queries.Add(key, value)
	return t
}

// Queries adds query parameters from the given values.
func (t *RequestTemplate) Queries(params url.Values) *RequestTemplate {
	for key, values := range params {
		for _, value := range values {
			t.queries.Add(key, value)
		}
	}
	return t
}

// Header sets (or replaces) a header on the template.
func (t *RequestTemplate) Header(key, value string) *RequestTemplate {
	t.header.Set(key, value)
	return t
}

// AddHeader adds a header to the template.
func (t *RequestTemplate) AddHeader(key, value string) *RequestTemplate {
	t.header.Add(key, value)
	return t
}

// ContentType sets the Content-Type header for the template.
func (t *RequestTemplate) ContentType(contentType string) *RequestTemplate {
	t.header.Set("Content-Type", contentType)
	return t
}

// GetHeader returns the first value of the named header.
func (t *RequestTemplate) GetHeader(key string) string {
	return t.header.Get(key)
}

// GetContentType returns the Content-Type header value.
func (t *RequestTemplate) GetContentType() string {
	return t.header.Get("Content-Type")
}

// SetBody sets the body bytes and an optional charset. An empty charset
// means none is implied, as with raw binary bodies.
func (t *RequestTemplate) SetBody(data []byte, charset string) *RequestTemplate {
	t.body = data
	t.charset = charset
	return t
}

// SetBodyText sets the body to the UTF-8 bytes of s.
func (t *RequestTemplate) SetBodyText(s string) *RequestTemplate {
	return t.SetBody([]byte(s), CharsetUTF8)
}

// Body returns the body bytes, nil when unset.
func (t *RequestTemplate) Body() []byte {
	return t.body
}

// Charset returns the charset associated with the body, "" when none.
func (t *RequestTemplate) Charset() string {
	return t.charset
}

// HasBody reports whether a body has been set.
func (t *RequestTemplate) HasBody() bool {
	return t.body != nil
}

// Clone returns a deep copy of the template. The copy owns its own header,
// query and body storage, so encoding into it never touches the original.
func (t *RequestTemplate) Clone() *RequestTemplate {
	clone := &RequestTemplate{
		method:  t.method,
		url:     t.url,
		queries: url.Values{},
		header:  t.header.Clone(),
		charset: t.charset,
	}
	for key, values := range t.queries {
		for _, value := range values {
			clone.queries.Add(key, value)
		}
	}
	if t.body != nil {
		clone.body = append([]byte(nil), t.body...)
	}
	return clone
}

// Request materializes the template into an http.Request. Query parameters
// added via Query are merged with any already present in the URL.
func (t *RequestTemplate) Request(ctx context.Context) (*http.Request, error) {
	parsedURL, err := url.Parse(t.url)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequestCreationFailed, err)
	}

	query := parsedURL.Query()
	for key, values := range t.queries {
		for _, value := range values {
			query.Add(key, value)
		}
	}
	parsedURL.RawQuery = query.Encode()

	var body *bytes.Reader
	if t.body != nil {
		body = bytes.NewReader(t.body)
	}

	var req *http.Request
	if body != nil {
		req, err = http.NewRequestWithContext(ctx, t.method, parsedURL.String(), body)
	} else {
		req, err = http.NewRequestWithContext(ctx, t.method, parsedURL.String(), nil)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequestCreationFailed, err)
	}

	for key, values := range t.header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	return req, nil
}
