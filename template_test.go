package bodycodec

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateBuilder(t *testing.T) {
	tmpl := NewRequestTemplate("GET", "http://example.com/users").
		Method("POST").
		Query("page", "2").
		Queries(url.Values{"sort": {"name", "age"}}).
		Header("X-Request-Id", "abc").
		AddHeader("X-Extra", "1").
		ContentType("text/plain")

	req, err := tmpl.Request(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "POST", req.Method)
	assert.Equal(t, "2", req.URL.Query().Get("page"))
	assert.Equal(t, []string{"name", "age"}, req.URL.Query()["sort"])
	assert.Equal(t, "abc", req.Header.Get("X-Request-Id"))
	assert.Equal(t, "text/plain", req.Header.Get("Content-Type"))
	assert.Nil(t, req.Body)
}

func TestTemplateQueryMergesWithURL(t *testing.T) {
	tmpl := NewRequestTemplate("GET", "http://example.com/search?q=go").
		Query("limit", "10")

	req, err := tmpl.Request(context.Background())
	require.NoError(t, err)

	query := req.URL.Query()
	assert.Equal(t, "go", query.Get("q"))
	assert.Equal(t, "10", query.Get("limit"))
}

func TestTemplateBodyState(t *testing.T) {
	tmpl := NewRequestTemplate("POST", "http://example.com/")
	assert.False(t, tmpl.HasBody())

	tmpl.SetBodyText("payload")
	assert.True(t, tmpl.HasBody())
	assert.Equal(t, []byte("payload"), tmpl.Body())
	assert.Equal(t, CharsetUTF8, tmpl.Charset())

	tmpl.SetBody([]byte{0xff}, "")
	assert.Equal(t, []byte{0xff}, tmpl.Body())
	assert.Empty(t, tmpl.Charset())
}

func TestTemplateClone(t *testing.T) {
	original := NewRequestTemplate("POST", "http://example.com/").
		Query("a", "1").
		Header("X-Test", "yes")
	original.SetBodyText("one")

	clone := original.Clone()
	clone.SetBodyText("two")
	clone.Query("b", "2")
	clone.Header("X-Test", "no")

	assert.Equal(t, []byte("one"), original.Body())
	assert.Empty(t, original.queries.Get("b"))
	assert.Equal(t, "yes", original.GetHeader("X-Test"))
	assert.Equal(t, []byte("two"), clone.Body())
}

func TestTemplateRequestInvalidURL(t *testing.T) {
	tmpl := NewRequestTemplate("GET", "://missing-scheme")

	_, err := tmpl.Request(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRequestCreationFailed))
}

// TestTemplateRoundTrip encodes a body, materializes the request and sends
// it to a test server to verify what actually goes over the wire.
func TestTemplateRoundTrip(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_, _ = fmt.Fprintf(w, "%s|%s", r.Header.Get("Content-Type"), body)
	}))
	defer server.Close()

	tmpl := NewRequestTemplate("POST", server.URL)
	payload := map[string]string{"name": "gopher"}
	require.NoError(t, DefaultJSONEncoder.Encode(payload, nil, tmpl))

	req, err := tmpl.Request(context.Background())
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	echoed, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, `application/json;charset=utf-8|{"name":"gopher"}`, string(echoed))
}
