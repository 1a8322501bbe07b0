package bodycodec

import (
	"bytes"
	"io"
	"mime"
	"mime/multipart"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultipartEncoder(t *testing.T) {
	tmpl := NewRequestTemplate("POST", "http://example.com/upload")
	input := map[string]any{
		"field": "value",
		"file": &File{
			FileName: "hello.txt",
			Content:  io.NopCloser(strings.NewReader("hello world")),
		},
	}

	require.NoError(t, DefaultMultipartEncoder.Encode(input, nil, tmpl))
	assert.Empty(t, tmpl.Charset())

	mediaType, params, err := mime.ParseMediaType(tmpl.GetContentType())
	require.NoError(t, err)
	require.Equal(t, "multipart/form-data", mediaType)

	parts := map[string]string{}
	reader := multipart.NewReader(bytes.NewReader(tmpl.Body()), params["boundary"])
	for {
		part, err := reader.NextPart()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		content, err := io.ReadAll(part)
		require.NoError(t, err)
		parts[part.FormName()] = string(content)
	}

	assert.Equal(t, map[string]string{
		"field": "value",
		"file":  "hello world",
	}, parts)
}

func TestMultipartEncoderCustomBoundary(t *testing.T) {
	encoder := &MultipartEncoder{Boundary: "fixed-boundary"}

	tmpl := NewRequestTemplate("POST", "http://example.com/upload")
	require.NoError(t, encoder.Encode(map[string]string{"a": "1"}, nil, tmpl))

	assert.Equal(t, `multipart/form-data; boundary=fixed-boundary`, tmpl.GetContentType())
	assert.Contains(t, string(tmpl.Body()), "--fixed-boundary")
}

func TestMultipartEncoderFixedBoundaryIsDeterministic(t *testing.T) {
	encoder := &MultipartEncoder{Boundary: "fixed-boundary"}

	first := NewRequestTemplate("POST", "http://example.com/")
	second := NewRequestTemplate("POST", "http://example.com/")
	require.NoError(t, encoder.Encode(map[string]string{"a": "1"}, nil, first))
	require.NoError(t, encoder.Encode(map[string]string{"a": "1"}, nil, second))

	assert.Equal(t, first.Body(), second.Body())
}
