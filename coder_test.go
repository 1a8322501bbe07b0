package bodycodec

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultEncoderText(t *testing.T) {
	tmpl := NewRequestTemplate("POST", "http://example.com/")

	err := Default.Encode("hello", TextType, tmpl)
	require.NoError(t, err)

	assert.Equal(t, []byte("hello"), tmpl.Body())
	assert.Equal(t, CharsetUTF8, tmpl.Charset())
	assert.Empty(t, tmpl.GetContentType(), "default encoder must not force a content type")
}

func TestDefaultEncoderTextStringifiesValue(t *testing.T) {
	tmpl := NewRequestTemplate("POST", "http://example.com/")

	err := Default.Encode(42, TextType, tmpl)
	require.NoError(t, err)

	assert.Equal(t, []byte("42"), tmpl.Body())
}

func TestDefaultEncoderBytes(t *testing.T) {
	data := []byte{0x01, 0x02}
	tmpl := NewRequestTemplate("POST", "http://example.com/")

	err := Default.Encode(data, BytesType, tmpl)
	require.NoError(t, err)

	assert.Equal(t, data, tmpl.Body())
	assert.Empty(t, tmpl.Charset(), "raw bytes must carry no charset")
}

func TestDefaultEncoderUnsupportedType(t *testing.T) {
	tmpl := NewRequestTemplate("POST", "http://example.com/")

	err := Default.Encode(42, reflect.TypeOf(0), tmpl)
	require.Error(t, err)

	var encErr *EncodeError
	require.ErrorAs(t, err, &encErr)
	assert.Equal(t, reflect.TypeOf(0), encErr.ValueType)
	assert.Contains(t, err.Error(), "int is not a type supported by this encoder")
	assert.True(t, errors.Is(err, ErrEncodingFailed))
	assert.False(t, tmpl.HasBody(), "body must remain unset after a failed encode")
}

func TestDefaultEncoderNil(t *testing.T) {
	tests := []struct {
		name     string
		bodyType reflect.Type
	}{
		{name: "unmatched descriptor", bodyType: reflect.TypeOf(0)},
		{name: "bytes descriptor", bodyType: BytesType},
		{name: "text descriptor", bodyType: TextType},
		{name: "nil descriptor", bodyType: nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tmpl := NewRequestTemplate("POST", "http://example.com/")

			err := Default.Encode(nil, tc.bodyType, tmpl)
			require.NoError(t, err, "nil body must be a no-op, not an error")
			assert.False(t, tmpl.HasBody())
		})
	}
}

func TestDefaultEncoderIdempotent(t *testing.T) {
	first := NewRequestTemplate("POST", "http://example.com/")
	second := NewRequestTemplate("POST", "http://example.com/")

	require.NoError(t, Default.Encode("same", TextType, first))
	require.NoError(t, Default.Encode("same", TextType, second))

	assert.Equal(t, first.Body(), second.Body())
	assert.Equal(t, first.Charset(), second.Charset())
}
