package bodycodec

import (
	"reflect"

	"github.com/goccy/go-yaml"
)

// YAMLEncoder handles encoding of YAML bodies.
type YAMLEncoder struct {
	MarshalFunc func(v any) ([]byte, error)
}

// Encode marshals the provided value into YAML and sets it as the template body.
func (e *YAMLEncoder) Encode(v any, bodyType reflect.Type, tmpl *RequestTemplate) error {
	if e.MarshalFunc != nil {
		data, err := e.MarshalFunc(v)
		if err != nil {
			return encodeFailed(v, bodyType, err)
		}
		tmpl.SetBody(data, CharsetUTF8)
	} else {
		buf := GetBuffer()
		defer PutBuffer(buf)

		if err := yaml.NewEncoder(buf).Encode(v); err != nil {
			return encodeFailed(v, bodyType, err)
		}
		tmpl.SetBody(append([]byte(nil), buf.B...), CharsetUTF8)
	}

	if tmpl.GetContentType() == "" {
		tmpl.ContentType(string(YAML) + ";charset=utf-8")
	}
	return nil
}

// DefaultYAMLEncoder is the default YAMLEncoder instance using the
// goccy/go-yaml Marshal function.
var DefaultYAMLEncoder = &YAMLEncoder{
	MarshalFunc: yaml.Marshal,
}
