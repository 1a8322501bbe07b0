package bodycodec

import (
	"reflect"

	"github.com/go-json-experiment/json"
)

// JSONEncoder handles encoding of JSON bodies.
type JSONEncoder struct {
	MarshalFunc func(v any) ([]byte, error)
}

// Encode marshals the provided value into JSON and sets it as the template
// body. The Content-Type header is only set when the caller has not chosen
// one already.
func (e *JSONEncoder) Encode(v any, bodyType reflect.Type, tmpl *RequestTemplate) error {
	var data []byte
	var err error

	if e.MarshalFunc != nil {
		data, err = e.MarshalFunc(v)
	} else {
		data, err = json.Marshal(v)
	}

	if err != nil {
		return encodeFailed(v, bodyType, err)
	}

	tmpl.SetBody(data, CharsetUTF8)
	if tmpl.GetContentType() == "" {
		tmpl.ContentType(string(JSON) + ";charset=utf-8")
	}
	return nil
}

// jsonMarshal wraps JSON v2 marshal to match the expected signature.
func jsonMarshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// DefaultJSONEncoder is the default JSONEncoder instance using the JSON v2
// marshal function.
var DefaultJSONEncoder = &JSONEncoder{
	MarshalFunc: jsonMarshal,
}
