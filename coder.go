package bodycodec

import (
	"fmt"
	"reflect"
)

// Encoder converts a value into the body of a RequestTemplate.
//
// bodyType describes the intended shape of v: the declared parameter type,
// or a map-of-string type when form encoding is active. Encoders that
// serialize on the runtime value alone may ignore it. The only permitted
// side effect is populating the template's body, charset and content type.
type Encoder interface {
	Encode(v any, bodyType reflect.Type, tmpl *RequestTemplate) error
}

// TextType and BytesType are the two body types handled by DefaultEncoder.
var (
	TextType  = reflect.TypeOf("")
	BytesType = reflect.TypeOf([]byte(nil))
)

// DefaultEncoder handles plain text and raw byte bodies. Any other non-nil
// value is rejected with an EncodeError; structured values belong to the
// format-specific encoders (JSONEncoder, XMLEncoder, ...).
type DefaultEncoder struct{}

// Encode dispatches on bodyType, first match wins. A nil value leaves the
// body unset; the nil check sits after the two type checks so that a nil
// byte slice is a no-op rather than an error.
func (DefaultEncoder) Encode(v any, bodyType reflect.Type, tmpl *RequestTemplate) error {
	switch bodyType {
	case TextType:
		if v == nil {
			return nil
		}
		if s, ok := v.(string); ok {
			tmpl.SetBodyText(s)
		} else {
			tmpl.SetBodyText(fmt.Sprint(v))
		}
	case BytesType:
		if v == nil {
			return nil
		}
		data, ok := v.([]byte)
		if !ok {
			return unsupportedType(v, bodyType)
		}
		tmpl.SetBody(data, "")
	default:
		if v != nil {
			return unsupportedType(v, bodyType)
		}
	}
	return nil
}

// Default is the encoder used when no format-specific encoder applies.
var Default Encoder = DefaultEncoder{}

func unsupportedType(v any, bodyType reflect.Type) *EncodeError {
	return &EncodeError{
		ValueType: reflect.TypeOf(v),
		BodyType:  bodyType,
		Message:   fmt.Sprintf("%T is not a type supported by this encoder", v),
	}
}
