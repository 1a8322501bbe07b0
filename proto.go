package bodycodec

import (
	"fmt"
	"reflect"

	"google.golang.org/protobuf/proto"
)

// ProtoEncoder handles encoding of Protocol Buffers bodies. The value must
// implement proto.Message; anything else is an EncodeError.
type ProtoEncoder struct{}

// Encode marshals the provided message and sets it as the template body
// with no implied charset.
func (ProtoEncoder) Encode(v any, bodyType reflect.Type, tmpl *RequestTemplate) error {
	if v == nil {
		return nil
	}

	msg, ok := v.(proto.Message)
	if !ok {
		return &EncodeError{
			ValueType: reflect.TypeOf(v),
			BodyType:  bodyType,
			Message:   fmt.Sprintf("%T does not implement proto.Message", v),
		}
	}

	data, err := proto.Marshal(msg)
	if err != nil {
		return encodeFailed(v, bodyType, err)
	}

	tmpl.SetBody(data, "")
	if tmpl.GetContentType() == "" {
		tmpl.ContentType(string(Protobuf))
	}
	return nil
}

// DefaultProtoEncoder is the default ProtoEncoder instance.
var DefaultProtoEncoder = ProtoEncoder{}
