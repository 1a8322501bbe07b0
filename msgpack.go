package bodycodec

import (
	"reflect"

	"github.com/ugorji/go/codec"
)

// MsgpackEncoder handles encoding of MessagePack bodies.
type MsgpackEncoder struct {
	// Handle configures the underlying codec. It is shared read-only across
	// concurrent encodes; defaults to a plain MsgpackHandle.
	Handle *codec.MsgpackHandle
}

// Encode marshals the provided value into MessagePack and sets it as the
// template body with no implied charset.
func (e *MsgpackEncoder) Encode(v any, bodyType reflect.Type, tmpl *RequestTemplate) error {
	handle := e.Handle
	if handle == nil {
		handle = defaultMsgpackHandle
	}

	buf := GetBuffer()
	defer PutBuffer(buf)

	if err := codec.NewEncoder(buf, handle).Encode(v); err != nil {
		return encodeFailed(v, bodyType, err)
	}

	tmpl.SetBody(append([]byte(nil), buf.B...), "")
	if tmpl.GetContentType() == "" {
		tmpl.ContentType(string(Msgpack))
	}
	return nil
}

var defaultMsgpackHandle = &codec.MsgpackHandle{}

// DefaultMsgpackEncoder is the default MsgpackEncoder instance.
var DefaultMsgpackEncoder = &MsgpackEncoder{}
