package bodycodec

import (
	"fmt"
	"reflect"
)

type encoderMapping map[MimeType]Encoder

// Registry dispatches encoding by content type. It is assembled once via
// NewRegistry options and read-only afterwards, so it is safe for
// concurrent use.
type Registry struct {
	encoders encoderMapping
	fallback Encoder
	logger   Logger
}

// NewRegistry creates a Registry with the built-in encoders registered for
// their content types and DefaultEncoder as the fallback for unknown or
// absent content types. Options may override any of them.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		encoders: encoderMapping{
			JSON:           DefaultJSONEncoder,
			XML:            DefaultXMLEncoder,
			YAML:           DefaultYAMLEncoder,
			Msgpack:        DefaultMsgpackEncoder,
			Protobuf:       DefaultProtoEncoder,
			FormURLEncoded: DefaultFormEncoder,
			FormData:       DefaultMultipartEncoder,
		},
		fallback: Default,
		logger:   DefaultLogger,
	}

	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Handles reports whether an encoder is registered for the given type.
func (r *Registry) Handles(mimeType MimeType) bool {
	_, ok := r.encoders[mimeType]
	return ok
}

// EncoderFor returns the encoder registered for the given type, or the
// fallback for Unknown. The second result reports whether one was found.
func (r *Registry) EncoderFor(mimeType MimeType) (Encoder, bool) {
	if encoder, ok := r.encoders[mimeType]; ok {
		return encoder, true
	}
	if mimeType == Unknown && r.fallback != nil {
		return r.fallback, true
	}
	return nil, false
}

// Encode resolves the encoder for mimeType and populates the template with
// the encoded value. Text and OctetStream fall through to the fallback
// encoder unless one was registered explicitly.
func (r *Registry) Encode(mimeType MimeType, v any, bodyType reflect.Type, tmpl *RequestTemplate) error {
	encoder, ok := r.EncoderFor(mimeType)
	if !ok {
		if (mimeType == Text || mimeType == OctetStream) && r.fallback != nil {
			encoder = r.fallback
		} else {
			return fmt.Errorf("%w: %s", ErrNoEncoder, mimeType)
		}
	}

	if r.logger != nil {
		r.logger.Debugf("encoding %T body as %s", v, mimeType)
	}

	if err := r.safeEncode(encoder, v, bodyType, tmpl); err != nil {
		if r.logger != nil {
			r.logger.Errorf("encoding %s body failed: %v", mimeType, err)
		}
		return err
	}
	return nil
}

// safeEncode runs an encoder while catching panics to return as errors.
func (r *Registry) safeEncode(encoder Encoder, v any, bodyType reflect.Type, tmpl *RequestTemplate) (err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = &EncodeError{
				ValueType: reflect.TypeOf(v),
				BodyType:  bodyType,
				Message:   fmt.Sprintf("panic during encode: %v", recovered),
			}
		}
	}()

	return encoder.Encode(v, bodyType, tmpl)
}
