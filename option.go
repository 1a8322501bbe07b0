package bodycodec

// RegistryOption configures a Registry. Use with NewRegistry().
type RegistryOption func(*Registry)

// WithEncoder registers (or replaces) the encoder for a content type.
func WithEncoder(mimeType MimeType, encoder Encoder) RegistryOption {
	return func(r *Registry) { r.encoders[mimeType] = encoder }
}

// WithoutEncoder removes the encoder for a content type.
func WithoutEncoder(mimeType MimeType) RegistryOption {
	return func(r *Registry) { delete(r.encoders, mimeType) }
}

// WithFallback sets the encoder used when the content type is unknown.
// A nil fallback makes unknown content types an error.
func WithFallback(encoder Encoder) RegistryOption {
	return func(r *Registry) { r.fallback = encoder }
}

// WithLogger sets the logger used for dispatch and failure logging.
func WithLogger(logger Logger) RegistryOption {
	return func(r *Registry) { r.logger = logger }
}
