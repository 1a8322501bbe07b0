package bodycodec

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/url"
	"reflect"
)

// MultipartEncoder handles multipart/form-data bodies built from form
// fields and files. File contents are consumed and closed during encoding.
type MultipartEncoder struct {
	// Boundary overrides the generated multipart boundary when non-empty.
	Boundary string
}

// Encode parses v the same way FormEncoder does and writes a multipart
// body. Plain field-only values are accepted too, so the encoder can be
// registered for multipart/form-data on its own.
func (e *MultipartEncoder) Encode(v any, bodyType reflect.Type, tmpl *RequestTemplate) error {
	values, files, err := parseForm(v)
	if err != nil {
		return encodeFailed(v, bodyType, err)
	}
	return e.encodeParts(v, bodyType, values, files, tmpl)
}

func (e *MultipartEncoder) encodeParts(v any, bodyType reflect.Type, values url.Values, files []*File, tmpl *RequestTemplate) error {
	buf := GetBuffer()
	defer PutBuffer(buf)

	writer := multipart.NewWriter(buf)

	// if a custom boundary is set, use it
	if e.Boundary != "" {
		if err := writer.SetBoundary(e.Boundary); err != nil {
			return encodeFailed(v, bodyType, fmt.Errorf("setting custom boundary failed: %w", err))
		}
	}

	for key, vals := range values {
		for _, val := range vals {
			if err := writer.WriteField(key, val); err != nil {
				return encodeFailed(v, bodyType, fmt.Errorf("writing form field failed: %w", err))
			}
		}
	}

	for _, file := range files {
		part, err := writer.CreateFormFile(file.Name, file.FileName)
		if err != nil {
			return encodeFailed(v, bodyType, fmt.Errorf("creating form file failed: %w", err))
		}
		if _, err = io.Copy(part, file.Content); err != nil {
			return encodeFailed(v, bodyType, fmt.Errorf("copying file content failed: %w", err))
		}
		if err = file.Content.Close(); err != nil {
			return encodeFailed(v, bodyType, fmt.Errorf("closing file content failed: %w", err))
		}
	}

	if err := writer.Close(); err != nil {
		return encodeFailed(v, bodyType, fmt.Errorf("closing multipart writer failed: %w", err))
	}

	tmpl.SetBody(append([]byte(nil), buf.B...), "")
	tmpl.ContentType(writer.FormDataContentType())
	return nil
}

// DefaultMultipartEncoder is the default MultipartEncoder instance.
var DefaultMultipartEncoder = &MultipartEncoder{}
