package bodycodec

import (
	"encoding/xml"
	"reflect"
)

type XMLEncoder struct {
	MarshalFunc func(v any) ([]byte, error)
}

func (e *XMLEncoder) Encode(v any, bodyType reflect.Type, tmpl *RequestTemplate) error {
	if e.MarshalFunc != nil {
		data, err := e.MarshalFunc(v)
		if err != nil {
			return encodeFailed(v, bodyType, err)
		}
		tmpl.SetBody(data, CharsetUTF8)
	} else {
		buf := GetBuffer()
		defer PutBuffer(buf)

		if err := xml.NewEncoder(buf).Encode(v); err != nil {
			return encodeFailed(v, bodyType, err)
		}
		tmpl.SetBody(append([]byte(nil), buf.B...), CharsetUTF8)
	}

	if tmpl.GetContentType() == "" {
		tmpl.ContentType(string(XML) + ";charset=utf-8")
	}
	return nil
}

var DefaultXMLEncoder = &XMLEncoder{
	MarshalFunc: xml.Marshal,
}
