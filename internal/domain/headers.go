package domain

import "net/textproto"

// Header is a single response header line.
type Header struct {
	Name  string
	Value string
}

// HeaderSet is an ordered list of headers appended to every response.
type HeaderSet []Header

// FrameHeaders allows any origin to embed and fetch served content.
// This is deliberately permissive and not meant for production use.
func FrameHeaders() HeaderSet {
	return HeaderSet{
		{Name: "X-Frame-Options", Value: "ALLOWALL"},
		{Name: "Content-Security-Policy", Value: "frame-ancestors *"},
		{Name: "Access-Control-Allow-Origin", Value: "*"},
	}
}

// AppendTo adds every header to h without replacing existing values.
func (s HeaderSet) AppendTo(h map[string][]string) {
	for _, hd := range s {
		key := textproto.CanonicalMIMEHeaderKey(hd.Name)
		h[key] = append(h[key], hd.Value)
	}
}
