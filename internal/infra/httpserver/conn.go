package httpserver

import (
	"bytes"
	"io"
	"net"
	"net/textproto"

	"github.com/sabania/framesrv/internal/domain"
)

// net/http answers unparseable requests (400, 431, 505) by writing a canned
// response straight to the connection, bypassing every handler. stampListener
// hands out connections that splice the header set into those responses.
type stampListener struct {
	net.Listener
	lines []byte
	names [][]byte
}

func newStampListener(ln net.Listener, headers domain.HeaderSet) net.Listener {
	if len(headers) == 0 {
		return ln
	}
	sl := &stampListener{Listener: ln}
	for _, hd := range headers {
		name := textproto.CanonicalMIMEHeaderKey(hd.Name)
		sl.lines = append(sl.lines, name+": "+hd.Value+"\r\n"...)
		sl.names = append(sl.names, []byte("\r\n"+name+":"))
	}
	return sl
}

func (l *stampListener) Accept() (net.Conn, error) {
	c, err := l.Listener.Accept()
	if err != nil {
		return nil, err
	}
	return &stampConn{Conn: c, l: l}, nil
}

type stampConn struct {
	net.Conn
	l *stampListener
}

var (
	headerEnd  = []byte("\r\n\r\n")
	connClose  = []byte("\r\nConnection: close\r\n")
	statusLine = []byte("HTTP/1.")
)

// bareError reports the end of the header block when p is a complete
// server-generated error response that lacks the header set.
func (c *stampConn) bareError(p []byte) (int, bool) {
	if len(p) < len("HTTP/1.1 400") || !bytes.HasPrefix(p, statusLine) {
		return 0, false
	}
	if code := p[len("HTTP/1.1 ")]; code != '4' && code != '5' {
		return 0, false
	}
	end := bytes.Index(p, headerEnd)
	if end < 0 {
		return 0, false
	}
	head := p[:end+2]
	if !bytes.Contains(head, connClose) {
		return 0, false
	}
	for _, name := range c.l.names {
		if bytes.Contains(head, name) {
			return 0, false
		}
	}
	return end + 2, true
}

func (c *stampConn) Write(p []byte) (int, error) {
	at, ok := c.bareError(p)
	if !ok {
		return c.Conn.Write(p)
	}

	out := make([]byte, 0, len(p)+len(c.l.lines))
	out = append(out, p[:at]...)
	out = append(out, c.l.lines...)
	out = append(out, p[at:]...)

	n, err := c.Conn.Write(out)
	if err != nil {
		return min(n, len(p)), err
	}
	return len(p), nil
}

// ReadFrom keeps the sendfile path of the underlying TCP connection.
func (c *stampConn) ReadFrom(r io.Reader) (int64, error) {
	if rf, ok := c.Conn.(io.ReaderFrom); ok {
		return rf.ReadFrom(r)
	}
	return io.Copy(c.Conn, r)
}

// CloseWrite preserves the half-close net/http does before dropping a
// connection after an error response.
func (c *stampConn) CloseWrite() error {
	if cw, ok := c.Conn.(interface{ CloseWrite() error }); ok {
		return cw.CloseWrite()
	}
	return nil
}
