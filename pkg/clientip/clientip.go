package clientip

import (
	"net"
	"net/http"
	"strings"
)

// RealClientIP returns the connecting client's IP. It reads r.RemoteAddr
// only and ignores proxy headers, which a client could forge. Rate limiting
// keys on this value.
func RealClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return strings.TrimSpace(r.RemoteAddr)
	}
	return strings.TrimSpace(host)
}
