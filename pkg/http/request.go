package http

import (
	"net"
	"net/http"
	"strings"
)

// ExtractClientIP returns a best-effort client identity for throttling.
// It takes the first entry of X-Forwarded-For when present, otherwise the
// peer address. The value is untrusted and must never be used for
// authorization decisions.
func ExtractClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first := strings.TrimSpace(strings.Split(xff, ",")[0])
		if isValidIP(first) {
			return first
		}
	}

	return getRemoteAddr(r)
}

// getRemoteAddr extracts the IP address from RemoteAddr (removing port if present)
func getRemoteAddr(r *http.Request) string {
	if r.RemoteAddr != "" {
		if ip, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
			return ip
		}
		return r.RemoteAddr
	}
	return "unknown"
}

func isValidIP(ip string) bool {
	return net.ParseIP(ip) != nil
}
