package core

import (
	"net"
	"net/http"
	"strings"
)

var ipRequestHeaders = []string{
	"X-Client-Ip",
	"Cf-Connecting-Ip",
	"Fastly-Client-Ip",
	"True-Client-Ip",
	"X-Real-Ip",
	"X-Forwarded-For",
	"Forwarded-For",
	"X-Appengine-User-Ip",
}

func isCorrectIP(input string) bool {
	ip := net.ParseIP(input)
	return ip != nil && !ip.IsPrivate() && !ip.IsLoopback()
}

func getClientIPFromXForwardedFor(headers string) (string, bool) {
	if headers == "" {
		return "", false
	}
	for ip := range strings.SplitSeq(headers, ",") {
		if ip, _, _ := strings.Cut(strings.TrimSpace(ip), ":"); isCorrectIP(ip) {
			return ip, true
		}
	}
	return "", false
}

// GetRequestIP extracts the originating client address, looking through the
// usual proxy and load-balancer headers before falling back to RemoteAddr.
func GetRequestIP(r *http.Request) string {
	for _, header := range ipRequestHeaders {
		switch header {
		case "X-Forwarded-For":
			if host, ok := getClientIPFromXForwardedFor(r.Header.Get(header)); ok {
				return host
			}
		default:
			if host := r.Header.Get(header); isCorrectIP(host) {
				return host
			}
		}
	}

	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil && isCorrectIP(host) {
		return host
	}

	return ""
}
