package utils

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

const fallbackClientIP = "127.0.0.1"

// ExtractClientIP returns the address logged with each request: the first
// X-Forwarded-For hop, then X-Real-IP, then the peer address. Values that do
// not parse as an IP are skipped.
func ExtractClientIP(c *gin.Context) string {
	forwarded, _, _ := strings.Cut(c.GetHeader("X-Forwarded-For"), ",")

	candidates := []string{
		strings.TrimSpace(forwarded),
		strings.TrimSpace(c.GetHeader("X-Real-IP")),
		hostOnly(c.Request.RemoteAddr),
	}
	for _, ip := range candidates {
		if isValidIP(ip) {
			return ip
		}
	}
	return fallbackClientIP
}

// hostOnly drops the port of "ip:port" and "[ipv6]:port".
func hostOnly(addr string) string {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	return host
}

func isValidIP(ip string) bool {
	return ip != "" && net.ParseIP(ip) != nil
}
