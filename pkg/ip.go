package pkg

import (
	"fmt"
	"net"
	"net/http"
	"regexp"
	"strings"
)

var localDockerIpRegex = regexp.MustCompile(`^172\.\d{1,3}\.0\.1$`)

const LocalhostIP = "localhost"

func IPIsLocal(ip string) bool {
	return ip == "127.0.0.1" || ip == "::1" || localDockerIpRegex.MatchString(ip)
}

// ClientIPReader reads the caller's IP. The X-Real-Ip and X-Forwarded-For
// headers are honoured only when the request comes straight from a trusted
// proxy, anybody else could set them. A nil reader trusts no proxy.
type ClientIPReader struct {
	trustedProxies []*net.IPNet
}

// NewClientIPReader takes the trusted proxies as IPs or CIDRs.
func NewClientIPReader(trustedProxies []string) (*ClientIPReader, error) {
	reader := &ClientIPReader{}
	for _, proxy := range trustedProxies {
		if !strings.Contains(proxy, "/") {
			if ip := net.ParseIP(proxy); ip != nil && ip.To4() != nil {
				proxy += "/32"
			} else {
				proxy += "/128"
			}
		}
		_, ipNet, err := net.ParseCIDR(proxy)
		if err != nil {
			return nil, fmt.Errorf("invalid trusted proxy %s: %w", proxy, err)
		}
		reader.trustedProxies = append(reader.trustedProxies, ipNet)
	}
	return reader, nil
}

func (cr *ClientIPReader) trusts(ip net.IP) bool {
	if cr == nil || ip == nil {
		return false
	}
	for _, ipNet := range cr.trustedProxies {
		if ipNet.Contains(ip) {
			return true
		}
	}
	return false
}

// ReadUserIP returns the client IP. Local and docker bridge addresses are
// reported as "localhost".
func (cr *ClientIPReader) ReadUserIP(r *http.Request) (string, error) {
	ipAddr := r.RemoteAddr
	if host, _, err := net.SplitHostPort(ipAddr); err == nil {
		ipAddr = host
	}

	if cr.trusts(net.ParseIP(ipAddr)) {
		if realIP := strings.TrimSpace(r.Header.Get("X-Real-Ip")); realIP != "" {
			ipAddr = realIP
		} else if forwarded, _, _ := strings.Cut(r.Header.Get("X-Forwarded-For"), ","); strings.TrimSpace(forwarded) != "" {
			// first hop is the client
			ipAddr = strings.TrimSpace(forwarded)
		}
	}

	if IPIsLocal(ipAddr) {
		return LocalhostIP, nil
	}

	if net.ParseIP(ipAddr) == nil {
		return "", fmt.Errorf("ip addr %s is invalid", ipAddr)
	}

	return ipAddr, nil
}
