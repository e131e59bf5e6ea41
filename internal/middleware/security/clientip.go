package security

import (
	"fmt"
	"net"
	"net/http"
	"strings"
)

// IPResolver determines the client address of a request. Forwarding headers
// are honoured only when the direct peer is a trusted proxy.
type IPResolver struct {
	trusted []*net.IPNet
}

// NewIPResolver trusts loopback and private ranges plus any extra CIDRs.
func NewIPResolver(extra ...string) (*IPResolver, error) {
	r := &IPResolver{}
	defaults := []string{"127.0.0.0/8", "::1/128", "10.0.0.0/8", "172.16.0.0/12", "192.168.0.0/16"}
	for _, cidr := range append(defaults, extra...) {
		_, network, err := net.ParseCIDR(strings.TrimSpace(cidr))
		if err != nil {
			return nil, fmt.Errorf("invalid trusted proxy CIDR %q: %w", cidr, err)
		}
		r.trusted = append(r.trusted, network)
	}
	return r, nil
}

// ClientIP returns the originating client address for r.
func (res *IPResolver) ClientIP(r *http.Request) string {
	direct, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		direct = r.RemoteAddr
	}

	ip := net.ParseIP(direct)
	if ip == nil || !res.isTrusted(ip) {
		return direct
	}

	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first := strings.TrimSpace(strings.Split(xff, ",")[0])
		if net.ParseIP(first) != nil {
			return first
		}
	}
	if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); net.ParseIP(xri) != nil {
		return xri
	}
	return direct
}

func (res *IPResolver) isTrusted(ip net.IP) bool {
	for _, network := range res.trusted {
		if network.Contains(ip) {
			return true
		}
	}
	return false
}
