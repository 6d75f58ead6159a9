// Package origin holds the browser origin policy shared by the HTTP CORS
// middleware and the websocket upgrader.
package origin

import (
	"net/http"
	"net/url"
	"strings"
)

// Policy is the set of cross-site origins allowed to talk to the server.
// "*" admits every origin.
type Policy struct {
	any     bool
	allowed map[string]bool
}

func NewPolicy(origins []string) *Policy {
	p := &Policy{allowed: make(map[string]bool, len(origins))}
	for _, o := range origins {
		o = strings.TrimRight(strings.TrimSpace(o), "/")
		if o == "" {
			continue
		}
		if o == "*" {
			p.any = true
		}
		p.allowed[o] = true
	}
	return p
}

// Listed reports whether origin was configured as a cross-site origin.
func (p *Policy) Listed(origin string) bool {
	if p == nil || origin == "" {
		return false
	}
	return p.any || p.allowed[origin]
}

// Allow decides a websocket handshake. Requests without an Origin header,
// same-origin requests and listed origins pass.
func (p *Policy) Allow(r *http.Request) bool {
	o := r.Header.Get("Origin")
	if o == "" || SameHost(o, r.Host) {
		return true
	}
	return p.Listed(o)
}

// SameHost reports whether origin points at host.
func SameHost(origin, host string) bool {
	u, err := url.Parse(origin)
	if err != nil || u.Host == "" {
		return false
	}
	return strings.EqualFold(u.Host, host)
}
