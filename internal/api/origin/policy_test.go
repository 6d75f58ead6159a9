package origin

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListed(t *testing.T) {
	p := NewPolicy([]string{"http://localhost:3001/", " http://play.test "})
	assert.True(t, p.Listed("http://localhost:3001"))
	assert.True(t, p.Listed("http://play.test"))
	assert.False(t, p.Listed("http://localhost:3000"))
	assert.False(t, p.Listed(""))

	assert.True(t, NewPolicy([]string{"*"}).Listed("http://anything.test"))

	var none *Policy
	assert.False(t, none.Listed("http://localhost:3001"))
}

func TestAllow(t *testing.T) {
	p := NewPolicy([]string{"http://localhost:3001"})

	tests := []struct {
		name   string
		host   string
		origin string
		want   bool
	}{
		{name: "no origin header", host: "localhost:3000", want: true},
		{name: "same origin", host: "localhost:3000", origin: "http://localhost:3000", want: true},
		{name: "same origin any case", host: "LocalHost:3000", origin: "http://localhost:3000", want: true},
		{name: "listed cross origin", host: "localhost:3000", origin: "http://localhost:3001", want: true},
		{name: "foreign", host: "localhost:3000", origin: "http://evil.example", want: false},
		{name: "other port", host: "localhost:3000", origin: "http://localhost:4000", want: false},
		{name: "garbage", host: "localhost:3000", origin: "::not a url", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/ws", nil)
			r.Host = tt.host
			if tt.origin != "" {
				r.Header.Set("Origin", tt.origin)
			}
			assert.Equal(t, tt.want, p.Allow(r))
		})
	}
}
