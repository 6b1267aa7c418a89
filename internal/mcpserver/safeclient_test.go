package mcpserver

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsBlockedIP(t *testing.T) {
	blocked := []string{"127.0.0.1", "10.0.0.5", "192.168.1.1", "172.16.0.1", "169.254.1.1", "0.0.0.0", "::1"}
	for _, s := range blocked {
		assert.True(t, isBlockedIP(net.ParseIP(s)), "expected %s to be blocked", s)
	}

	allowed := []string{"8.8.8.8", "93.184.216.34", "2606:2800:220:1:248:1893:25c8:1946"}
	for _, s := range allowed {
		assert.False(t, isBlockedIP(net.ParseIP(s)), "expected %s to be allowed", s)
	}
}

func TestNewSafeHTTPClient(t *testing.T) {
	client := newSafeHTTPClient()
	assert.NotNil(t, client.Transport)
	assert.NotNil(t, client.CheckRedirect)

	// A request to loopback must be refused by the dialer.
	_, err := client.Get("http://127.0.0.1:9/never")
	assert.Error(t, err)
}
