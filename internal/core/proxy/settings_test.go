package proxy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettings_HasProxy(t *testing.T) {
	assert.False(t, Settings{}.HasProxy())
	assert.False(t, Settings{Enabled: true, Hostname: "proxy.local"}.HasProxy())
	assert.False(t, Settings{Hostname: "proxy.local", Port: 3128}.HasProxy())
	assert.True(t, Settings{Enabled: true, Hostname: "proxy.local", Port: 3128}.HasProxy())
}

func TestSettings_HostPort(t *testing.T) {
	assert.Equal(t, "", Settings{}.HostPort())
	assert.Equal(t, "http://proxy.local:3128", Settings{Enabled: true, Hostname: "proxy.local", Port: 3128}.HostPort())
}

func TestSettings_URL(t *testing.T) {
	assert.Nil(t, Settings{}.URL())

	u := Settings{Enabled: true, Hostname: "proxy.local", Port: 3128}.URL()
	require.NotNil(t, u)
	assert.Equal(t, "http://proxy.local:3128", u.String())
	assert.Nil(t, u.User)

	u = Settings{Enabled: true, Hostname: "proxy.local", Port: 3128, Username: "user", Password: "p@ss"}.URL()
	require.NotNil(t, u)
	assert.Equal(t, "user", u.User.Username())
	pw, ok := u.User.Password()
	assert.True(t, ok)
	assert.Equal(t, "p@ss", pw)
}
