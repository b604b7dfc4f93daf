package oauth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gadsdencode/pixprofolio/internal/config"
)

func newTestClient() *GoogleClient {
	cfg := &config.Config{}
	cfg.Google.ClientID = "client-id"
	cfg.Google.ClientSecret = "client-secret"
	cfg.Google.RedirectURL = "http://localhost:4000/api/auth/google/callback"
	cfg.Google.StateSecret = "test-state-secret"
	return NewGoogleClient(cfg)
}

func TestStateRoundTrip(t *testing.T) {
	t.Parallel()

	client := newTestClient()

	state, err := client.NewState()
	require.NoError(t, err)
	require.NotEmpty(t, state)

	assert.NoError(t, client.VerifyState(state))
}

func TestVerifyState_RejectsTampering(t *testing.T) {
	t.Parallel()

	client := newTestClient()

	state, err := client.NewState()
	require.NoError(t, err)

	tampered := state[:len(state)-2] + "xx"
	assert.Error(t, client.VerifyState(tampered))

	assert.Error(t, client.VerifyState("not-a-jwt"))
	assert.Error(t, client.VerifyState(""))
}

func TestVerifyState_RejectsForeignSecret(t *testing.T) {
	t.Parallel()

	client := newTestClient()

	other := &config.Config{}
	other.Google.StateSecret = "different-secret"
	foreign := NewGoogleClient(other)

	state, err := foreign.NewState()
	require.NoError(t, err)

	assert.Error(t, client.VerifyState(state))
}

func TestAuthURL_CarriesState(t *testing.T) {
	t.Parallel()

	client := newTestClient()

	state, err := client.NewState()
	require.NoError(t, err)

	url := client.AuthURL(state)
	assert.True(t, strings.HasPrefix(url, "https://accounts.google.com/"))
	assert.Contains(t, url, "client-id")
}
