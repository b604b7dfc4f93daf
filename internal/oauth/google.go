// Package oauth implements the Google sign-in flow: redirect URL
// construction, CSRF state handling and profile retrieval.
package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/gadsdencode/pixprofolio/internal/config"
	"github.com/gadsdencode/pixprofolio/internal/services/dto"
)

const (
	userinfoEndpoint = "https://www.googleapis.com/oauth2/v2/userinfo"
	stateTTL         = 10 * time.Minute
)

// GoogleClient drives the authorization-code flow against Google.
type GoogleClient struct {
	oauth       *oauth2.Config
	stateSecret []byte
}

func NewGoogleClient(cfg *config.Config) *GoogleClient {
	return &GoogleClient{
		oauth: &oauth2.Config{
			ClientID:     cfg.Google.ClientID,
			ClientSecret: cfg.Google.ClientSecret,
			RedirectURL:  cfg.Google.RedirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
		stateSecret: []byte(cfg.Google.StateSecret),
	}
}

// NewState issues a short-lived signed state token carried through the
// provider round trip to bind callback to initiation.
func (g *GoogleClient) NewState() (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(stateTTL)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(g.stateSecret)
}

// VerifyState rejects forged or expired state tokens.
func (g *GoogleClient) VerifyState(state string) error {
	_, err := jwt.ParseWithClaims(state, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return g.stateSecret, nil
	})
	if err != nil {
		return fmt.Errorf("invalid oauth state: %w", err)
	}
	return nil
}

// AuthURL returns the Google consent page URL for the given state.
func (g *GoogleClient) AuthURL(state string) string {
	return g.oauth.AuthCodeURL(state)
}

// Exchange trades the authorization code for a token and fetches the
// user's profile.
func (g *GoogleClient) Exchange(ctx context.Context, code string) (*dto.GoogleProfile, error) {
	token, err := g.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("code exchange failed: %w", err)
	}

	httpClient := g.oauth.Client(ctx, token)
	resp, err := httpClient.Get(userinfoEndpoint)
	if err != nil {
		return nil, fmt.Errorf("userinfo request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("userinfo request returned %d: %s", resp.StatusCode, body)
	}

	var profile dto.GoogleProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("userinfo decode failed: %w", err)
	}
	return &profile, nil
}
