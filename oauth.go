package ticktick

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	uuid "github.com/nu7hatch/gouuid"
	log "github.com/sirupsen/logrus"
)

// OAuthFlow drives the authorization-code grant (with PKCE) against ticktick.com. Build one with
// NewOAuthFlow; the zero value is not usable.
type OAuthFlow struct {
	clientID     string
	clientSecret string
	redirectURI  string
	authURL      string
	tokenURL     string
	httpc        *http.Client
	now          func() time.Time
}

type oauthOption func(*OAuthFlow)

// WithOAuthEndpoints overrides the authorize and token URLs. This is meant to be used in tests only.
func WithOAuthEndpoints(authURL, tokenURL string) oauthOption {
	return func(f *OAuthFlow) {
		f.authURL = authURL
		f.tokenURL = tokenURL
	}
}

// WithOAuthClock overrides the clock used to compute token expiry. This is meant to be used in tests only.
func WithOAuthClock(now func() time.Time) oauthOption {
	return func(f *OAuthFlow) {
		f.now = now
	}
}

func NewOAuthFlow(clientID, clientSecret, redirectURI string, opts ...oauthOption) *OAuthFlow {
	f := &OAuthFlow{
		clientID:     clientID,
		clientSecret: clientSecret,
		redirectURI:  redirectURI,
		authURL:      "https://ticktick.com/oauth/authorize",
		tokenURL:     "https://ticktick.com/oauth/token",
		httpc:        http.DefaultClient,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// AuthURL builds the browser URL for the user to grant access, plus the state nonce the callback must
// echo back and the PKCE verifier to present when exchanging the code.
func (f *OAuthFlow) AuthURL() (authURL, state, verifier string, err error) {
	u, err := uuid.NewV4()
	if err != nil {
		return "", "", "", fmt.Errorf("auth url: %w", err)
	}
	state = u.String()

	verifier, err = pkceVerifier()
	if err != nil {
		return "", "", "", fmt.Errorf("auth url: %w", err)
	}

	q := make(url.Values)
	q.Set("client_id", f.clientID)
	q.Set("redirect_uri", f.redirectURI)
	q.Set("response_type", "code")
	q.Set("scope", "tasks:write tasks:read")
	q.Set("state", state)
	q.Set("code_challenge", pkceChallenge(verifier))
	q.Set("code_challenge_method", "S256")
	return f.authURL + "?" + q.Encode(), state, verifier, nil
}

func pkceVerifier() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

func pkceChallenge(verifier string) string {
	sum := sha256.Sum256([]byte(verifier))
	return base64.RawURLEncoding.EncodeToString(sum[:])
}

// Token is the credential set the token endpoint returns, with the expiry resolved to an absolute Unix
// timestamp.
type Token struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    int64
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

// ExchangeCode trades the authorization code for tokens. When the server omits expires_in, an hour is
// assumed.
func (f *OAuthFlow) ExchangeCode(code, verifier string) (*Token, error) {
	data := make(url.Values)
	data.Set("grant_type", "authorization_code")
	data.Set("code", code)
	data.Set("redirect_uri", f.redirectURI)
	data.Set("client_id", f.clientID)
	data.Set("client_secret", f.clientSecret)
	data.Set("code_verifier", verifier)

	r, err := f.httpc.PostForm(f.tokenURL, data)
	if err != nil {
		return nil, fmt.Errorf("exchange code: %w", err)
	}
	defer func() {
		if err := r.Body.Close(); err != nil {
			log.WithFields(log.Fields{
				"op":    "exchange code",
				"cause": err,
			}).Warning("Could not close response body")
		}
	}()

	b, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, fmt.Errorf("exchange code, read body: %w", err)
	}
	if r.StatusCode != http.StatusOK {
		log.WithFields(log.Fields{
			"op":   "exchange code",
			"code": r.StatusCode,
			"text": string(b),
		}).Error("Unhandled response")
		return nil, fmt.Errorf("%d: %w", r.StatusCode, ErrStatusCode)
	}

	var tr tokenResponse
	if err := json.Unmarshal(b, &tr); err != nil {
		return nil, fmt.Errorf("exchange code, unmarshal: %w", err)
	}
	expiresIn := tr.ExpiresIn
	if expiresIn == 0 {
		expiresIn = 3600
	}
	return &Token{
		AccessToken:  tr.AccessToken,
		RefreshToken: tr.RefreshToken,
		ExpiresAt:    f.now().Unix() + expiresIn,
	}, nil
}
