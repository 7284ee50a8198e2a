// Package oauth resolves a social provider access token into the provider's
// stable user id and basic profile.
package oauth

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"galleryhub/internal/config"
	"galleryhub/internal/models"
)

// Identity is what a provider reports about the owner of an access token.
type Identity struct {
	Provider   string
	ProviderID string
	Profile    models.ProviderProfile
}

type Provider interface {
	Name() string
	FetchIdentity(ctx context.Context, accessToken string) (Identity, error)
}

// fieldPaths are gjson paths into a provider's "me" response.
type fieldPaths struct {
	id    string
	name  string
	email string
	image string
}

type httpProvider struct {
	name   string
	url    string
	paths  fieldPaths
	client *http.Client
}

func NewKakaoProvider(baseURL string, timeout time.Duration) Provider {
	return &httpProvider{
		name: models.ProviderKakao,
		url:  strings.TrimSuffix(baseURL, "/") + "/v2/user/me",
		paths: fieldPaths{
			id:    "id",
			name:  "kakao_account.profile.nickname",
			email: "kakao_account.email",
			image: "properties.profile_image",
		},
		client: &http.Client{Timeout: timeout},
	}
}

func NewNaverProvider(baseURL string, timeout time.Duration) Provider {
	return &httpProvider{
		name: models.ProviderNaver,
		url:  strings.TrimSuffix(baseURL, "/") + "/v1/nid/me",
		paths: fieldPaths{
			id:    "response.id",
			name:  "response.name",
			email: "response.email",
			image: "response.profile_image",
		},
		client: &http.Client{Timeout: timeout},
	}
}

// NewProviders builds the provider registry keyed by provider name.
func NewProviders(cfg config.OAuth) map[string]Provider {
	providers := map[string]Provider{}
	for _, p := range []Provider{
		NewKakaoProvider(cfg.KakaoAPIURL, cfg.Timeout),
		NewNaverProvider(cfg.NaverAPIURL, cfg.Timeout),
	} {
		providers[p.Name()] = p
	}
	return providers
}

func (p *httpProvider) Name() string {
	return p.name
}

func (p *httpProvider) FetchIdentity(ctx context.Context, accessToken string) (Identity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: build %s request: %v", models.ErrUpstream, p.name, err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := p.client.Do(req)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %s request: %v", models.ErrUpstream, p.name, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return Identity{}, fmt.Errorf("%w: read %s response: %v", models.ErrUpstream, p.name, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Identity{}, fmt.Errorf("%w: %s responded %d", models.ErrUpstream, p.name, resp.StatusCode)
	}
	if !gjson.ValidBytes(body) {
		return Identity{}, fmt.Errorf("%w: %s returned malformed json", models.ErrUpstream, p.name)
	}

	result := gjson.ParseBytes(body)

	// Kakao ids are JSON numbers; String() keeps integer literals verbatim.
	id := result.Get(p.paths.id)
	if !id.Exists() || id.String() == "" {
		return Identity{}, fmt.Errorf("%w: %s response has no user id", models.ErrUpstream, p.name)
	}

	return Identity{
		Provider:   p.name,
		ProviderID: id.String(),
		Profile: models.ProviderProfile{
			Name:  result.Get(p.paths.name).String(),
			Email: result.Get(p.paths.email).String(),
			Image: result.Get(p.paths.image).String(),
		},
	}, nil
}
