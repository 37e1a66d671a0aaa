package stripe

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jt-helsinki/stripe-connect/providers"
)

// oauthError is the JSON error body of the OAuth endpoints
type oauthError struct {
	ErrorCode        string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// Connect performs the OAuth token exchange for a standalone account. The grant
// type defaults to authorization_code. Connect never retries; the exchange is
// not idempotency-safe.
func (s *StripeGateway) Connect(ctx context.Context, params *providers.ConnectParams) (*providers.OAuthToken, error) {
	ctx = s.tagContext(ctx, "connect", "")
	defer s.observe("connect", time.Now())
	if params == nil {
		params = &providers.ConnectParams{}
	}
	grant := params.GrantType
	if grant == "" {
		grant = providers.GrantTypeAuthorizationCode
	}
	form := url.Values{}
	form.Set("grant_type", string(grant))
	form.Set("client_id", s.cfg.ClientID)
	form.Set("client_secret", s.cfg.SecretKey)
	switch grant {
	case providers.GrantTypeAuthorizationCode:
		form.Set("code", params.Code)
	case providers.GrantTypeRefreshToken:
		form.Set("refresh_token", params.RefreshToken)
	default:
		return nil, providers.NewAuthorizationError(fmt.Sprintf("unsupported grant type %q", grant), nil)
	}
	token := &providers.OAuthToken{}
	if err := s.postForm(ctx, "connect", s.cfg.AuthorizeURL, form, false, token); err != nil {
		return nil, err
	}
	s.logger.Info(ctx, "connected standalone account", map[string]any{
		"stripe_user_id": token.StripeUserID,
		"livemode":       token.Livemode,
	})
	return token, nil
}

// Disconnect revokes the platform's access to a connected account. Single
// attempt, no retries.
func (s *StripeGateway) Disconnect(ctx context.Context, accountID string) (*providers.Deauthorization, error) {
	ctx = s.tagContext(ctx, "disconnect", accountID)
	defer s.observe("disconnect", time.Now())
	form := url.Values{}
	form.Set("client_id", s.cfg.ClientID)
	form.Set("stripe_user_id", accountID)
	deauthorization := &providers.Deauthorization{}
	if err := s.postForm(ctx, "disconnect", s.cfg.DeauthorizeURL, form, true, deauthorization); err != nil {
		return nil, err
	}
	s.logger.Info(ctx, "disconnected standalone account", map[string]any{
		"stripe_user_id": deauthorization.StripeUserID,
	})
	return deauthorization, nil
}

func (s *StripeGateway) postForm(ctx context.Context, operation string, endpoint string, form url.Values, bearer bool, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return providers.NewAuthorizationError("failed to build oauth request", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if bearer {
		req.Header.Set("Authorization", "Bearer "+s.cfg.SecretKey)
	}
	resp, err := s.httpClient.Do(req)
	s.count(operation, err)
	if err != nil {
		return providers.NewAuthorizationError("oauth request failed", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return providers.NewAuthorizationError("failed to read oauth response", err)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var oerr oauthError
		if jsonErr := json.Unmarshal(body, &oerr); jsonErr == nil && oerr.ErrorCode != "" {
			return providers.NewAuthorizationError(fmt.Sprintf("%s: %s", oerr.ErrorCode, oerr.ErrorDescription), nil)
		}
		return providers.NewAuthorizationError(fmt.Sprintf("oauth endpoint returned status %d", resp.StatusCode), nil)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return providers.NewAuthorizationError("failed to decode oauth response", err)
	}
	return nil
}
