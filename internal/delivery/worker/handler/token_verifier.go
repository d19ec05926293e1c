package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"google.golang.org/api/idtoken"
)

var googleIssuers = map[string]bool{
	"accounts.google.com":         true,
	"https://accounts.google.com": true,
}

// TokenVerifier authenticates a push request.
type TokenVerifier interface {
	Verify(req *http.Request) error
}

type validateFunc func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// googleVerifier checks the OIDC token Pub/Sub attaches to authenticated push requests.
type googleVerifier struct {
	audience       string
	serviceAccount string
	validate       validateFunc
}

func newGoogleVerifier(audience, serviceAccount string) *googleVerifier {
	return &googleVerifier{
		audience:       audience,
		serviceAccount: serviceAccount,
		validate:       idtoken.Validate,
	}
}

func (v *googleVerifier) Verify(req *http.Request) error {
	token, ok := strings.CutPrefix(req.Header.Get("Authorization"), "Bearer ")
	if !ok || token == "" {
		return errors.New("missing bearer token")
	}

	payload, err := v.validate(req.Context(), token, v.audienceFor(req))
	if err != nil {
		return errors.Wrap(err, "validate push token")
	}
	if !googleIssuers[payload.Issuer] {
		return errors.Errorf("unexpected issuer %q", payload.Issuer)
	}
	if verified, ok := payload.Claims["email_verified"].(bool); ok && !verified {
		return errors.New("push token email not verified")
	}
	if v.serviceAccount != "" {
		if email, _ := payload.Claims["email"].(string); email != v.serviceAccount {
			return errors.Errorf("push token issued to %q", email)
		}
	}

	return nil
}

// audienceFor defaults to the URL the push was sent to.
func (v *googleVerifier) audienceFor(req *http.Request) string {
	if v.audience != "" {
		return v.audience
	}
	scheme := "http"
	if req.TLS != nil || req.Header.Get("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}

	return scheme + "://" + req.Host + req.URL.Path
}
