package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func TestGoogleVerifier_Verify(t *testing.T) {
	validPayload := func() *idtoken.Payload {
		return &idtoken.Payload{
			Issuer: "https://accounts.google.com",
			Claims: map[string]any{"email": "push@p.iam.gserviceaccount.com", "email_verified": true},
		}
	}

	tests := []struct {
		name           string
		header         string
		serviceAccount string
		payload        func() *idtoken.Payload
		validateErr    error
		wantErr        string
	}{
		{name: "valid", header: "Bearer tok", payload: validPayload},
		{name: "missing header", header: "", payload: validPayload, wantErr: "missing bearer token"},
		{name: "basic auth", header: "Basic abc", payload: validPayload, wantErr: "missing bearer token"},
		{name: "invalid token", header: "Bearer tok", validateErr: errors.New("expired"), wantErr: "validate push token"},
		{
			name:   "foreign issuer",
			header: "Bearer tok",
			payload: func() *idtoken.Payload {
				p := validPayload()
				p.Issuer = "https://evil.example.com"

				return p
			},
			wantErr: "unexpected issuer",
		},
		{
			name:   "unverified email",
			header: "Bearer tok",
			payload: func() *idtoken.Payload {
				p := validPayload()
				p.Claims["email_verified"] = false

				return p
			},
			wantErr: "not verified",
		},
		{
			name:           "wrong service account",
			header:         "Bearer tok",
			serviceAccount: "other@p.iam.gserviceaccount.com",
			payload:        validPayload,
			wantErr:        "push token issued to",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotAudience string
			v := newGoogleVerifier("", tt.serviceAccount)
			v.validate = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
				gotAudience = audience
				if tt.validateErr != nil {
					return nil, tt.validateErr
				}

				return tt.payload(), nil
			}

			req := httptest.NewRequest(http.MethodPost, "http://worker.internal/push", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			err := v.Verify(req)
			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, "http://worker.internal/push", gotAudience)
		})
	}
}

func TestGoogleVerifier_ConfiguredAudience(t *testing.T) {
	v := newGoogleVerifier("https://receipts.example.com/push", "")
	req := httptest.NewRequest(http.MethodPost, "http://10.0.0.3/push", nil)

	assert.Equal(t, "https://receipts.example.com/push", v.audienceFor(req))
}
