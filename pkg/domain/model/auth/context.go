package auth

import (
	"context"
	"os"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

type contextKey string

const (
	googleIDTokenClaimsKey contextKey = "google_id_token_claims"
	httpRequestKey         contextKey = "http_request"
)

func WithGoogleIDTokenClaims(ctx context.Context, claims map[string]any) context.Context {
	return context.WithValue(ctx, googleIDTokenClaimsKey, claims)
}

func WithHTTPRequest(ctx context.Context, req *HTTPRequest) context.Context {
	return context.WithValue(ctx, httpRequestKey, req)
}

// GetGoogleIDTokenClaims retrieves Google ID token claims from context
func GetGoogleIDTokenClaims(ctx context.Context) (map[string]any, error) {
	claims, ok := ctx.Value(googleIDTokenClaimsKey).(map[string]any)
	if !ok {
		return nil, goerr.New("Google ID token claims not found in context")
	}
	return claims, nil
}

func BuildContext(ctx context.Context) Context {
	var authCtx Context
	if claims, ok := ctx.Value(googleIDTokenClaimsKey).(map[string]any); ok {
		authCtx.Google = claims
	}

	if req, ok := ctx.Value(httpRequestKey).(*HTTPRequest); ok {
		authCtx.Req = req
	}

	authCtx.Env = make(map[string]string)
	for _, v := range os.Environ() {
		if key, value, ok := strings.Cut(v, "="); ok {
			authCtx.Env[key] = value
		}
	}

	return authCtx
}
