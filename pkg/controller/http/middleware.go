package http

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/flare/pkg/domain/interfaces"
	"github.com/secmon-lab/flare/pkg/domain/model/auth"
	"github.com/secmon-lab/flare/pkg/domain/model/errs"
	"github.com/secmon-lab/flare/pkg/utils/logging"
	"google.golang.org/api/idtoken"
)

// maxBodySize bounds hook request bodies. A Firestore document is at most
// 1 MiB and the event carries up to two of them.
const maxBodySize = 4 << 20

type contextKey string

const (
	idTokenValidatorKey contextKey = "id_token_validator"
)

type idTokenValidator interface {
	Validate(ctx context.Context, idToken string, audience string) (*idtoken.Payload, error)
}

func withIDTokenValidator(ctx context.Context, v idTokenValidator) context.Context {
	return context.WithValue(ctx, idTokenValidatorKey, v)
}

func limitBody(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, limit)
			next.ServeHTTP(w, r)
		})
	}
}

func withAuthHTTPRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			handleError(w, r, goerr.Wrap(err, "failed to read request body", goerr.T(errs.TagInvalidRequest)))
			return
		}
		// Restore the body for next handlers
		r.Body = io.NopCloser(bytes.NewBuffer(body))

		copiedHeader := make(map[string][]string)
		for k, v := range r.Header {
			copiedHeader[k] = v[:]
		}

		authReq := &auth.HTTPRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Body:   string(body),
			Header: copiedHeader,
		}

		ctx := auth.WithHTTPRequest(r.Context(), authReq)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// validateGoogleIDToken validates Google ID token in Authorization header
// and injects the claims into request context if valid. Requests without
// the header pass through and are left to the policy.
func validateGoogleIDToken(audience string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				next.ServeHTTP(w, r)
				return
			}

			// Extract token from "Bearer <token>"
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				http.Error(w, "Invalid Authorization header format", http.StatusUnauthorized)
				return
			}

			token := parts[1]

			validator, ok := r.Context().Value(idTokenValidatorKey).(idTokenValidator)
			if !ok {
				v, err := idtoken.NewValidator(r.Context())
				if err != nil {
					handleError(w, r, goerr.Wrap(err, "failed to create token validator"))
					return
				}
				validator = v
			}

			payload, err := validator.Validate(r.Context(), token, audience)
			if err != nil {
				logging.From(r.Context()).Warn("invalid ID token", "error", err)
				http.Error(w, "Invalid token", http.StatusUnauthorized)
				return
			}

			// Inject validated claims into request context
			ctx := auth.WithGoogleIDTokenClaims(r.Context(), payload.Claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// getDetailedStackTrace returns a detailed stack trace with function names and line numbers
func getDetailedStackTrace() string {
	var buf strings.Builder
	buf.WriteString("Detailed Stack Trace:\n")

	// Get callers (skip the first few frames that are in the panic recovery code)
	callers := make([]uintptr, 64)
	n := runtime.Callers(3, callers)
	frames := runtime.CallersFrames(callers[:n])

	for {
		frame, more := frames.Next()
		fmt.Fprintf(&buf, "  %s\n    %s:%d\n", frame.Function, frame.File, frame.Line)
		if !more {
			break
		}
	}

	return buf.String()
}

func panicRecoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				panicErr := goerr.New("panic recovered",
					goerr.V("panic", fmt.Sprintf("%v", err)),
					goerr.V("debug_stack", string(debug.Stack())),
					goerr.V("detailed_stack", getDetailedStackTrace()),
					goerr.V("method", r.Method),
					goerr.V("path", r.URL.Path),
				)

				handleError(w, r, panicErr)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func authorizeWithPolicy(policy interfaces.PolicyClient, noAuthorization bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Bypass authorization check if --no-authorization flag is set
			if noAuthorization {
				logging.From(r.Context()).Debug("authorization check bypassed due to --no-authorization flag")
				next.ServeHTTP(w, r)
				return
			}

			if policy == nil {
				next.ServeHTTP(w, r)
				return
			}

			var result struct {
				Allow bool `json:"allow"`
			}

			ctx := r.Context()
			authCtx := auth.BuildContext(ctx)
			if err := policy.Query(ctx, "data.auth", authCtx, &result); err != nil {
				handleError(w, r, goerr.Wrap(err, "failed to authorize request"))
				return
			}

			logging.From(ctx).Debug("authorization result", "input", authCtx, "output", result)

			if !result.Allow {
				logging.From(ctx).Warn("authorization failed", "auth", authCtx)
				http.Error(w, `Authorization failed. Check your policy.`, http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
