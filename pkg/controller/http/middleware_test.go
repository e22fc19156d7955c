package http_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/gt"
	server "github.com/secmon-lab/flare/pkg/controller/http"
	"github.com/secmon-lab/flare/pkg/domain/model/auth"
	"github.com/secmon-lab/flare/pkg/utils/logging"
	"google.golang.org/api/idtoken"
)

type stubValidator struct {
	payload *idtoken.Payload
	err     error

	gotToken    string
	gotAudience string
}

func (x *stubValidator) Validate(ctx context.Context, token, audience string) (*idtoken.Payload, error) {
	x.gotToken = token
	x.gotAudience = audience
	return x.payload, x.err
}

func TestPanicRecoveryMiddleware(t *testing.T) {
	t.Run("recover from panic", func(t *testing.T) {
		r := chi.NewRouter()
		r.Use(server.PanicRecoveryMiddleware)

		r.Get("/panic", func(w http.ResponseWriter, r *http.Request) {
			panic("test panic")
		})

		req := httptest.NewRequest(http.MethodGet, "/panic", nil)
		rec := httptest.NewRecorder()

		r.ServeHTTP(rec, req)

		gt.Value(t, rec.Code).Equal(http.StatusInternalServerError)
	})
}

func TestLoggingMiddleware(t *testing.T) {
	var buf bytes.Buffer
	r := chi.NewRouter()
	r.Use(func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := logging.New(&buf, slog.LevelDebug, logging.FormatJSON, false)
			h.ServeHTTP(w, r.WithContext(logging.With(r.Context(), logger)))
		})
	})
	r.Use(server.LoggingMiddleware)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer test_token")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	gt.S(t, buf.String()).Contains(`"method":"GET"`)
	gt.S(t, buf.String()).Contains(`"path":"/"`)
	gt.S(t, buf.String()).Contains(`"status":200`)
	gt.S(t, buf.String()).Contains(`"request_id":`)
	gt.S(t, buf.String()).NotContains(`test_token`)
}

func TestValidateGoogleIDToken(t *testing.T) {
	run := func(t *testing.T, v *stubValidator, header string) (*httptest.ResponseRecorder, map[string]any) {
		var claims map[string]any
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, _ = auth.GetGoogleIDTokenClaims(r.Context())
			w.WriteHeader(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodPost, "/hooks/firestore/alert", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		req = req.WithContext(server.WithIDTokenValidator(req.Context(), v))
		w := httptest.NewRecorder()
		server.ValidateGoogleIDToken("https://flare.example.com")(next).ServeHTTP(w, req)
		return w, claims
	}

	t.Run("valid token injects claims", func(t *testing.T) {
		v := &stubValidator{payload: &idtoken.Payload{Claims: map[string]any{"email": "eventarc@example.iam.gserviceaccount.com"}}}
		w, claims := run(t, v, "Bearer good-token")

		gt.Equal(t, w.Code, http.StatusOK)
		gt.Equal(t, v.gotToken, "good-token")
		gt.Equal(t, v.gotAudience, "https://flare.example.com")
		gt.Equal(t, claims["email"], any("eventarc@example.iam.gserviceaccount.com"))
	})

	t.Run("invalid token", func(t *testing.T) {
		v := &stubValidator{err: errors.New("expired")}
		w, claims := run(t, v, "Bearer bad-token")

		gt.Equal(t, w.Code, http.StatusUnauthorized)
		gt.V(t, claims).Nil()
	})

	t.Run("malformed header", func(t *testing.T) {
		w, _ := run(t, &stubValidator{}, "Basic abc")
		gt.Equal(t, w.Code, http.StatusUnauthorized)
	})

	t.Run("no header passes through", func(t *testing.T) {
		v := &stubValidator{}
		w, claims := run(t, v, "")

		gt.Equal(t, w.Code, http.StatusOK)
		gt.Equal(t, v.gotToken, "")
		gt.V(t, claims).Nil()
	})
}
