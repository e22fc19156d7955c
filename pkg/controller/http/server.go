package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/secmon-lab/flare/pkg/domain/interfaces"
)

type Server struct {
	router          *chi.Mux
	policy          interfaces.PolicyClient
	idTokenAudience string
	noAuthorization bool
}

type Options func(*Server)

func WithPolicy(policy interfaces.PolicyClient) Options {
	return func(s *Server) {
		s.policy = policy
	}
}

func WithNoAuthorization(disabled bool) Options {
	return func(s *Server) {
		s.noAuthorization = disabled
	}
}

// WithIDTokenAudience sets the audience that Google ID tokens on hook
// requests must carry. An empty audience accepts any.
func WithIDTokenAudience(audience string) Options {
	return func(s *Server) {
		s.idTokenAudience = audience
	}
}

type UseCase interface {
	interfaces.AlertUsecases
}

func New(uc UseCase, opts ...Options) *Server {
	r := chi.NewRouter()

	s := &Server{
		router: r,
	}
	for _, opt := range opts {
		opt(s)
	}

	r.Use(loggingMiddleware)
	r.Use(panicRecoveryMiddleware)

	r.Get("/health", healthHandler)

	r.Route("/hooks", func(r chi.Router) {
		r.Use(limitBody(maxBodySize))
		r.Use(withAuthHTTPRequest)
		r.Use(validateGoogleIDToken(s.idTokenAudience))
		r.Use(authorizeWithPolicy(s.policy, s.noAuthorization))

		r.Post("/firestore/alert", alertFirestoreHandler(uc))
		r.Post("/raw/circles/{circleID}/alerts/{alertID}", alertRawHandler(uc))
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
