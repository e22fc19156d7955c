package usecase

import (
	"github.com/secmon-lab/flare/pkg/domain/interfaces"
	"github.com/secmon-lab/flare/pkg/repository"
)

// DefaultTokenFetchConcurrency is the number of users whose tokens are read
// at the same time.
const DefaultTokenFetchConcurrency = 4

type UseCases struct {
	// services and adapters
	repository interfaces.Repository
	messenger  interfaces.Messenger

	// configs
	tokenFetchConcurrency int
}

var _ interfaces.AlertUsecases = &UseCases{}

type Option func(*UseCases)

func WithRepository(repository interfaces.Repository) Option {
	return func(u *UseCases) {
		u.repository = repository
	}
}

func WithMessenger(messenger interfaces.Messenger) Option {
	return func(u *UseCases) {
		u.messenger = messenger
	}
}

// WithTokenFetchConcurrency sets how many users' tokens are fetched in
// parallel. 1 reads them one after another. Values below 1 are ignored.
func WithTokenFetchConcurrency(n int) Option {
	return func(u *UseCases) {
		if n > 0 {
			u.tokenFetchConcurrency = n
		}
	}
}

func New(opts ...Option) *UseCases {
	u := &UseCases{
		repository:            repository.NewMemory(),
		tokenFetchConcurrency: DefaultTokenFetchConcurrency,
	}

	for _, opt := range opts {
		opt(u)
	}

	return u
}
