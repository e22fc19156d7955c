package usecase

// Export private fields for testing

func (uc *UseCases) TokenFetchConcurrency() int {
	return uc.tokenFetchConcurrency
}
