package interfaces

//go:generate go tool moq -out ../mock/mock.go -pkg mock -skip-ensure . Repository Messenger PolicyClient FCMClient AlertUsecases
