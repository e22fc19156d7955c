package interfaces

import (
	"context"

	"firebase.google.com/go/v4/messaging"
	"github.com/m-mizutani/opaq"
)

type PolicyClient interface {
	Query(context.Context, string, any, any, ...opaq.QueryOption) error
	Sources() map[string]string
}

// FCMClient is the subset of *messaging.Client used for multicast delivery.
type FCMClient interface {
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
	SendEachForMulticastDryRun(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}
