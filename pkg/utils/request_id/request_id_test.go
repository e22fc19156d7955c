package request_id_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/flare/pkg/utils/request_id"
)

func TestRequestID(t *testing.T) {
	ctx := context.Background()
	gt.Equal(t, request_id.FromContext(ctx), "")

	ctx, id := request_id.Generate(ctx)
	gt.S(t, id).NotEqual("")
	gt.Equal(t, request_id.FromContext(ctx), id)

	ctx = request_id.With(ctx, "fixed")
	gt.Equal(t, request_id.FromContext(ctx), "fixed")
}
