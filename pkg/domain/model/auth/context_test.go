package auth_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/flare/pkg/domain/model/auth"
)

func TestBuildContext(t *testing.T) {
	t.Setenv("FLARE_TEST_AUTH", "a=b")

	ctx := t.Context()
	_, err := auth.GetGoogleIDTokenClaims(ctx)
	gt.Error(t, err)

	ctx = auth.WithGoogleIDTokenClaims(ctx, map[string]any{"email": "trigger@example.iam.gserviceaccount.com"})
	ctx = auth.WithHTTPRequest(ctx, &auth.HTTPRequest{Method: "POST", Path: "/hooks/firestore/alert"})

	claims, err := auth.GetGoogleIDTokenClaims(ctx)
	gt.NoError(t, err)
	gt.Equal(t, claims["email"], any("trigger@example.iam.gserviceaccount.com"))

	authCtx := auth.BuildContext(ctx)
	gt.Equal(t, authCtx.Google["email"], any("trigger@example.iam.gserviceaccount.com"))
	gt.Equal(t, authCtx.Req.Path, "/hooks/firestore/alert")
	gt.Equal(t, authCtx.Env["FLARE_TEST_AUTH"], "a=b")
}
