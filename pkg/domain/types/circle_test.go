package types_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/flare/pkg/domain/types"
)

func TestIDValidate(t *testing.T) {
	testCases := []struct {
		name    string
		err     error
		wantErr bool
	}{
		{"valid circle", types.CircleID("circle-1").Validate(), false},
		{"empty circle", types.CircleID("").Validate(), true},
		{"circle with slash", types.CircleID("a/b").Validate(), true},
		{"valid alert", types.AlertID("alert-1").Validate(), false},
		{"empty alert", types.EmptyAlertID.Validate(), true},
		{"dot alert", types.AlertID("..").Validate(), true},
		{"valid user", types.UserID("u1").Validate(), false},
		{"empty user", types.EmptyUserID.Validate(), true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.wantErr {
				gt.Error(t, tc.err)
			} else {
				gt.NoError(t, tc.err)
			}
		})
	}
}
