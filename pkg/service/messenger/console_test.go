package messenger_test

import (
	"bytes"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/flare/pkg/domain/model/notification"
	"github.com/secmon-lab/flare/pkg/service/messenger"
)

func TestConsole(t *testing.T) {
	var buf bytes.Buffer
	console := messenger.NewConsole(&buf)

	report, err := console.SendMulticast(t.Context(), []string{"device-token-abcd", "device-token-wxyz"}, notification.Payload{
		Title: "Alice",
		Body:  "Help\nNear park",
		Data: map[string]string{
			"circleId": "c1",
			"alertId":  "a1",
		},
	})
	gt.NoError(t, err).Required()
	gt.Equal(t, report.SuccessCount, 2)
	gt.Equal(t, report.FailureCount, 0)

	out := buf.String()
	gt.S(t, out).Contains("Push notification to 2 device(s)")
	gt.S(t, out).Contains("Title: Alice")
	gt.S(t, out).Contains("Near park")
	gt.S(t, out).Contains("data.alertId")
	gt.S(t, out).Contains(`= "a1"`)
	gt.S(t, out).Contains("****abcd")
	gt.S(t, out).NotContains("device-token-abcd")
}
