package types

import (
	"github.com/m-mizutani/goerr/v2"
)

// AlertID is the document ID of an alert under circles/{circleId}/alerts.
type AlertID string

const EmptyAlertID AlertID = ""

func (x AlertID) String() string {
	return string(x)
}

func (x AlertID) Validate() error {
	if x == EmptyAlertID {
		return goerr.New("empty alert ID")
	}
	return validateDocumentID(string(x))
}
