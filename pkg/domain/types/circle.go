package types

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// CircleID is the document ID of a circle. Users reference it through their
// circleId field.
type CircleID string

const EmptyCircleID CircleID = ""

func (x CircleID) String() string {
	return string(x)
}

func (x CircleID) Validate() error {
	if x == EmptyCircleID {
		return goerr.New("empty circle ID")
	}
	return validateDocumentID(string(x))
}

// UserID is the document ID of a user in the users collection.
type UserID string

const EmptyUserID UserID = ""

func (x UserID) String() string {
	return string(x)
}

func (x UserID) Validate() error {
	if x == EmptyUserID {
		return goerr.New("empty user ID")
	}
	return validateDocumentID(string(x))
}

// validateDocumentID rejects IDs that Firestore would interpret as a path.
func validateDocumentID(id string) error {
	if strings.Contains(id, "/") {
		return goerr.New("document ID must not contain '/'", goerr.V("id", id))
	}
	if id == "." || id == ".." {
		return goerr.New("document ID must not be '.' or '..'", goerr.V("id", id))
	}
	return nil
}
