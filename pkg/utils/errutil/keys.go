package errutil

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/flare/pkg/domain/types"
)

var (
	// IDs
	CircleIDKey  = goerr.NewTypedKey[types.CircleID]("circle_id")
	AlertIDKey   = goerr.NewTypedKey[types.AlertID]("alert_id")
	UserIDKey    = goerr.NewTypedKey[types.UserID]("user_id")
	RequestIDKey = goerr.NewTypedKey[string]("request_id")

	// Firestore
	CollectionKey = goerr.NewTypedKey[string]("collection")
	DocumentKey   = goerr.NewTypedKey[string]("document")
	ProjectIDKey  = goerr.NewTypedKey[string]("project_id")
	DatabaseIDKey = goerr.NewTypedKey[string]("database_id")

	// Delivery
	TokenCountKey = goerr.NewTypedKey[int]("token_count")
	BatchKey      = goerr.NewTypedKey[int]("batch")

	// Files
	FilePathKey = goerr.NewTypedKey[string]("file_path")
)
