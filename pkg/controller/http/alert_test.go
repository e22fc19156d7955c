package http_test

import (
	"bytes"
	_ "embed"
	"net/http"
	"net/http/httptest"
	"testing"

	"cloud.google.com/go/firestore/apiv1/firestorepb"
	"github.com/m-mizutani/gt"
	server "github.com/secmon-lab/flare/pkg/controller/http"
	"github.com/secmon-lab/flare/pkg/domain/types"
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/proto"
)

//go:embed testdata/alert_created.json
var alertCreatedJSON []byte

//go:embed testdata/alert_updated.json
var alertUpdatedJSON []byte

func postEvent(srv http.Handler, contentType string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/hooks/firestore/alert", bytes.NewReader(body))
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)
	return w
}

func TestAlertFirestoreHandler(t *testing.T) {
	t.Run("created document", func(t *testing.T) {
		uc := acceptAll()
		w := postEvent(server.New(uc), "application/json", alertCreatedJSON)

		gt.Equal(t, w.Code, http.StatusOK)
		calls := uc.HandleAlertCreatedCalls()
		gt.A(t, calls).Length(1).Required()
		gt.Equal(t, calls[0].CircleID, types.CircleID("circle-1"))
		gt.Equal(t, calls[0].AlertID, types.AlertID("alert-1"))
		gt.V(t, calls[0].A.SenderID).Equal(any(int64(42)))
		gt.Equal(t, calls[0].A.Title(), "Ana")
		gt.Equal(t, calls[0].A.Body(), "Help!\nMain St")
	})

	t.Run("protobuf event", func(t *testing.T) {
		doc := &firestorepb.Document{
			Name: "projects/flare-dev/databases/(default)/documents/circles/circle-2/alerts/alert-2",
			Fields: map[string]*firestorepb.Value{
				"message": {ValueType: &firestorepb.Value_StringValue{StringValue: "Help"}},
			},
		}
		encoded, err := proto.Marshal(doc)
		gt.NoError(t, err).Required()
		body := protowire.AppendTag(nil, 1, protowire.BytesType)
		body = protowire.AppendBytes(body, encoded)

		uc := acceptAll()
		w := postEvent(server.New(uc), "application/protobuf", body)

		gt.Equal(t, w.Code, http.StatusOK)
		calls := uc.HandleAlertCreatedCalls()
		gt.A(t, calls).Length(1).Required()
		gt.Equal(t, calls[0].CircleID, types.CircleID("circle-2"))
		gt.Equal(t, calls[0].A.Message, "Help")
	})

	t.Run("update event is ignored", func(t *testing.T) {
		uc := acceptAll()
		w := postEvent(server.New(uc), "application/json", alertUpdatedJSON)

		gt.Equal(t, w.Code, http.StatusOK)
		gt.A(t, uc.HandleAlertCreatedCalls()).Length(0)
	})

	t.Run("event without document is a no-op", func(t *testing.T) {
		uc := acceptAll()
		w := postEvent(server.New(uc), "application/json", []byte(`{"oldValue": {}, "value": {}}`))

		gt.Equal(t, w.Code, http.StatusOK)
		gt.A(t, uc.HandleAlertCreatedCalls()).Length(0)
	})

	t.Run("document outside alerts", func(t *testing.T) {
		uc := acceptAll()
		w := postEvent(server.New(uc), "application/json",
			[]byte(`{"value": {"name": "projects/p/databases/(default)/documents/users/u1"}}`))

		gt.Equal(t, w.Code, http.StatusBadRequest)
		gt.A(t, uc.HandleAlertCreatedCalls()).Length(0)
	})

	t.Run("malformed event", func(t *testing.T) {
		uc := acceptAll()
		w := postEvent(server.New(uc), "application/json", []byte(`{"value": `))

		gt.Equal(t, w.Code, http.StatusBadRequest)
		gt.A(t, uc.HandleAlertCreatedCalls()).Length(0)
	})
}
