package http

import (
	"encoding/json"
	"io"
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/flare/pkg/domain/model/alert"
	"github.com/secmon-lab/flare/pkg/domain/model/errs"
	"github.com/secmon-lab/flare/pkg/domain/model/trigger"
	"github.com/secmon-lab/flare/pkg/domain/types"
	"github.com/secmon-lab/flare/pkg/utils/logging"
)

// alertFirestoreHandler receives the document-created event of
// circles/{circleId}/alerts/{alertId}.
func alertFirestoreHandler(uc UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		logger := logging.From(ctx)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			handleError(w, r, goerr.Wrap(err, "failed to read body", goerr.T(errs.TagInvalidRequest)))
			return
		}

		var ev *trigger.DocumentEvent
		if isProtobuf(r.Header.Get("Content-Type")) {
			ev, err = trigger.ParseProto(body)
		} else {
			ev, err = trigger.ParseJSON(body)
		}
		if err != nil {
			handleError(w, r, err)
			return
		}

		if ev.Value.GetName() == "" {
			logger.Debug("Document event carries no document, skip")
			w.WriteHeader(http.StatusOK)
			return
		}
		if !ev.IsCreate() {
			logger.Info("Ignore document event that is not a creation", "name", ev.Value.GetName())
			w.WriteHeader(http.StatusOK)
			return
		}

		path, err := ev.AlertPath()
		if err != nil {
			handleError(w, r, err)
			return
		}

		if err := uc.HandleAlertCreated(ctx, path.CircleID, path.AlertID, ev.Alert()); err != nil {
			handleError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}

// alertRawHandler takes an alert record as a plain JSON object. A null body
// is treated as an absent record.
func alertRawHandler(uc UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		circleID := types.CircleID(chi.URLParam(r, "circleID"))
		alertID := types.AlertID(chi.URLParam(r, "alertID"))

		if err := circleID.Validate(); err != nil {
			handleError(w, r, goerr.Wrap(err, "invalid circle ID", goerr.T(errs.TagInvalidRequest)))
			return
		}
		if err := alertID.Validate(); err != nil {
			handleError(w, r, goerr.Wrap(err, "invalid alert ID", goerr.T(errs.TagInvalidRequest)))
			return
		}

		if mediaType(r.Header.Get("Content-Type")) != "application/json" {
			handleError(w, r, goerr.New("invalid content type",
				goerr.V("content_type", r.Header.Get("Content-Type")),
				goerr.T(errs.TagInvalidRequest),
			))
			return
		}

		var fields map[string]any
		if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
			handleError(w, r, goerr.Wrap(err, "failed to decode alert",
				goerr.T(errs.TagInvalidRequest),
			))
			return
		}

		if err := uc.HandleAlertCreated(r.Context(), circleID, alertID, alert.FromFields(fields)); err != nil {
			handleError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}

func mediaType(contentType string) string {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}
	return mt
}

func isProtobuf(contentType string) bool {
	switch mediaType(contentType) {
	case "application/protobuf", "application/x-protobuf":
		return true
	}
	return false
}
