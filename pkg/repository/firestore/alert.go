package firestore

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/flare/pkg/domain/model/alert"
	"github.com/secmon-lab/flare/pkg/domain/model/errs"
	"github.com/secmon-lab/flare/pkg/domain/types"
	"github.com/secmon-lab/flare/pkg/utils/errutil"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (r *Firestore) GetAlert(ctx context.Context, circleID types.CircleID, alertID types.AlertID) (*alert.Alert, error) {
	doc, err := r.db.Collection(collectionCircles).Doc(circleID.String()).
		Collection(collectionAlerts).Doc(alertID.String()).
		Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, r.eb.Wrap(err, "failed to get alert",
			goerr.TV(errutil.CircleIDKey, circleID),
			goerr.TV(errutil.AlertIDKey, alertID),
			goerr.T(errs.TagDatabase))
	}

	return alert.FromFields(doc.Data()), nil
}

func (r *Firestore) PutAlert(ctx context.Context, circleID types.CircleID, alertID types.AlertID, a *alert.Alert) error {
	_, err := r.db.Collection(collectionCircles).Doc(circleID.String()).
		Collection(collectionAlerts).Doc(alertID.String()).
		Set(ctx, a.Fields())
	if err != nil {
		return r.eb.Wrap(err, "failed to put alert",
			goerr.TV(errutil.CircleIDKey, circleID),
			goerr.TV(errutil.AlertIDKey, alertID),
			goerr.T(errs.TagDatabase))
	}
	return nil
}
