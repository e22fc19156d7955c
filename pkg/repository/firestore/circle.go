package firestore

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/flare/pkg/domain/model/circle"
	"github.com/secmon-lab/flare/pkg/domain/model/errs"
	"github.com/secmon-lab/flare/pkg/domain/types"
	"github.com/secmon-lab/flare/pkg/utils/errutil"
	"google.golang.org/api/iterator"
)

func (r *Firestore) FindUsersByCircle(ctx context.Context, circleID types.CircleID) ([]*circle.User, error) {
	iter := r.db.Collection(collectionUsers).
		Where(circle.FieldCircleID, "==", circleID.String()).
		Documents(ctx)
	defer iter.Stop()

	var users []*circle.User
	for {
		doc, err := iter.Next()
		if err != nil {
			if err == iterator.Done {
				break
			}
			return nil, r.eb.Wrap(err, "failed to query circle members",
				goerr.TV(errutil.CircleIDKey, circleID),
				goerr.TV(errutil.CollectionKey, collectionUsers),
				goerr.T(errs.TagDatabase))
		}

		users = append(users, circle.UserFromFields(types.UserID(doc.Ref.ID), doc.Data()))
	}

	return users, nil
}

func (r *Firestore) GetDeviceTokens(ctx context.Context, userID types.UserID) (circle.DeviceTokens, error) {
	iter := r.db.Collection(collectionUsers).Doc(userID.String()).
		Collection(collectionFCMTokens).
		Documents(ctx)
	defer iter.Stop()

	var tokens circle.DeviceTokens
	for {
		doc, err := iter.Next()
		if err != nil {
			if err == iterator.Done {
				break
			}
			return nil, r.eb.Wrap(err, "failed to get device tokens",
				goerr.TV(errutil.UserIDKey, userID),
				goerr.TV(errutil.CollectionKey, collectionFCMTokens),
				goerr.T(errs.TagDatabase))
		}

		tokens = append(tokens, circle.TokenFromFields(userID, doc.Ref.ID, doc.Data()))
	}

	return tokens, nil
}

func (r *Firestore) PutUser(ctx context.Context, user *circle.User) error {
	if _, err := r.db.Collection(collectionUsers).Doc(user.ID.String()).Set(ctx, user.Fields()); err != nil {
		return r.eb.Wrap(err, "failed to put user",
			goerr.TV(errutil.UserIDKey, user.ID),
			goerr.T(errs.TagDatabase))
	}
	return nil
}

func (r *Firestore) PutDeviceToken(ctx context.Context, token *circle.DeviceToken) error {
	ref := r.db.Collection(collectionUsers).Doc(token.UserID.String()).Collection(collectionFCMTokens)
	doc := ref.NewDoc()
	if token.ID != "" {
		doc = ref.Doc(token.ID)
	}

	if _, err := doc.Set(ctx, map[string]any{circle.FieldToken: token.Token}); err != nil {
		return r.eb.Wrap(err, "failed to put device token",
			goerr.TV(errutil.UserIDKey, token.UserID),
			goerr.TV(errutil.DocumentKey, doc.ID),
			goerr.T(errs.TagDatabase))
	}
	token.ID = doc.ID
	return nil
}
