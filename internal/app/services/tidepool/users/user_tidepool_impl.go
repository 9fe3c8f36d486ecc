package users

import (
	"context"
	"fmt"
	"net/url"
	"orca-service/internal/app/contracts"
	"orca-service/internal/app/services/tidepool/client"
	"orca-service/internal/pkg/constvars"
	"orca-service/internal/pkg/tidepool_dto"

	"go.uber.org/zap"
)

type userTidepoolClient struct {
	Client *client.Client
	Log    *zap.Logger
}

func NewUserTidepoolClient(tidepoolClient *client.Client, logger *zap.Logger) contracts.UserTidepoolClient {
	return &userTidepoolClient{
		Client: tidepoolClient,
		Log:    logger,
	}
}

// FindUser accepts either a user id or an email address.
func (c *userTidepoolClient) FindUser(ctx context.Context, userIDOrEmail string) (*tidepool_dto.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("userTidepoolClient.FindUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSearchKey, userIDOrEmail),
	)

	user := new(tidepool_dto.User)
	path := fmt.Sprintf(constvars.TidepoolPathUser, url.PathEscape(userIDOrEmail))
	if err := c.Client.Get(ctx, path, nil, constvars.TidepoolResourceUser, user); err != nil {
		return nil, err
	}

	c.Log.Info("userTidepoolClient.FindUser succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.UserID),
	)
	return user, nil
}

func (c *userTidepoolClient) FindProfile(ctx context.Context, userID string) (*tidepool_dto.Profile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("userTidepoolClient.FindProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	profile := new(tidepool_dto.Profile)
	path := fmt.Sprintf(constvars.TidepoolPathProfile, url.PathEscape(userID))
	if err := c.Client.Get(ctx, path, nil, constvars.TidepoolResourceProfile, profile); err != nil {
		return nil, err
	}
	return profile, nil
}
