package rest

import (
	"context"
	"net/http"

	"github.com/WelcomerTeam/Swyft/discord"
)

func (c *Client) GetChannel(ctx context.Context, channelID discord.Snowflake) (*discord.Channel, error) {
	if err := validate().id("channel_id", channelID).Err(); err != nil {
		return nil, err
	}

	channel := &discord.Channel{}

	if err := c.FetchJJ(ctx, http.MethodGet, EndpointChannel(channelID), nil, nil, channel); err != nil {
		return nil, err
	}

	return channel, nil
}

func (c *Client) ModifyChannel(ctx context.Context, channelID discord.Snowflake, params discord.ChannelParams, reason string) (*discord.Channel, error) {
	if err := validate().id("channel_id", channelID).Err(); err != nil {
		return nil, err
	}

	channel := &discord.Channel{}

	if err := c.FetchJJ(ctx, http.MethodPatch, EndpointChannel(channelID), params, withReason(reason), channel); err != nil {
		return nil, err
	}

	return channel, nil
}

// DeleteChannel deletes a channel, or closes a DM. The deleted channel is returned.
func (c *Client) DeleteChannel(ctx context.Context, channelID discord.Snowflake, reason string) (*discord.Channel, error) {
	if err := validate().id("channel_id", channelID).Err(); err != nil {
		return nil, err
	}

	channel := &discord.Channel{}

	if err := c.FetchJJ(ctx, http.MethodDelete, EndpointChannel(channelID), nil, withReason(reason), channel); err != nil {
		return nil, err
	}

	return channel, nil
}

func (c *Client) EditChannelPermissions(ctx context.Context, channelID, overwriteID discord.Snowflake, params discord.ChannelPermissionsParams, reason string) error {
	if err := validate().
		id("channel_id", channelID).
		id("overwrite_id", overwriteID).
		check(params.Type == discord.ChannelOverrideTypeRole || params.Type == discord.ChannelOverrideTypeMember, "type", "must be role or member").
		Err(); err != nil {
		return err
	}

	return c.FetchJJ(ctx, http.MethodPut, EndpointChannelPermission(channelID, overwriteID), params, withReason(reason), nil)
}

func (c *Client) DeleteChannelPermission(ctx context.Context, channelID, overwriteID discord.Snowflake, reason string) error {
	if err := validate().id("channel_id", channelID).id("overwrite_id", overwriteID).Err(); err != nil {
		return err
	}

	return c.FetchJJ(ctx, http.MethodDelete, EndpointChannelPermission(channelID, overwriteID), nil, withReason(reason), nil)
}

// GetChannelPermissions returns the permission overwrites of a channel. There is no
// dedicated route, the overwrites are read from the channel.
func (c *Client) GetChannelPermissions(ctx context.Context, channelID discord.Snowflake) ([]discord.ChannelOverwrite, error) {
	channel, err := c.GetChannel(ctx, channelID)
	if err != nil {
		return nil, err
	}

	return channel.PermissionOverwrites, nil
}

func (c *Client) GetChannelInvites(ctx context.Context, channelID discord.Snowflake) ([]discord.Invite, error) {
	if err := validate().id("channel_id", channelID).Err(); err != nil {
		return nil, err
	}

	var invites []discord.Invite

	if err := c.FetchJJ(ctx, http.MethodGet, EndpointChannelInvites(channelID), nil, nil, &invites); err != nil {
		return nil, err
	}

	return invites, nil
}

func (c *Client) CreateChannelInvite(ctx context.Context, channelID discord.Snowflake, params discord.InviteParams, reason string) (*discord.Invite, error) {
	if err := validate().
		id("channel_id", channelID).
		between("max_age", int(params.MaxAge), 0, 604800, false).
		between("max_uses", int(params.MaxUses), 0, 100, false).
		Err(); err != nil {
		return nil, err
	}

	invite := &discord.Invite{}

	if err := c.FetchJJ(ctx, http.MethodPost, EndpointChannelInvites(channelID), params, withReason(reason), invite); err != nil {
		return nil, err
	}

	return invite, nil
}

func (c *Client) GetChannelWebhooks(ctx context.Context, channelID discord.Snowflake) ([]discord.Webhook, error) {
	if err := validate().id("channel_id", channelID).Err(); err != nil {
		return nil, err
	}

	var webhooks []discord.Webhook

	if err := c.FetchJJ(ctx, http.MethodGet, EndpointChannelWebhooks(channelID), nil, nil, &webhooks); err != nil {
		return nil, err
	}

	return webhooks, nil
}

// FollowAnnouncementChannel follows channelID into webhookChannelID.
func (c *Client) FollowAnnouncementChannel(ctx context.Context, channelID, webhookChannelID discord.Snowflake) (*discord.FollowedChannel, error) {
	if err := validate().id("channel_id", channelID).id("webhook_channel_id", webhookChannelID).Err(); err != nil {
		return nil, err
	}

	payload := struct {
		WebhookChannelID discord.Snowflake `json:"webhook_channel_id"`
	}{WebhookChannelID: webhookChannelID}

	followed := &discord.FollowedChannel{}

	if err := c.FetchJJ(ctx, http.MethodPost, EndpointChannelFollowers(channelID), payload, nil, followed); err != nil {
		return nil, err
	}

	return followed, nil
}

// CreateDM opens a DM channel with a user.
func (c *Client) CreateDM(ctx context.Context, recipientID discord.Snowflake) (*discord.Channel, error) {
	if err := validate().id("recipient_id", recipientID).Err(); err != nil {
		return nil, err
	}

	payload := struct {
		RecipientID discord.Snowflake `json:"recipient_id"`
	}{RecipientID: recipientID}

	channel := &discord.Channel{}

	if err := c.FetchJJ(ctx, http.MethodPost, EndpointCurrentUserChannels, payload, nil, channel); err != nil {
		return nil, err
	}

	return channel, nil
}
