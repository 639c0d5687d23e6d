package rest

import (
	"context"
	"net/http"

	"github.com/WelcomerTeam/Swyft/discord"
)

func validateThread(params discord.StartThreadParams) *validator {
	return validate().
		str("name", params.Name).
		check(len([]rune(params.Name)) <= 100, "name", "must be at most 100 characters").
		check(params.AutoArchiveDuration == 0 || params.AutoArchiveDuration == 60 || params.AutoArchiveDuration == 1440 ||
			params.AutoArchiveDuration == 4320 || params.AutoArchiveDuration == 10080,
			"auto_archive_duration", "must be 60, 1440, 4320 or 10080")
}

func (c *Client) StartThreadFromMessage(ctx context.Context, channelID, messageID discord.Snowflake, params discord.StartThreadParams, reason string) (*discord.Channel, error) {
	v := validateThread(params).id("channel_id", channelID).id("message_id", messageID)
	if err := v.Err(); err != nil {
		return nil, err
	}

	params.Type = nil
	params.Message = nil

	channel := &discord.Channel{}

	if err := c.FetchJJ(ctx, http.MethodPost, EndpointChannelMessageThreads(channelID, messageID), params, withReason(reason), channel); err != nil {
		return nil, err
	}

	return channel, nil
}

func (c *Client) StartThreadWithoutMessage(ctx context.Context, channelID discord.Snowflake, params discord.StartThreadParams, reason string) (*discord.Channel, error) {
	v := validateThread(params).id("channel_id", channelID)
	if params.Type != nil {
		v.check(params.Type.IsThread(), "type", "must be a thread type")
	}

	if err := v.Err(); err != nil {
		return nil, err
	}

	params.Message = nil

	channel := &discord.Channel{}

	if err := c.FetchJJ(ctx, http.MethodPost, EndpointChannelThreads(channelID), params, withReason(reason), channel); err != nil {
		return nil, err
	}

	return channel, nil
}

// StartThreadInForumChannel creates a forum post. The starter message is required.
func (c *Client) StartThreadInForumChannel(ctx context.Context, channelID discord.Snowflake, params discord.StartThreadParams, reason string) (*discord.Channel, error) {
	if err := validateThread(params).
		id("channel_id", channelID).
		check(params.Message != nil && !params.Message.IsEmpty(), "message", "a starter message is required").
		Err(); err != nil {
		return nil, err
	}

	params.Type = nil

	channel := &discord.Channel{}

	if len(params.Message.Files) > 0 {
		if err := c.FetchMultipart(ctx, http.MethodPost, EndpointChannelThreads(channelID), params, params.Message.Files, withReason(reason), channel); err != nil {
			return nil, err
		}

		return channel, nil
	}

	if err := c.FetchJJ(ctx, http.MethodPost, EndpointChannelThreads(channelID), params, withReason(reason), channel); err != nil {
		return nil, err
	}

	return channel, nil
}

func (c *Client) JoinThread(ctx context.Context, channelID discord.Snowflake) error {
	if err := validate().id("channel_id", channelID).Err(); err != nil {
		return err
	}

	return c.FetchJJ(ctx, http.MethodPut, EndpointThreadMember(channelID, "@me"), nil, nil, nil)
}

func (c *Client) AddThreadMember(ctx context.Context, channelID, userID discord.Snowflake) error {
	if err := validate().id("channel_id", channelID).id("user_id", userID).Err(); err != nil {
		return err
	}

	return c.FetchJJ(ctx, http.MethodPut, EndpointThreadMember(channelID, userID.String()), nil, nil, nil)
}

func (c *Client) LeaveThread(ctx context.Context, channelID discord.Snowflake) error {
	if err := validate().id("channel_id", channelID).Err(); err != nil {
		return err
	}

	return c.FetchJJ(ctx, http.MethodDelete, EndpointThreadMember(channelID, "@me"), nil, nil, nil)
}

func (c *Client) RemoveThreadMember(ctx context.Context, channelID, userID discord.Snowflake) error {
	if err := validate().id("channel_id", channelID).id("user_id", userID).Err(); err != nil {
		return err
	}

	return c.FetchJJ(ctx, http.MethodDelete, EndpointThreadMember(channelID, userID.String()), nil, nil, nil)
}

func (c *Client) GetThreadMember(ctx context.Context, channelID, userID discord.Snowflake) (*discord.ThreadMember, error) {
	if err := validate().id("channel_id", channelID).id("user_id", userID).Err(); err != nil {
		return nil, err
	}

	member := &discord.ThreadMember{}

	if err := c.FetchJJ(ctx, http.MethodGet, EndpointThreadMember(channelID, userID.String()), nil, nil, member); err != nil {
		return nil, err
	}

	return member, nil
}

func (c *Client) ListThreadMembers(ctx context.Context, channelID discord.Snowflake) ([]discord.ThreadMember, error) {
	if err := validate().id("channel_id", channelID).Err(); err != nil {
		return nil, err
	}

	var members []discord.ThreadMember

	if err := c.FetchJJ(ctx, http.MethodGet, EndpointThreadMembers(channelID), nil, nil, &members); err != nil {
		return nil, err
	}

	return members, nil
}

func (c *Client) ListPublicArchivedThreads(ctx context.Context, channelID discord.Snowflake, params discord.ThreadListParams) (*discord.ThreadList, error) {
	return c.listThreads(ctx, channelID, EndpointChannelArchivedThreads(channelID, "public"), params)
}

func (c *Client) ListPrivateArchivedThreads(ctx context.Context, channelID discord.Snowflake, params discord.ThreadListParams) (*discord.ThreadList, error) {
	return c.listThreads(ctx, channelID, EndpointChannelArchivedThreads(channelID, "private"), params)
}

func (c *Client) ListJoinedPrivateArchivedThreads(ctx context.Context, channelID discord.Snowflake, params discord.ThreadListParams) (*discord.ThreadList, error) {
	return c.listThreads(ctx, channelID, EndpointChannelJoinedPrivateArchivedThreads(channelID), params)
}

func (c *Client) listThreads(ctx context.Context, channelID discord.Snowflake, endpoint string, params discord.ThreadListParams) (*discord.ThreadList, error) {
	if err := validate().id("channel_id", channelID).between("limit", params.Limit, 1, 100, true).Err(); err != nil {
		return nil, err
	}

	endpoint = query{}.str("before", params.Before).int("limit", params.Limit).encode(endpoint)

	threads := &discord.ThreadList{}

	if err := c.FetchJJ(ctx, http.MethodGet, endpoint, nil, nil, threads); err != nil {
		return nil, err
	}

	return threads, nil
}

func (c *Client) ListActiveGuildThreads(ctx context.Context, guildID discord.Snowflake) (*discord.ThreadList, error) {
	if err := validate().id("guild_id", guildID).Err(); err != nil {
		return nil, err
	}

	threads := &discord.ThreadList{}

	if err := c.FetchJJ(ctx, http.MethodGet, EndpointGuildActiveThreads(guildID), nil, nil, threads); err != nil {
		return nil, err
	}

	return threads, nil
}
