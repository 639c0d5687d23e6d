package rest

import (
	"context"
	"net/http"
	"strconv"

	"github.com/WelcomerTeam/Swyft/discord"
)

// GetGuild returns a guild. withCounts includes the approximate member and presence counts.
func (c *Client) GetGuild(ctx context.Context, guildID discord.Snowflake, withCounts bool) (*discord.Guild, error) {
	if err := validate().id("guild_id", guildID).Err(); err != nil {
		return nil, err
	}

	endpoint := EndpointGuild(guildID)
	if withCounts {
		endpoint = query{}.str("with_counts", "true").encode(endpoint)
	}

	guild := &discord.Guild{}

	if err := c.FetchJJ(ctx, http.MethodGet, endpoint, nil, nil, guild); err != nil {
		return nil, err
	}

	return guild, nil
}

func (c *Client) GetGuildPreview(ctx context.Context, guildID discord.Snowflake) (*discord.GuildPreview, error) {
	if err := validate().id("guild_id", guildID).Err(); err != nil {
		return nil, err
	}

	preview := &discord.GuildPreview{}

	if err := c.FetchJJ(ctx, http.MethodGet, EndpointGuildPreview(guildID), nil, nil, preview); err != nil {
		return nil, err
	}

	return preview, nil
}

func (c *Client) ModifyGuild(ctx context.Context, guildID discord.Snowflake, params discord.GuildParams, reason string) (*discord.Guild, error) {
	v := validate().id("guild_id", guildID)
	if params.Name != nil {
		v.between("name", len([]rune(*params.Name)), 2, 100, false)
	}

	if err := v.Err(); err != nil {
		return nil, err
	}

	guild := &discord.Guild{}

	if err := c.FetchJJ(ctx, http.MethodPatch, EndpointGuild(guildID), params, withReason(reason), guild); err != nil {
		return nil, err
	}

	return guild, nil
}

func (c *Client) GetGuildChannels(ctx context.Context, guildID discord.Snowflake) ([]discord.Channel, error) {
	if err := validate().id("guild_id", guildID).Err(); err != nil {
		return nil, err
	}

	var channels []discord.Channel

	if err := c.FetchJJ(ctx, http.MethodGet, EndpointGuildChannels(guildID), nil, nil, &channels); err != nil {
		return nil, err
	}

	return channels, nil
}

func (c *Client) CreateGuildChannel(ctx context.Context, guildID discord.Snowflake, params discord.ChannelParams, reason string) (*discord.Channel, error) {
	if err := validate().
		id("guild_id", guildID).
		str("name", params.Name).
		check(len([]rune(params.Name)) <= 100, "name", "must be at most 100 characters").
		Err(); err != nil {
		return nil, err
	}

	channel := &discord.Channel{}

	if err := c.FetchJJ(ctx, http.MethodPost, EndpointGuildChannels(guildID), params, withReason(reason), channel); err != nil {
		return nil, err
	}

	return channel, nil
}

func (c *Client) ModifyGuildChannelPositions(ctx context.Context, guildID discord.Snowflake, positions []discord.ChannelPositionParams) error {
	if err := validate().
		id("guild_id", guildID).
		check(len(positions) > 0, "positions", "at least one position is required").
		Err(); err != nil {
		return err
	}

	return c.FetchJJ(ctx, http.MethodPatch, EndpointGuildChannels(guildID), positions, nil, nil)
}

func (c *Client) GetGuildBans(ctx context.Context, guildID discord.Snowflake) ([]discord.GuildBan, error) {
	if err := validate().id("guild_id", guildID).Err(); err != nil {
		return nil, err
	}

	var bans []discord.GuildBan

	if err := c.FetchJJ(ctx, http.MethodGet, EndpointGuildBans(guildID), nil, nil, &bans); err != nil {
		return nil, err
	}

	return bans, nil
}

// CreateGuildBan bans a user. Up to 7 days of their messages can be deleted.
func (c *Client) CreateGuildBan(ctx context.Context, guildID, userID discord.Snowflake, params discord.CreateGuildBanParams, reason string) error {
	if err := validate().
		id("guild_id", guildID).
		id("user_id", userID).
		between("delete_message_seconds", int(params.DeleteMessageSeconds), 0, 604800, false).
		Err(); err != nil {
		return err
	}

	return c.FetchJJ(ctx, http.MethodPut, EndpointGuildBan(guildID, userID), params, withReason(reason), nil)
}

func (c *Client) RemoveGuildBan(ctx context.Context, guildID, userID discord.Snowflake, reason string) error {
	if err := validate().id("guild_id", guildID).id("user_id", userID).Err(); err != nil {
		return err
	}

	return c.FetchJJ(ctx, http.MethodDelete, EndpointGuildBan(guildID, userID), nil, withReason(reason), nil)
}

func (c *Client) GetGuildInvites(ctx context.Context, guildID discord.Snowflake) ([]discord.Invite, error) {
	if err := validate().id("guild_id", guildID).Err(); err != nil {
		return nil, err
	}

	var invites []discord.Invite

	if err := c.FetchJJ(ctx, http.MethodGet, EndpointGuildInvites(guildID), nil, nil, &invites); err != nil {
		return nil, err
	}

	return invites, nil
}

func (c *Client) GetGuildIntegrations(ctx context.Context, guildID discord.Snowflake) ([]discord.Integration, error) {
	if err := validate().id("guild_id", guildID).Err(); err != nil {
		return nil, err
	}

	var integrations []discord.Integration

	if err := c.FetchJJ(ctx, http.MethodGet, EndpointGuildIntegrations(guildID), nil, nil, &integrations); err != nil {
		return nil, err
	}

	return integrations, nil
}

func (c *Client) GetGuildWebhooks(ctx context.Context, guildID discord.Snowflake) ([]discord.Webhook, error) {
	if err := validate().id("guild_id", guildID).Err(); err != nil {
		return nil, err
	}

	var webhooks []discord.Webhook

	if err := c.FetchJJ(ctx, http.MethodGet, EndpointGuildWebhooks(guildID), nil, nil, &webhooks); err != nil {
		return nil, err
	}

	return webhooks, nil
}

func (c *Client) GetGuildAuditLog(ctx context.Context, guildID discord.Snowflake, params discord.AuditLogParams) (*discord.AuditLog, error) {
	if err := validate().id("guild_id", guildID).between("limit", params.Limit, 1, 100, true).Err(); err != nil {
		return nil, err
	}

	endpoint := query{}.
		snowflake("user_id", params.UserID).
		snowflake("before", params.Before).
		int("action_type", params.ActionType).
		int("limit", params.Limit).
		encode(EndpointGuildAuditLogs(guildID))

	auditLog := &discord.AuditLog{}

	if err := c.FetchJJ(ctx, http.MethodGet, endpoint, nil, nil, auditLog); err != nil {
		return nil, err
	}

	return auditLog, nil
}

func (c *Client) GetGuildWidgetSettings(ctx context.Context, guildID discord.Snowflake) (*discord.GuildWidgetSettings, error) {
	if err := validate().id("guild_id", guildID).Err(); err != nil {
		return nil, err
	}

	settings := &discord.GuildWidgetSettings{}

	if err := c.FetchJJ(ctx, http.MethodGet, EndpointGuildWidgetSettings(guildID), nil, nil, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

func (c *Client) ModifyGuildWidget(ctx context.Context, guildID discord.Snowflake, settings discord.GuildWidgetSettings, reason string) (*discord.GuildWidgetSettings, error) {
	if err := validate().id("guild_id", guildID).Err(); err != nil {
		return nil, err
	}

	updated := &discord.GuildWidgetSettings{}

	if err := c.FetchJJ(ctx, http.MethodPatch, EndpointGuildWidgetSettings(guildID), settings, withReason(reason), updated); err != nil {
		return nil, err
	}

	return updated, nil
}

func (c *Client) GetGuildWidget(ctx context.Context, guildID discord.Snowflake) (*discord.GuildWidget, error) {
	if err := validate().id("guild_id", guildID).Err(); err != nil {
		return nil, err
	}

	widget := &discord.GuildWidget{}

	if err := c.FetchJJ(ctx, http.MethodGet, EndpointGuildWidget(guildID), nil, nil, widget); err != nil {
		return nil, err
	}

	return widget, nil
}

// GetGuildWidgetImage returns the PNG widget image. Style is one of shield, banner1 to banner4
// and may be empty.
func (c *Client) GetGuildWidgetImage(ctx context.Context, guildID discord.Snowflake, style string) ([]byte, error) {
	if err := validate().
		id("guild_id", guildID).
		check(style == "" || style == "shield" || style == "banner1" || style == "banner2" || style == "banner3" || style == "banner4",
			"style", "must be shield or banner1-4").
		Err(); err != nil {
		return nil, err
	}

	return c.Fetch(ctx, http.MethodGet, query{}.str("style", style).encode(EndpointGuildWidgetImage(guildID)), "", nil, nil)
}

func (c *Client) GetGuildVanityURL(ctx context.Context, guildID discord.Snowflake) (*discord.GuildVanityURL, error) {
	if err := validate().id("guild_id", guildID).Err(); err != nil {
		return nil, err
	}

	vanity := &discord.GuildVanityURL{}

	if err := c.FetchJJ(ctx, http.MethodGet, EndpointGuildVanityURL(guildID), nil, nil, vanity); err != nil {
		return nil, err
	}

	return vanity, nil
}

func (c *Client) GetGuildWelcomeScreen(ctx context.Context, guildID discord.Snowflake) (*discord.WelcomeScreen, error) {
	if err := validate().id("guild_id", guildID).Err(); err != nil {
		return nil, err
	}

	screen := &discord.WelcomeScreen{}

	if err := c.FetchJJ(ctx, http.MethodGet, EndpointGuildWelcomeScreen(guildID), nil, nil, screen); err != nil {
		return nil, err
	}

	return screen, nil
}

func (c *Client) ModifyGuildWelcomeScreen(ctx context.Context, guildID discord.Snowflake, params discord.WelcomeScreenParams, reason string) (*discord.WelcomeScreen, error) {
	if err := validate().id("guild_id", guildID).Err(); err != nil {
		return nil, err
	}

	screen := &discord.WelcomeScreen{}

	if err := c.FetchJJ(ctx, http.MethodPatch, EndpointGuildWelcomeScreen(guildID), params, withReason(reason), screen); err != nil {
		return nil, err
	}

	return screen, nil
}

// BeginGuildPrune kicks members inactive for params.Days (1-30, default 7).
func (c *Client) BeginGuildPrune(ctx context.Context, guildID discord.Snowflake, params discord.GuildPruneParams, reason string) (*discord.GuildPruneResult, error) {
	v := validate().id("guild_id", guildID)
	if params.Days != nil {
		v.between("days", int(*params.Days), 1, 30, false)
	}

	if err := v.Err(); err != nil {
		return nil, err
	}

	result := &discord.GuildPruneResult{}

	if err := c.FetchJJ(ctx, http.MethodPost, EndpointGuildPrune(guildID), params, withReason(reason), result); err != nil {
		return nil, err
	}

	return result, nil
}

func (c *Client) ModifyGuildMFALevel(ctx context.Context, guildID discord.Snowflake, level discord.MFALevel, reason string) (discord.MFALevel, error) {
	if err := validate().
		id("guild_id", guildID).
		check(level == discord.MFALevelNone || level == discord.MFALevelElevated, "level", "must be 0 or 1").
		Err(); err != nil {
		return 0, err
	}

	payload := struct {
		Level discord.MFALevel `json:"level"`
	}{Level: level}

	var response struct {
		Level discord.MFALevel `json:"level"`
	}

	if err := c.FetchJJ(ctx, http.MethodPost, EndpointGuildMFA(guildID), payload, withReason(reason), &response); err != nil {
		return 0, err
	}

	return response.Level, nil
}

// ModifyUserVoiceState updates another user's voice state in a stage channel.
func (c *Client) ModifyUserVoiceState(ctx context.Context, guildID, userID discord.Snowflake, params discord.VoiceStateParams) error {
	if err := validate().id("guild_id", guildID).id("user_id", userID).id("channel_id", params.ChannelID).Err(); err != nil {
		return err
	}

	return c.FetchJJ(ctx, http.MethodPatch, EndpointGuildVoiceState(guildID, userID.String()), params, nil, nil)
}

func (c *Client) ModifyCurrentUserVoiceState(ctx context.Context, guildID discord.Snowflake, params discord.VoiceStateParams) error {
	if err := validate().id("guild_id", guildID).id("channel_id", params.ChannelID).Err(); err != nil {
		return err
	}

	return c.FetchJJ(ctx, http.MethodPatch, EndpointGuildVoiceState(guildID, "@me"), params, nil, nil)
}

func limitQuery(limit int) query {
	if limit == 0 {
		return query{}
	}

	return query{"limit": {strconv.Itoa(limit)}}
}
