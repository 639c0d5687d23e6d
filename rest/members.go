package rest

import (
	"context"
	"net/http"

	"github.com/WelcomerTeam/Swyft/discord"
)

func (c *Client) GetGuildMember(ctx context.Context, guildID, userID discord.Snowflake) (*discord.GuildMember, error) {
	if err := validate().id("guild_id", guildID).id("user_id", userID).Err(); err != nil {
		return nil, err
	}

	member := &discord.GuildMember{}

	if err := c.FetchJJ(ctx, http.MethodGet, EndpointGuildMember(guildID, userID), nil, nil, member); err != nil {
		return nil, err
	}

	return member, nil
}

// ListGuildMembers pages through members ordered by user id. Limit is 1-1000.
func (c *Client) ListGuildMembers(ctx context.Context, guildID discord.Snowflake, after discord.Snowflake, limit int) ([]discord.GuildMember, error) {
	if err := validate().id("guild_id", guildID).between("limit", limit, 1, 1000, true).Err(); err != nil {
		return nil, err
	}

	endpoint := limitQuery(limit).snowflake("after", after).encode(EndpointGuildMembers(guildID))

	var members []discord.GuildMember

	if err := c.FetchJJ(ctx, http.MethodGet, endpoint, nil, nil, &members); err != nil {
		return nil, err
	}

	return members, nil
}

// SearchGuildMembers returns members whose username or nickname starts with search.
func (c *Client) SearchGuildMembers(ctx context.Context, guildID discord.Snowflake, search string, limit int) ([]discord.GuildMember, error) {
	if err := validate().id("guild_id", guildID).str("query", search).between("limit", limit, 1, 1000, true).Err(); err != nil {
		return nil, err
	}

	endpoint := limitQuery(limit).str("query", search).encode(EndpointGuildMembersSearch(guildID))

	var members []discord.GuildMember

	if err := c.FetchJJ(ctx, http.MethodGet, endpoint, nil, nil, &members); err != nil {
		return nil, err
	}

	return members, nil
}

func (c *Client) ModifyGuildMember(ctx context.Context, guildID, userID discord.Snowflake, params discord.GuildMemberParams, reason string) (*discord.GuildMember, error) {
	if err := validate().id("guild_id", guildID).id("user_id", userID).Err(); err != nil {
		return nil, err
	}

	member := &discord.GuildMember{}

	if err := c.FetchJJ(ctx, http.MethodPatch, EndpointGuildMember(guildID, userID), params, withReason(reason), member); err != nil {
		return nil, err
	}

	return member, nil
}

func (c *Client) ModifyCurrentMember(ctx context.Context, guildID discord.Snowflake, params discord.ModifyCurrentMemberParams, reason string) (*discord.GuildMember, error) {
	if err := validate().id("guild_id", guildID).Err(); err != nil {
		return nil, err
	}

	member := &discord.GuildMember{}

	if err := c.FetchJJ(ctx, http.MethodPatch, EndpointGuildCurrentMember(guildID), params, withReason(reason), member); err != nil {
		return nil, err
	}

	return member, nil
}

// ModifyCurrentUserNick uses the deprecated nick route. Prefer ModifyCurrentMember.
func (c *Client) ModifyCurrentUserNick(ctx context.Context, guildID discord.Snowflake, nick string, reason string) error {
	if err := validate().id("guild_id", guildID).check(len([]rune(nick)) <= 32, "nick", "must be at most 32 characters").Err(); err != nil {
		return err
	}

	payload := struct {
		Nick string `json:"nick"`
	}{Nick: nick}

	return c.FetchJJ(ctx, http.MethodPatch, EndpointGuildCurrentMemberNick(guildID), payload, withReason(reason), nil)
}

// RemoveGuildMember kicks a member.
func (c *Client) RemoveGuildMember(ctx context.Context, guildID, userID discord.Snowflake, reason string) error {
	if err := validate().id("guild_id", guildID).id("user_id", userID).Err(); err != nil {
		return err
	}

	return c.FetchJJ(ctx, http.MethodDelete, EndpointGuildMember(guildID, userID), nil, withReason(reason), nil)
}

func (c *Client) AddGuildMemberRole(ctx context.Context, guildID, userID, roleID discord.Snowflake, reason string) error {
	if err := validate().id("guild_id", guildID).id("user_id", userID).id("role_id", roleID).Err(); err != nil {
		return err
	}

	return c.FetchJJ(ctx, http.MethodPut, EndpointGuildMemberRole(guildID, userID, roleID), nil, withReason(reason), nil)
}

func (c *Client) RemoveGuildMemberRole(ctx context.Context, guildID, userID, roleID discord.Snowflake, reason string) error {
	if err := validate().id("guild_id", guildID).id("user_id", userID).id("role_id", roleID).Err(); err != nil {
		return err
	}

	return c.FetchJJ(ctx, http.MethodDelete, EndpointGuildMemberRole(guildID, userID, roleID), nil, withReason(reason), nil)
}
