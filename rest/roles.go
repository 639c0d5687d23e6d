package rest

import (
	"context"
	"net/http"

	"github.com/WelcomerTeam/Swyft/discord"
)

func (c *Client) GetGuildRoles(ctx context.Context, guildID discord.Snowflake) ([]discord.Role, error) {
	if err := validate().id("guild_id", guildID).Err(); err != nil {
		return nil, err
	}

	var roles []discord.Role

	if err := c.FetchJJ(ctx, http.MethodGet, EndpointGuildRoles(guildID), nil, nil, &roles); err != nil {
		return nil, err
	}

	return roles, nil
}

func (c *Client) GetGuildRole(ctx context.Context, guildID, roleID discord.Snowflake) (*discord.Role, error) {
	if err := validate().id("guild_id", guildID).id("role_id", roleID).Err(); err != nil {
		return nil, err
	}

	role := &discord.Role{}

	if err := c.FetchJJ(ctx, http.MethodGet, EndpointGuildRole(guildID, roleID), nil, nil, role); err != nil {
		return nil, err
	}

	return role, nil
}

func (c *Client) CreateGuildRole(ctx context.Context, guildID discord.Snowflake, params discord.RoleParams, reason string) (*discord.Role, error) {
	v := validate().id("guild_id", guildID)
	if params.Name != nil {
		v.check(len([]rune(*params.Name)) <= 100, "name", "must be at most 100 characters")
	}

	if err := v.Err(); err != nil {
		return nil, err
	}

	role := &discord.Role{}

	if err := c.FetchJJ(ctx, http.MethodPost, EndpointGuildRoles(guildID), params, withReason(reason), role); err != nil {
		return nil, err
	}

	return role, nil
}

func (c *Client) ModifyGuildRole(ctx context.Context, guildID, roleID discord.Snowflake, params discord.RoleParams, reason string) (*discord.Role, error) {
	v := validate().id("guild_id", guildID).id("role_id", roleID)
	if params.Name != nil {
		v.str("name", *params.Name).check(len([]rune(*params.Name)) <= 100, "name", "must be at most 100 characters")
	}

	if err := v.Err(); err != nil {
		return nil, err
	}

	role := &discord.Role{}

	if err := c.FetchJJ(ctx, http.MethodPatch, EndpointGuildRole(guildID, roleID), params, withReason(reason), role); err != nil {
		return nil, err
	}

	return role, nil
}

func (c *Client) ModifyGuildRolePositions(ctx context.Context, guildID discord.Snowflake, positions []discord.RolePosition, reason string) ([]discord.Role, error) {
	if err := validate().
		id("guild_id", guildID).
		check(len(positions) > 0, "positions", "at least one position is required").
		Err(); err != nil {
		return nil, err
	}

	var roles []discord.Role

	if err := c.FetchJJ(ctx, http.MethodPatch, EndpointGuildRoles(guildID), positions, withReason(reason), &roles); err != nil {
		return nil, err
	}

	return roles, nil
}

func (c *Client) DeleteGuildRole(ctx context.Context, guildID, roleID discord.Snowflake, reason string) error {
	if err := validate().id("guild_id", guildID).id("role_id", roleID).Err(); err != nil {
		return err
	}

	return c.FetchJJ(ctx, http.MethodDelete, EndpointGuildRole(guildID, roleID), nil, withReason(reason), nil)
}
