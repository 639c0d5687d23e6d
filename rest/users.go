package rest

import (
	"context"
	"net/http"

	"github.com/WelcomerTeam/Swyft/discord"
)

func (c *Client) GetCurrentUser(ctx context.Context) (*discord.User, error) {
	user := &discord.User{}

	if err := c.FetchJJ(ctx, http.MethodGet, EndpointCurrentUser, nil, nil, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (c *Client) GetUser(ctx context.Context, userID discord.Snowflake) (*discord.User, error) {
	if err := validate().id("user_id", userID).Err(); err != nil {
		return nil, err
	}

	user := &discord.User{}

	if err := c.FetchJJ(ctx, http.MethodGet, EndpointUser(userID), nil, nil, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (c *Client) ModifyCurrentUser(ctx context.Context, params discord.ModifyCurrentUserParams) (*discord.User, error) {
	v := validate().check(params.Username != nil || params.Avatar != nil, "params", "username or avatar is required")
	if params.Username != nil {
		v.between("username", len([]rune(*params.Username)), 2, 32, false)
	}

	if err := v.Err(); err != nil {
		return nil, err
	}

	user := &discord.User{}

	if err := c.FetchJJ(ctx, http.MethodPatch, EndpointCurrentUser, params, nil, user); err != nil {
		return nil, err
	}

	return user, nil
}
