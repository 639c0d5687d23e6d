package rest

import (
	"context"
	"net/http"

	"github.com/WelcomerTeam/Swyft/discord"
)

func validateCommand(command discord.ApplicationCommand) error {
	return validate().
		str("name", command.Name).
		check(len([]rune(command.Name)) <= 32, "name", "must be at most 32 characters").
		check(len([]rune(command.Description)) <= 100, "description", "must be at most 100 characters").
		Err()
}

func (c *Client) GetGlobalApplicationCommands(ctx context.Context) ([]discord.ApplicationCommand, error) {
	applicationID, err := c.ApplicationID(ctx)
	if err != nil {
		return nil, err
	}

	var commands []discord.ApplicationCommand

	if err := c.FetchJJ(ctx, http.MethodGet, EndpointGlobalApplicationCommands(applicationID), nil, nil, &commands); err != nil {
		return nil, err
	}

	return commands, nil
}

// CreateGlobalApplicationCommand creates a command, or overwrites the command with the same name.
func (c *Client) CreateGlobalApplicationCommand(ctx context.Context, command discord.ApplicationCommand) (*discord.ApplicationCommand, error) {
	if err := validateCommand(command); err != nil {
		return nil, err
	}

	applicationID, err := c.ApplicationID(ctx)
	if err != nil {
		return nil, err
	}

	created := &discord.ApplicationCommand{}

	if err := c.FetchJJ(ctx, http.MethodPost, EndpointGlobalApplicationCommands(applicationID), command, nil, created); err != nil {
		return nil, err
	}

	return created, nil
}

func (c *Client) CreateGuildApplicationCommand(ctx context.Context, guildID discord.Snowflake, command discord.ApplicationCommand) (*discord.ApplicationCommand, error) {
	if err := validate().id("guild_id", guildID).Err(); err != nil {
		return nil, err
	}

	if err := validateCommand(command); err != nil {
		return nil, err
	}

	applicationID, err := c.ApplicationID(ctx)
	if err != nil {
		return nil, err
	}

	created := &discord.ApplicationCommand{}

	if err := c.FetchJJ(ctx, http.MethodPost, EndpointGuildApplicationCommands(applicationID, guildID), command, nil, created); err != nil {
		return nil, err
	}

	return created, nil
}

// BulkOverwriteGlobalApplicationCommands replaces every global command.
func (c *Client) BulkOverwriteGlobalApplicationCommands(ctx context.Context, commands []discord.ApplicationCommand) ([]discord.ApplicationCommand, error) {
	for _, command := range commands {
		if err := validateCommand(command); err != nil {
			return nil, err
		}
	}

	applicationID, err := c.ApplicationID(ctx)
	if err != nil {
		return nil, err
	}

	if commands == nil {
		commands = []discord.ApplicationCommand{}
	}

	var overwritten []discord.ApplicationCommand

	if err := c.FetchJJ(ctx, http.MethodPut, EndpointGlobalApplicationCommands(applicationID), commands, nil, &overwritten); err != nil {
		return nil, err
	}

	return overwritten, nil
}

func (c *Client) DeleteGlobalApplicationCommand(ctx context.Context, commandID discord.Snowflake) error {
	if err := validate().id("command_id", commandID).Err(); err != nil {
		return err
	}

	applicationID, err := c.ApplicationID(ctx)
	if err != nil {
		return err
	}

	return c.FetchJJ(ctx, http.MethodDelete, EndpointGlobalApplicationCommand(applicationID, commandID), nil, nil, nil)
}
