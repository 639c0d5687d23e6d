package swyft

import (
	"context"

	"github.com/WelcomerTeam/Swyft/discord"
)

// RegisterCommands replaces every global command with the built commands.
func (b *Bot) RegisterCommands(ctx context.Context, builders ...*discord.SlashCommandBuilder) ([]discord.ApplicationCommand, error) {
	commands := make([]discord.ApplicationCommand, 0, len(builders))

	for _, builder := range builders {
		command, err := builder.Build()
		if err != nil {
			return nil, err
		}

		commands = append(commands, command)
	}

	return b.REST.BulkOverwriteGlobalApplicationCommands(ctx, commands)
}

// RegisterGlobalCommand creates or updates a single global command.
func (b *Bot) RegisterGlobalCommand(ctx context.Context, builder *discord.SlashCommandBuilder) (*discord.ApplicationCommand, error) {
	command, err := builder.Build()
	if err != nil {
		return nil, err
	}

	return b.REST.CreateGlobalApplicationCommand(ctx, command)
}

// RegisterGuildCommand creates or updates a command that only exists in one guild.
func (b *Bot) RegisterGuildCommand(ctx context.Context, guildID discord.Snowflake, builder *discord.SlashCommandBuilder) (*discord.ApplicationCommand, error) {
	command, err := builder.Build()
	if err != nil {
		return nil, err
	}

	return b.REST.CreateGuildApplicationCommand(ctx, guildID, command)
}

// RegisterUserCommand registers a global user context menu entry.
func (b *Bot) RegisterUserCommand(ctx context.Context, name string) (*discord.ApplicationCommand, error) {
	return b.RegisterGlobalCommand(ctx, discord.NewContextMenuBuilder(discord.ApplicationCommandTypeUser).SetName(name))
}

// RegisterMessageCommand registers a global message context menu entry.
func (b *Bot) RegisterMessageCommand(ctx context.Context, name string) (*discord.ApplicationCommand, error) {
	return b.RegisterGlobalCommand(ctx, discord.NewContextMenuBuilder(discord.ApplicationCommandTypeMessage).SetName(name))
}
