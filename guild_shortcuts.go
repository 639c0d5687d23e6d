package swyft

import (
	"context"

	"github.com/WelcomerTeam/Swyft/discord"
)

// The methods in this file act on the guild of the last dispatch the session received
// that carried a guild. They are a convenience for simple command bots; the cached
// guild is not authoritative.

func (b *Bot) currentGuild() (discord.Snowflake, error) {
	guildID := b.Session.CurrentGuildID()
	if guildID.IsNil() {
		return 0, discord.NewArgumentError("guildID", "no current guild has been seen yet")
	}

	return guildID, nil
}

func (b *Bot) CurrentGuildMember(ctx context.Context, userID discord.Snowflake) (*discord.GuildMember, error) {
	guildID, err := b.currentGuild()
	if err != nil {
		return nil, err
	}

	return b.REST.GetGuildMember(ctx, guildID, userID)
}

// KickMember removes the user from the current guild.
func (b *Bot) KickMember(ctx context.Context, userID discord.Snowflake, reason string) error {
	guildID, err := b.currentGuild()
	if err != nil {
		return err
	}

	return b.REST.RemoveGuildMember(ctx, guildID, userID, reason)
}

func (b *Bot) BanMember(ctx context.Context, userID discord.Snowflake, deleteMessageSeconds int32, reason string) error {
	guildID, err := b.currentGuild()
	if err != nil {
		return err
	}

	return b.REST.CreateGuildBan(ctx, guildID, userID, discord.CreateGuildBanParams{DeleteMessageSeconds: deleteMessageSeconds}, reason)
}

func (b *Bot) UnbanMember(ctx context.Context, userID discord.Snowflake, reason string) error {
	guildID, err := b.currentGuild()
	if err != nil {
		return err
	}

	return b.REST.RemoveGuildBan(ctx, guildID, userID, reason)
}

func (b *Bot) AddRoleToMember(ctx context.Context, userID, roleID discord.Snowflake, reason string) error {
	guildID, err := b.currentGuild()
	if err != nil {
		return err
	}

	return b.REST.AddGuildMemberRole(ctx, guildID, userID, roleID, reason)
}

func (b *Bot) RemoveRoleFromMember(ctx context.Context, userID, roleID discord.Snowflake, reason string) error {
	guildID, err := b.currentGuild()
	if err != nil {
		return err
	}

	return b.REST.RemoveGuildMemberRole(ctx, guildID, userID, roleID, reason)
}

func (b *Bot) CreateRole(ctx context.Context, params discord.RoleParams, reason string) (*discord.Role, error) {
	guildID, err := b.currentGuild()
	if err != nil {
		return nil, err
	}

	return b.REST.CreateGuildRole(ctx, guildID, params, reason)
}

func (b *Bot) EditRole(ctx context.Context, roleID discord.Snowflake, params discord.RoleParams, reason string) (*discord.Role, error) {
	guildID, err := b.currentGuild()
	if err != nil {
		return nil, err
	}

	return b.REST.ModifyGuildRole(ctx, guildID, roleID, params, reason)
}

func (b *Bot) DeleteRole(ctx context.Context, roleID discord.Snowflake, reason string) error {
	guildID, err := b.currentGuild()
	if err != nil {
		return err
	}

	return b.REST.DeleteGuildRole(ctx, guildID, roleID, reason)
}

func (b *Bot) CreateChannel(ctx context.Context, params discord.ChannelParams, reason string) (*discord.Channel, error) {
	guildID, err := b.currentGuild()
	if err != nil {
		return nil, err
	}

	return b.REST.CreateGuildChannel(ctx, guildID, params, reason)
}

// SetChannelPosition moves a channel of the current guild.
func (b *Bot) SetChannelPosition(ctx context.Context, channelID discord.Snowflake, position int32) error {
	guildID, err := b.currentGuild()
	if err != nil {
		return err
	}

	return b.REST.ModifyGuildChannelPositions(ctx, guildID, []discord.ChannelPositionParams{
		{ID: channelID, Position: position},
	})
}
