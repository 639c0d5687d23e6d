package swyft

import (
	"context"

	"github.com/WelcomerTeam/Swyft/discord"
)

// MentionedUsers fetches every user mentioned in the message, in mention order.
func (b *Bot) MentionedUsers(ctx context.Context, message *discord.Message) ([]*discord.User, error) {
	users := make([]*discord.User, 0, len(message.Mentions))

	for _, mention := range message.Mentions {
		user, err := b.REST.GetUser(ctx, mention.ID)
		if err != nil {
			return nil, err
		}

		users = append(users, user)
	}

	return users, nil
}

// FirstMentionedUser returns nil when nobody was mentioned.
func (b *Bot) FirstMentionedUser(ctx context.Context, message *discord.Message) (*discord.User, error) {
	if len(message.Mentions) == 0 {
		return nil, nil
	}

	return b.REST.GetUser(ctx, message.Mentions[0].ID)
}

// LastMentionedUser returns nil when nobody was mentioned.
func (b *Bot) LastMentionedUser(ctx context.Context, message *discord.Message) (*discord.User, error) {
	if len(message.Mentions) == 0 {
		return nil, nil
	}

	return b.REST.GetUser(ctx, message.Mentions[len(message.Mentions)-1].ID)
}

// MentionedMembers fetches the guild member of every mentioned user. The guild is
// the message's guild, or the current guild when the message does not carry one.
func (b *Bot) MentionedMembers(ctx context.Context, message *discord.Message) ([]*discord.GuildMember, error) {
	guildID, err := b.messageGuild(message)
	if err != nil {
		return nil, err
	}

	members := make([]*discord.GuildMember, 0, len(message.Mentions))

	for _, mention := range message.Mentions {
		member, err := b.REST.GetGuildMember(ctx, guildID, mention.ID)
		if err != nil {
			return nil, err
		}

		members = append(members, member)
	}

	return members, nil
}

// FirstMentionedMember returns nil when nobody was mentioned.
func (b *Bot) FirstMentionedMember(ctx context.Context, message *discord.Message) (*discord.GuildMember, error) {
	if len(message.Mentions) == 0 {
		return nil, nil
	}

	guildID, err := b.messageGuild(message)
	if err != nil {
		return nil, err
	}

	return b.REST.GetGuildMember(ctx, guildID, message.Mentions[0].ID)
}

// LastMentionedMember returns nil when nobody was mentioned.
func (b *Bot) LastMentionedMember(ctx context.Context, message *discord.Message) (*discord.GuildMember, error) {
	if len(message.Mentions) == 0 {
		return nil, nil
	}

	guildID, err := b.messageGuild(message)
	if err != nil {
		return nil, err
	}

	return b.REST.GetGuildMember(ctx, guildID, message.Mentions[len(message.Mentions)-1].ID)
}

// MentionedRoles returns the mentioned roles in mention order. Roles that no longer
// exist are skipped.
func (b *Bot) MentionedRoles(ctx context.Context, message *discord.Message) ([]discord.Role, error) {
	if len(message.MentionRoles) == 0 {
		return []discord.Role{}, nil
	}

	guildID, err := b.messageGuild(message)
	if err != nil {
		return nil, err
	}

	guildRoles, err := b.REST.GetGuildRoles(ctx, guildID)
	if err != nil {
		return nil, err
	}

	byID := make(map[discord.Snowflake]discord.Role, len(guildRoles))
	for _, role := range guildRoles {
		byID[role.ID] = role
	}

	roles := make([]discord.Role, 0, len(message.MentionRoles))

	for _, roleID := range message.MentionRoles {
		if role, ok := byID[roleID]; ok {
			roles = append(roles, role)
		}
	}

	return roles, nil
}

// MentionedChannels fetches every channel mentioned as <#id> in the content.
func (b *Bot) MentionedChannels(ctx context.Context, message *discord.Message) ([]*discord.Channel, error) {
	channelIDs := message.MentionedChannelIDs()
	channels := make([]*discord.Channel, 0, len(channelIDs))

	for _, channelID := range channelIDs {
		channel, err := b.REST.GetChannel(ctx, channelID)
		if err != nil {
			return nil, err
		}

		channels = append(channels, channel)
	}

	return channels, nil
}

// FirstMentionedChannel returns nil when no channel was mentioned.
func (b *Bot) FirstMentionedChannel(ctx context.Context, message *discord.Message) (*discord.Channel, error) {
	channelIDs := message.MentionedChannelIDs()
	if len(channelIDs) == 0 {
		return nil, nil
	}

	return b.REST.GetChannel(ctx, channelIDs[0])
}

// LastMentionedChannel returns nil when no channel was mentioned.
func (b *Bot) LastMentionedChannel(ctx context.Context, message *discord.Message) (*discord.Channel, error) {
	channelIDs := message.MentionedChannelIDs()
	if len(channelIDs) == 0 {
		return nil, nil
	}

	return b.REST.GetChannel(ctx, channelIDs[len(channelIDs)-1])
}

func (b *Bot) messageGuild(message *discord.Message) (discord.Snowflake, error) {
	if message.GuildID != nil && !message.GuildID.IsNil() {
		return *message.GuildID, nil
	}

	return b.currentGuild()
}
