package rest

import (
	"github.com/WelcomerTeam/Swyft/discord"
)

// endpoints.go contains the paths of every route, relative to the API version.

const EndpointGateway = "/gateway"

func EndpointChannel(channelID discord.Snowflake) string {
	return "/channels/" + channelID.String()
}

func EndpointChannelMessages(channelID discord.Snowflake) string {
	return EndpointChannel(channelID) + "/messages"
}

func EndpointChannelMessage(channelID, messageID discord.Snowflake) string {
	return EndpointChannelMessages(channelID) + "/" + messageID.String()
}

func EndpointChannelMessagesBulkDelete(channelID discord.Snowflake) string {
	return EndpointChannelMessages(channelID) + "/bulk-delete"
}

func EndpointChannelMessageCrosspost(channelID, messageID discord.Snowflake) string {
	return EndpointChannelMessage(channelID, messageID) + "/crosspost"
}

func EndpointChannelMessageReactions(channelID, messageID discord.Snowflake) string {
	return EndpointChannelMessage(channelID, messageID) + "/reactions"
}

// EndpointChannelMessageReaction expects an already escaped emoji, see discord.Emoji.APIName.
func EndpointChannelMessageReaction(channelID, messageID discord.Snowflake, emoji string) string {
	return EndpointChannelMessageReactions(channelID, messageID) + "/" + emoji
}

func EndpointChannelMessageReactionUser(channelID, messageID discord.Snowflake, emoji, user string) string {
	return EndpointChannelMessageReaction(channelID, messageID, emoji) + "/" + user
}

func EndpointChannelPins(channelID discord.Snowflake) string {
	return EndpointChannel(channelID) + "/pins"
}

func EndpointChannelPin(channelID, messageID discord.Snowflake) string {
	return EndpointChannelPins(channelID) + "/" + messageID.String()
}

func EndpointChannelTyping(channelID discord.Snowflake) string {
	return EndpointChannel(channelID) + "/typing"
}

func EndpointChannelPermission(channelID, overwriteID discord.Snowflake) string {
	return EndpointChannel(channelID) + "/permissions/" + overwriteID.String()
}

func EndpointChannelInvites(channelID discord.Snowflake) string {
	return EndpointChannel(channelID) + "/invites"
}

func EndpointChannelWebhooks(channelID discord.Snowflake) string {
	return EndpointChannel(channelID) + "/webhooks"
}

func EndpointChannelFollowers(channelID discord.Snowflake) string {
	return EndpointChannel(channelID) + "/followers"
}

func EndpointChannelMessageThreads(channelID, messageID discord.Snowflake) string {
	return EndpointChannelMessage(channelID, messageID) + "/threads"
}

func EndpointChannelThreads(channelID discord.Snowflake) string {
	return EndpointChannel(channelID) + "/threads"
}

func EndpointThreadMembers(channelID discord.Snowflake) string {
	return EndpointChannel(channelID) + "/thread-members"
}

func EndpointThreadMember(channelID discord.Snowflake, user string) string {
	return EndpointThreadMembers(channelID) + "/" + user
}

func EndpointChannelArchivedThreads(channelID discord.Snowflake, visibility string) string {
	return EndpointChannelThreads(channelID) + "/archived/" + visibility
}

func EndpointChannelJoinedPrivateArchivedThreads(channelID discord.Snowflake) string {
	return EndpointChannel(channelID) + "/users/@me/threads/archived/private"
}

func EndpointGuild(guildID discord.Snowflake) string {
	return "/guilds/" + guildID.String()
}

func EndpointGuildPreview(guildID discord.Snowflake) string {
	return EndpointGuild(guildID) + "/preview"
}

func EndpointGuildChannels(guildID discord.Snowflake) string {
	return EndpointGuild(guildID) + "/channels"
}

func EndpointGuildActiveThreads(guildID discord.Snowflake) string {
	return EndpointGuild(guildID) + "/threads/active"
}

func EndpointGuildMembers(guildID discord.Snowflake) string {
	return EndpointGuild(guildID) + "/members"
}

func EndpointGuildMembersSearch(guildID discord.Snowflake) string {
	return EndpointGuildMembers(guildID) + "/search"
}

func EndpointGuildMember(guildID, userID discord.Snowflake) string {
	return EndpointGuildMembers(guildID) + "/" + userID.String()
}

func EndpointGuildCurrentMember(guildID discord.Snowflake) string {
	return EndpointGuildMembers(guildID) + "/@me"
}

func EndpointGuildCurrentMemberNick(guildID discord.Snowflake) string {
	return EndpointGuildCurrentMember(guildID) + "/nick"
}

func EndpointGuildMemberRole(guildID, userID, roleID discord.Snowflake) string {
	return EndpointGuildMember(guildID, userID) + "/roles/" + roleID.String()
}

func EndpointGuildBans(guildID discord.Snowflake) string {
	return EndpointGuild(guildID) + "/bans"
}

func EndpointGuildBan(guildID, userID discord.Snowflake) string {
	return EndpointGuildBans(guildID) + "/" + userID.String()
}

func EndpointGuildRoles(guildID discord.Snowflake) string {
	return EndpointGuild(guildID) + "/roles"
}

func EndpointGuildRole(guildID, roleID discord.Snowflake) string {
	return EndpointGuildRoles(guildID) + "/" + roleID.String()
}

func EndpointGuildPrune(guildID discord.Snowflake) string {
	return EndpointGuild(guildID) + "/prune"
}

func EndpointGuildInvites(guildID discord.Snowflake) string {
	return EndpointGuild(guildID) + "/invites"
}

func EndpointGuildIntegrations(guildID discord.Snowflake) string {
	return EndpointGuild(guildID) + "/integrations"
}

func EndpointGuildWebhooks(guildID discord.Snowflake) string {
	return EndpointGuild(guildID) + "/webhooks"
}

func EndpointGuildAuditLogs(guildID discord.Snowflake) string {
	return EndpointGuild(guildID) + "/audit-logs"
}

func EndpointGuildWidgetSettings(guildID discord.Snowflake) string {
	return EndpointGuild(guildID) + "/widget"
}

func EndpointGuildWidget(guildID discord.Snowflake) string {
	return EndpointGuild(guildID) + "/widget.json"
}

func EndpointGuildWidgetImage(guildID discord.Snowflake) string {
	return EndpointGuild(guildID) + "/widget.png"
}

func EndpointGuildVanityURL(guildID discord.Snowflake) string {
	return EndpointGuild(guildID) + "/vanity-url"
}

func EndpointGuildWelcomeScreen(guildID discord.Snowflake) string {
	return EndpointGuild(guildID) + "/welcome-screen"
}

func EndpointGuildMFA(guildID discord.Snowflake) string {
	return EndpointGuild(guildID) + "/mfa"
}

func EndpointGuildVoiceState(guildID discord.Snowflake, user string) string {
	return EndpointGuild(guildID) + "/voice-states/" + user
}

func EndpointGuildEmojis(guildID discord.Snowflake) string {
	return EndpointGuild(guildID) + "/emojis"
}

func EndpointGuildEmoji(guildID, emojiID discord.Snowflake) string {
	return EndpointGuildEmojis(guildID) + "/" + emojiID.String()
}

func EndpointGuildStickers(guildID discord.Snowflake) string {
	return EndpointGuild(guildID) + "/stickers"
}

func EndpointGuildSticker(guildID, stickerID discord.Snowflake) string {
	return EndpointGuildStickers(guildID) + "/" + stickerID.String()
}

func EndpointSticker(stickerID discord.Snowflake) string {
	return "/stickers/" + stickerID.String()
}

const EndpointStickerPacks = "/sticker-packs"

func EndpointGuildAutoModerationRules(guildID discord.Snowflake) string {
	return EndpointGuild(guildID) + "/auto-moderation/rules"
}

func EndpointGuildAutoModerationRule(guildID, ruleID discord.Snowflake) string {
	return EndpointGuildAutoModerationRules(guildID) + "/" + ruleID.String()
}

const (
	EndpointCurrentUser         = "/users/@me"
	EndpointCurrentUserChannels = "/users/@me/channels"
)

func EndpointUser(userID discord.Snowflake) string {
	return "/users/" + userID.String()
}

func EndpointGlobalApplicationCommands(applicationID discord.Snowflake) string {
	return "/applications/" + applicationID.String() + "/commands"
}

func EndpointGlobalApplicationCommand(applicationID, commandID discord.Snowflake) string {
	return EndpointGlobalApplicationCommands(applicationID) + "/" + commandID.String()
}

func EndpointGuildApplicationCommands(applicationID, guildID discord.Snowflake) string {
	return "/applications/" + applicationID.String() + "/guilds/" + guildID.String() + "/commands"
}

func EndpointInteractionResponse(interactionID discord.Snowflake, token string) string {
	return "/interactions/" + interactionID.String() + "/" + token + "/callback"
}
