package discord

import "encoding/json"

// guild.go contains the structures to represent a guild.

// MFALevel represents a guild's MFA level.
type MFALevel uint8

// MFA levels.
const (
	MFALevelNone MFALevel = iota
	MFALevelElevated
)

// VerificationLevel represents a guild's verification level.
type VerificationLevel uint8

const (
	VerificationLevelNone VerificationLevel = iota
	VerificationLevelLow
	VerificationLevelMedium
	VerificationLevelHigh
	VerificationLevelVeryHigh
)

// Guild represents a guild on discord.
type Guild struct {
	Icon                     *string           `json:"icon"`
	SystemChannelID          *Snowflake        `json:"system_channel_id,omitempty"`
	AFKChannelID             *Snowflake        `json:"afk_channel_id,omitempty"`
	Description              string            `json:"description,omitempty"`
	PreferredLocale          string            `json:"preferred_locale,omitempty"`
	Name                     string            `json:"name"`
	VanityURLCode            string            `json:"vanity_url_code,omitempty"`
	Features                 []string          `json:"features,omitempty"`
	Roles                    []Role            `json:"roles,omitempty"`
	Emojis                   []Emoji           `json:"emojis,omitempty"`
	Stickers                 []Sticker         `json:"stickers,omitempty"`
	OwnerID                  Snowflake         `json:"owner_id"`
	ID                       Snowflake         `json:"id"`
	ApproximateMemberCount   int32             `json:"approximate_member_count,omitempty"`
	ApproximatePresenceCount int32             `json:"approximate_presence_count,omitempty"`
	MemberCount              int32             `json:"member_count,omitempty"`
	AFKTimeout               int32             `json:"afk_timeout,omitempty"`
	VerificationLevel        VerificationLevel `json:"verification_level"`
	MFALevel                 MFALevel          `json:"mfa_level"`
	Unavailable              bool              `json:"unavailable,omitempty"`
}

// GuildPreview represents the public preview of a guild.
type GuildPreview struct {
	Icon                     *string   `json:"icon"`
	Description              *string   `json:"description"`
	Name                     string    `json:"name"`
	Features                 []string  `json:"features"`
	Emojis                   []Emoji   `json:"emojis"`
	Stickers                 []Sticker `json:"stickers"`
	ID                       Snowflake `json:"id"`
	ApproximateMemberCount   int32     `json:"approximate_member_count"`
	ApproximatePresenceCount int32     `json:"approximate_presence_count"`
}

// GuildParams represents the arguments to modify a guild.
type GuildParams struct {
	Name              *string            `json:"name,omitempty"`
	Description       *string            `json:"description,omitempty"`
	Icon              *string            `json:"icon,omitempty"`
	AFKChannelID      *Snowflake         `json:"afk_channel_id,omitempty"`
	SystemChannelID   *Snowflake         `json:"system_channel_id,omitempty"`
	AFKTimeout        *int32             `json:"afk_timeout,omitempty"`
	VerificationLevel *VerificationLevel `json:"verification_level,omitempty"`
	PreferredLocale   *string            `json:"preferred_locale,omitempty"`
}

// GuildMember represents a guild member on discord.
type GuildMember struct {
	User                       *User       `json:"user,omitempty"`
	CommunicationDisabledUntil *Timestamp  `json:"communication_disabled_until,omitempty"`
	Nick                       string      `json:"nick,omitempty"`
	Avatar                     string      `json:"avatar,omitempty"`
	JoinedAt                   Timestamp   `json:"joined_at,omitempty"`
	Roles                      []Snowflake `json:"roles"`
	Permissions                Int64       `json:"permissions,omitempty"`
	Deaf                       bool        `json:"deaf"`
	Mute                       bool        `json:"mute"`
	Pending                    bool        `json:"pending,omitempty"`
}

// GuildMemberParams represents the arguments to modify a guild member.
type GuildMemberParams struct {
	Nick                       *string      `json:"nick,omitempty"`
	Roles                      *[]Snowflake `json:"roles,omitempty"`
	Mute                       *bool        `json:"mute,omitempty"`
	Deaf                       *bool        `json:"deaf,omitempty"`
	ChannelID                  *Snowflake   `json:"channel_id,omitempty"`
	CommunicationDisabledUntil *Timestamp   `json:"communication_disabled_until,omitempty"`
}

// ModifyCurrentMemberParams represents the arguments to modify the current member.
type ModifyCurrentMemberParams struct {
	Nick *string `json:"nick,omitempty"`
}

// GuildBan represents a ban entry.
type GuildBan struct {
	Reason *string `json:"reason"`
	User   User    `json:"user"`
}

// CreateGuildBanParams represents the arguments to ban a user.
type CreateGuildBanParams struct {
	DeleteMessageSeconds int32 `json:"delete_message_seconds,omitempty"`
}

// GuildPruneParams represents the arguments for a guild prune.
type GuildPruneParams struct {
	Days              *int32      `json:"days,omitempty"`
	IncludeRoles      []Snowflake `json:"include_roles,omitempty"`
	ComputePruneCount bool        `json:"compute_prune_count"`
}

// GuildPruneResult is returned by BeginGuildPrune. Pruned is nil when the count was not computed.
type GuildPruneResult struct {
	Pruned *int32 `json:"pruned"`
}

// Integration represents a guild integration.
type Integration struct {
	User    *User     `json:"user,omitempty"`
	Name    string    `json:"name"`
	Type    string    `json:"type"`
	ID      Snowflake `json:"id"`
	Enabled bool      `json:"enabled"`
}

// GuildWidgetSettings represents the widget settings of a guild.
type GuildWidgetSettings struct {
	ChannelID *Snowflake `json:"channel_id"`
	Enabled   bool       `json:"enabled"`
}

// GuildWidget represents the public widget of a guild.
type GuildWidget struct {
	InstantInvite *string           `json:"instant_invite"`
	Name          string            `json:"name"`
	Channels      []json.RawMessage `json:"channels"`
	Members       []json.RawMessage `json:"members"`
	ID            Snowflake         `json:"id"`
	PresenceCount int32             `json:"presence_count"`
}

// GuildVanityURL represents the vanity invite of a guild.
type GuildVanityURL struct {
	Code *string `json:"code"`
	Uses int32   `json:"uses"`
}

// WelcomeScreenChannel is a channel shown on the welcome screen.
type WelcomeScreenChannel struct {
	EmojiID     *Snowflake `json:"emoji_id"`
	EmojiName   *string    `json:"emoji_name"`
	Description string     `json:"description"`
	ChannelID   Snowflake  `json:"channel_id"`
}

// WelcomeScreen represents the welcome screen of a community guild.
type WelcomeScreen struct {
	Description     *string                `json:"description"`
	WelcomeChannels []WelcomeScreenChannel `json:"welcome_channels"`
}

// WelcomeScreenParams represents the arguments to modify a welcome screen.
type WelcomeScreenParams struct {
	Enabled         *bool                   `json:"enabled,omitempty"`
	WelcomeChannels *[]WelcomeScreenChannel `json:"welcome_channels,omitempty"`
	Description     *string                 `json:"description,omitempty"`
}

// AuditLog represents the audit log of a guild. Entries are kept raw as their
// changes depend on the action type.
type AuditLog struct {
	Users           []User            `json:"users"`
	Webhooks        []Webhook         `json:"webhooks"`
	AuditLogEntries []json.RawMessage `json:"audit_log_entries"`
}

// AuditLogParams filters the guild audit log.
type AuditLogParams struct {
	UserID     Snowflake
	Before     Snowflake
	ActionType int
	Limit      int
}

// VoiceStateParams represents the arguments to modify a voice state.
// UserID is only used when modifying another user.
type VoiceStateParams struct {
	RequestToSpeakTimestamp *Timestamp `json:"request_to_speak_timestamp,omitempty"`
	Suppress                *bool      `json:"suppress,omitempty"`
	ChannelID               Snowflake  `json:"channel_id"`
}
