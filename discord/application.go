package discord

import "encoding/json"

// application.go represents application commands.

// ApplicationCommandType represents the different types of application command.
type ApplicationCommandType uint8

const (
	ApplicationCommandTypeChatInput ApplicationCommandType = 1 + iota
	ApplicationCommandTypeUser
	ApplicationCommandTypeMessage
)

// ApplicationCommandOptionType represents the different types of options.
type ApplicationCommandOptionType uint8

const (
	ApplicationCommandOptionTypeSubCommand ApplicationCommandOptionType = 1 + iota
	ApplicationCommandOptionTypeSubCommandGroup
	ApplicationCommandOptionTypeString
	ApplicationCommandOptionTypeInteger
	ApplicationCommandOptionTypeBoolean
	ApplicationCommandOptionTypeUser
	ApplicationCommandOptionTypeChannel
	ApplicationCommandOptionTypeRole
	ApplicationCommandOptionTypeMentionable
	ApplicationCommandOptionTypeNumber
	ApplicationCommandOptionTypeAttachment
)

// ApplicationCommand represents an application's command.
type ApplicationCommand struct {
	DefaultMemberPermission *Int64                     `json:"default_member_permissions,omitempty"`
	Type                    *ApplicationCommandType    `json:"type,omitempty"`
	ApplicationID           *Snowflake                 `json:"application_id,omitempty"`
	GuildID                 *Snowflake                 `json:"guild_id,omitempty"`
	ID                      *Snowflake                 `json:"id,omitempty"`
	DMPermission            *bool                      `json:"dm_permission,omitempty"`
	Name                    string                     `json:"name"`
	Description             string                     `json:"description,omitempty"`
	Options                 []ApplicationCommandOption `json:"options,omitempty"`
}

// ApplicationCommandOption represents the options for an application command.
type ApplicationCommandOption struct {
	MinValue     *float64                         `json:"min_value,omitempty"`
	MaxValue     *float64                         `json:"max_value,omitempty"`
	Autocomplete *bool                            `json:"autocomplete,omitempty"`
	Description  string                           `json:"description,omitempty"`
	Name         string                           `json:"name"`
	ChannelTypes []ChannelType                    `json:"channel_types,omitempty"`
	Options      []ApplicationCommandOption       `json:"options,omitempty"`
	Choices      []ApplicationCommandOptionChoice `json:"choices,omitempty"`
	Required     bool                             `json:"required,omitempty"`
	Type         ApplicationCommandOptionType     `json:"type"`
}

// ApplicationCommandOptionChoice represents the different choices.
type ApplicationCommandOptionChoice struct {
	Name  string          `json:"name"`
	Value json.RawMessage `json:"value"`
}

// ApplicationSelectOption represents the structure of select options.
type ApplicationSelectOption struct {
	Emoji       *Emoji `json:"emoji,omitempty"`
	Label       string `json:"label"`
	Value       string `json:"value"`
	Description string `json:"description,omitempty"`
	Default     bool   `json:"default,omitempty"`
}
