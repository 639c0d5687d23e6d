package discord

import "encoding/json"

// interactions.go represents the interaction objects.

// InteractionType represents the type of interaction.
type InteractionType uint8

const (
	InteractionTypePing InteractionType = 1 + iota
	InteractionTypeApplicationCommand
	InteractionTypeMessageComponent
	InteractionTypeApplicationCommandAutocomplete
	InteractionTypeModalSubmit
)

// InteractionCallbackType represents the type of interaction callbacks.
type InteractionCallbackType uint8

const (
	InteractionCallbackTypePong InteractionCallbackType = 1 + iota

	_
	_

	// InteractionCallbackTypeChannelMessageSource responds to an interaction with a message.
	InteractionCallbackTypeChannelMessageSource

	// InteractionCallbackTypeDeferredChannelMessageSource acknowledges an interaction and
	// edits a response later, users see a loading state.
	InteractionCallbackTypeDeferredChannelMessageSource

	// InteractionCallbackTypeDeferredUpdateMessage acknowledges an interaction and edits
	// a response later, users do not see a loading state.
	InteractionCallbackTypeDeferredUpdateMessage

	// InteractionCallbackTypeUpdateMessage edits the message the component was attached to.
	InteractionCallbackTypeUpdateMessage

	// InteractionCallbackTypeAutocompleteResult responds to an autocomplete interaction.
	InteractionCallbackTypeAutocompleteResult

	// InteractionCallbackTypeModal responds to an interaction with a popup modal.
	InteractionCallbackTypeModal
)

// InteractionComponentType represents the type of component.
type InteractionComponentType uint8

const (
	// InteractionComponentTypeActionRow is a non-interactive container for other components.
	// A message can have up to 5 action rows and rows cannot contain other action rows.
	InteractionComponentTypeActionRow InteractionComponentType = 1 + iota
	// InteractionComponentTypeButton must be in an action row. There is a limit of 5 buttons
	// per action row and they cannot share a row with a select menu.
	InteractionComponentTypeButton
	InteractionComponentTypeStringSelect
	// InteractionComponentTypeTextInput is only valid inside modals.
	InteractionComponentTypeTextInput
)

// InteractionComponentStyle represents the style of a component.
type InteractionComponentStyle uint8

const (
	InteractionComponentStylePrimary InteractionComponentStyle = 1 + iota
	InteractionComponentStyleSecondary
	InteractionComponentStyleSuccess
	InteractionComponentStyleDanger
	InteractionComponentStyleLink
)

const (
	// InteractionComponentStyleShort allows for a single-line input on text inputs.
	InteractionComponentStyleShort InteractionComponentStyle = 1 + iota
	// InteractionComponentStyleParagraph allows for a multi-line input on text inputs.
	InteractionComponentStyleParagraph
)

// Interaction represents the structure of an interaction.
type Interaction struct {
	Member        *GuildMember     `json:"member,omitempty"`
	Message       *Message         `json:"message,omitempty"`
	Data          *InteractionData `json:"data,omitempty"`
	GuildID       *Snowflake       `json:"guild_id,omitempty"`
	ChannelID     *Snowflake       `json:"channel_id,omitempty"`
	User          *User            `json:"user,omitempty"`
	Token         string           `json:"token"`
	Locale        string           `json:"locale,omitempty"`
	ID            Snowflake        `json:"id"`
	ApplicationID Snowflake        `json:"application_id"`
	Version       int32            `json:"version"`
	Type          InteractionType  `json:"type"`
}

// Invoker returns the user that triggered the interaction, in guilds and in DMs.
func (i Interaction) Invoker() *User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}

	return i.User
}

// InteractionData represents the structure of interaction data.
type InteractionData struct {
	TargetID      *Snowflake                `json:"target_id,omitempty"`
	ComponentType *InteractionComponentType `json:"component_type,omitempty"`
	Name          string                    `json:"name,omitempty"`
	CustomID      string                    `json:"custom_id,omitempty"`
	Options       []InteractionDataOption   `json:"options,omitempty"`
	Values        []string                  `json:"values,omitempty"`
	Components    []InteractionComponent    `json:"components,omitempty"`
	ID            Snowflake                 `json:"id,omitempty"`
	Type          ApplicationCommandType    `json:"type,omitempty"`
}

// InteractionDataOption represents the structure of an interaction option.
type InteractionDataOption struct {
	Name    string                       `json:"name"`
	Value   json.RawMessage              `json:"value,omitempty"`
	Options []InteractionDataOption      `json:"options,omitempty"`
	Type    ApplicationCommandOptionType `json:"type"`
	Focused bool                         `json:"focused,omitempty"`
}

// InteractionResponse represents the interaction response object.
type InteractionResponse struct {
	Data *InteractionCallbackData `json:"data,omitempty"`
	Type InteractionCallbackType  `json:"type"`
}

// InteractionCallbackData represents the structure of the interaction callback data.
// Title and CustomID are only used by modals.
type InteractionCallbackData struct {
	AllowedMentions *MessageAllowedMentions `json:"allowed_mentions,omitempty"`
	Content         string                  `json:"content,omitempty"`
	Title           string                  `json:"title,omitempty"`
	CustomID        string                  `json:"custom_id,omitempty"`
	Embeds          []Embed                 `json:"embeds,omitempty"`
	Components      []InteractionComponent  `json:"components,omitempty"`
	Flags           MessageFlags            `json:"flags,omitempty"`
	TTS             bool                    `json:"tts,omitempty"`
}

// InteractionComponent represents the structure of a component.
type InteractionComponent struct {
	Emoji       *Emoji                    `json:"emoji,omitempty"`
	MaxValues   *int32                    `json:"max_values,omitempty"`
	MinValues   *int32                    `json:"min_values,omitempty"`
	MinLength   *int32                    `json:"min_length,omitempty"`
	MaxLength   *int32                    `json:"max_length,omitempty"`
	Required    *bool                     `json:"required,omitempty"`
	Placeholder string                    `json:"placeholder,omitempty"`
	CustomID    string                    `json:"custom_id,omitempty"`
	URL         string                    `json:"url,omitempty"`
	Label       string                    `json:"label,omitempty"`
	Value       string                    `json:"value,omitempty"`
	Options     []ApplicationSelectOption `json:"options,omitempty"`
	Components  []InteractionComponent    `json:"components,omitempty"`
	Disabled    bool                      `json:"disabled,omitempty"`
	Type        InteractionComponentType  `json:"type"`
	Style       InteractionComponentStyle `json:"style,omitempty"`
}
