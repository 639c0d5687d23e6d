package discord

import (
	"net/url"
)

// emoji.go contains all structures for emojis.

// Emoji represents an Emoji on discord.
type Emoji struct {
	User          *User       `json:"user,omitempty"`
	Name          string      `json:"name"`
	Roles         []Snowflake `json:"roles,omitempty"`
	ID            Snowflake   `json:"id,omitempty"`
	RequireColons bool        `json:"require_colons,omitempty"`
	Managed       bool        `json:"managed,omitempty"`
	Animated      bool        `json:"animated,omitempty"`
	Available     bool        `json:"available,omitempty"`
}

// APIName returns the form of the emoji used in reaction routes: the unicode
// character for standard emojis and name:id for custom ones. The result is path escaped.
func (e Emoji) APIName() string {
	if e.ID.IsNil() {
		return url.PathEscape(e.Name)
	}

	return url.PathEscape(e.Name + ":" + e.ID.String())
}

// CreateEmojiParams represents the arguments to create a guild emoji.
// Image is a data URI, see ImageDataURI.
type CreateEmojiParams struct {
	Name  string      `json:"name"`
	Image string      `json:"image"`
	Roles []Snowflake `json:"roles,omitempty"`
}

// ModifyEmojiParams represents the arguments to modify a guild emoji.
type ModifyEmojiParams struct {
	Name  *string      `json:"name,omitempty"`
	Roles *[]Snowflake `json:"roles,omitempty"`
}

// Reaction represents a reaction on a message.
type Reaction struct {
	Emoji Emoji `json:"emoji"`
	Count int32 `json:"count"`
	Me    bool  `json:"me"`
}
