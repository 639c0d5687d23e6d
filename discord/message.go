package discord

import (
	"io"
	"regexp"
)

// message.go contains the structure that represents a discord message.

// MessageType represents the type of message that has been sent.
type MessageType uint8

const (
	MessageTypeDefault MessageType = 0
	MessageTypeReply   MessageType = 19
)

// MessageFlags represents the extra information on a message.
type MessageFlags uint16

const (
	MessageFlagCrossposted MessageFlags = 1 << iota
	MessageFlagIsCrosspost
	MessageFlagSuppressEmbeds
	MessageFlagSourceMessageDeleted
	MessageFlagUrgent
	MessageFlagHasThread
	MessageFlagEphemeral
	MessageFlagLoading
)

// MessageAllowedMentionsType represents all the allowed mention types.
type MessageAllowedMentionsType string

const (
	MessageAllowedMentionsTypeRoles    MessageAllowedMentionsType = "roles"
	MessageAllowedMentionsTypeUsers    MessageAllowedMentionsType = "users"
	MessageAllowedMentionsTypeEveryone MessageAllowedMentionsType = "everyone"
)

// Message represents a message on discord.
type Message struct {
	Member           *GuildMember           `json:"member,omitempty"`
	GuildID          *Snowflake             `json:"guild_id,omitempty"`
	MessageReference *MessageReference      `json:"message_reference,omitempty"`
	EditedTimestamp  *Timestamp             `json:"edited_timestamp,omitempty"`
	Timestamp        Timestamp              `json:"timestamp"`
	Content          string                 `json:"content"`
	Author           User                   `json:"author"`
	Embeds           []Embed                `json:"embeds,omitempty"`
	Mentions         []User                 `json:"mentions,omitempty"`
	MentionRoles     []Snowflake            `json:"mention_roles,omitempty"`
	Attachments      []MessageAttachment    `json:"attachments,omitempty"`
	Reactions        []Reaction             `json:"reactions,omitempty"`
	Components       []InteractionComponent `json:"components,omitempty"`
	ID               Snowflake              `json:"id"`
	ChannelID        Snowflake              `json:"channel_id"`
	Flags            MessageFlags           `json:"flags,omitempty"`
	Type             MessageType            `json:"type"`
	MentionEveryone  bool                   `json:"mention_everyone"`
	TTS              bool                   `json:"tts"`
	Pinned           bool                   `json:"pinned"`
}

var channelMentionRegex = regexp.MustCompile(`<#(\d+)>`)

// MentionedChannelIDs returns the IDs of every <#id> channel mention in the
// content, in order of appearance.
func (m Message) MentionedChannelIDs() []Snowflake {
	matches := channelMentionRegex.FindAllStringSubmatch(m.Content, -1)
	ids := make([]Snowflake, 0, len(matches))

	for _, match := range matches {
		id, err := ParseSnowflake(match[1])
		if err != nil {
			continue
		}

		ids = append(ids, id)
	}

	return ids
}

// MessageReference represents crossposted messages or replys.
type MessageReference struct {
	ID              *Snowflake `json:"message_id,omitempty"`
	ChannelID       *Snowflake `json:"channel_id,omitempty"`
	GuildID         *Snowflake `json:"guild_id,omitempty"`
	FailIfNotExists bool       `json:"fail_if_not_exists,omitempty"`
}

// MessageAllowedMentions is the structure of the allowed mentions entry.
type MessageAllowedMentions struct {
	Parse       []MessageAllowedMentionsType `json:"parse"`
	Roles       []Snowflake                  `json:"roles,omitempty"`
	Users       []Snowflake                  `json:"users,omitempty"`
	RepliedUser bool                         `json:"replied_user,omitempty"`
}

// MessageAttachment represents a message attachment on discord.
type MessageAttachment struct {
	Filename    string    `json:"filename"`
	Description string    `json:"description,omitempty"`
	URL         string    `json:"url,omitempty"`
	ProxyURL    string    `json:"proxy_url,omitempty"`
	ID          Snowflake `json:"id"`
	Size        int32     `json:"size,omitempty"`
}

// File represents a file attachment sent as part of a multipart request.
type File struct {
	Reader      io.Reader
	Name        string
	ContentType string
}

// MessageParams represents the arguments to create or edit a message.
// When Files is not empty the request is sent as multipart form data.
type MessageParams struct {
	AllowedMentions  *MessageAllowedMentions `json:"allowed_mentions,omitempty"`
	MessageReference *MessageReference       `json:"message_reference,omitempty"`
	Flags            *MessageFlags           `json:"flags,omitempty"`
	Content          string                  `json:"content,omitempty"`
	Nonce            string                  `json:"nonce,omitempty"`
	Embeds           []Embed                 `json:"embeds,omitempty"`
	Components       []InteractionComponent  `json:"components,omitempty"`
	StickerIDs       []Snowflake             `json:"sticker_ids,omitempty"`
	Attachments      []MessageAttachment     `json:"attachments,omitempty"`
	Files            []File                  `json:"-"`
	TTS              bool                    `json:"tts,omitempty"`
}

// IsEmpty reports whether the message has nothing that discord would render.
func (p MessageParams) IsEmpty() bool {
	return p.Content == "" && len(p.Embeds) == 0 && len(p.Files) == 0 &&
		len(p.StickerIDs) == 0 && len(p.Components) == 0
}

// MessagesParams pages through channel messages. Only one of Around, Before or After is used.
type MessagesParams struct {
	Around Snowflake
	Before Snowflake
	After  Snowflake
	Limit  int
}

// ReactionsParams pages through users that reacted.
type ReactionsParams struct {
	After Snowflake
	Limit int
}
