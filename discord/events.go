package discord

// events.go contains the structures of received events that are not plain resources.

// Event type names that are referenced by the library.
const (
	EventReady             = "READY"
	EventMessageCreate     = "MESSAGE_CREATE"
	EventMessageUpdate     = "MESSAGE_UPDATE"
	EventMessageDelete     = "MESSAGE_DELETE"
	EventInteractionCreate = "INTERACTION_CREATE"
	EventGuildCreate       = "GUILD_CREATE"
)

// Ready represents when the client has completed the initial handshake.
type Ready struct {
	User        User               `json:"user"`
	SessionID   string             `json:"session_id"`
	Guilds      []UnavailableGuild `json:"guilds"`
	Application struct {
		ID Snowflake `json:"id"`
	} `json:"application"`
	Version int32 `json:"v"`
}

// UnavailableGuild represents a guild that may be unavailable.
type UnavailableGuild struct {
	ID          Snowflake `json:"id"`
	Unavailable bool      `json:"unavailable"`
}

// MessageDelete represents a message delete event.
type MessageDelete struct {
	GuildID   *Snowflake `json:"guild_id,omitempty"`
	ID        Snowflake  `json:"id"`
	ChannelID Snowflake  `json:"channel_id"`
}
