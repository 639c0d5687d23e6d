package discord

// PresenceStatus represents a presence's status.
type PresenceStatus string

// Presence statuses.
const (
	PresenceStatusIdle      PresenceStatus = "idle"
	PresenceStatusDND       PresenceStatus = "dnd"
	PresenceStatusOnline    PresenceStatus = "online"
	PresenceStatusInvisible PresenceStatus = "invisible"
	PresenceStatusOffline   PresenceStatus = "offline"
)

// ActivityType represents an activity's type.
type ActivityType int

// Activity types. 4 is reserved for custom statuses.
const (
	ActivityTypeGame ActivityType = iota
	ActivityTypeStreaming
	ActivityTypeListening
	ActivityTypeWatching
	ActivityTypeCustom
	ActivityTypeCompeting
)

// ParseActivityType maps the lowercase names playing, streaming, listening, watching
// and competing to their activity type. Anything else is treated as playing.
func ParseActivityType(kind string) ActivityType {
	switch kind {
	case "playing":
		return ActivityTypeGame
	case "streaming":
		return ActivityTypeStreaming
	case "listening":
		return ActivityTypeListening
	case "watching":
		return ActivityTypeWatching
	case "competing":
		return ActivityTypeCompeting
	default:
		return ActivityTypeGame
	}
}

// Activity represents an activity as sent as part of other packets.
type Activity struct {
	URL   string       `json:"url,omitempty"`
	Name  string       `json:"name"`
	State string       `json:"state,omitempty"`
	Type  ActivityType `json:"type"`
}

// PresenceUpdate represents a presence update event.
type PresenceUpdate struct {
	User       User           `json:"user"`
	Status     PresenceStatus `json:"status"`
	Activities []Activity     `json:"activities"`
	GuildID    Snowflake      `json:"guild_id"`
}
