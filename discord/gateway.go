package discord

import (
	"encoding/json"
	"strings"
)

// gateway.go contains all structures for interacting with discord's gateway and contains
// all events and structures we send to discord.

// GatewayOp represents the operation codes of a gateway message.
type GatewayOp uint8

const (
	GatewayOpDispatch GatewayOp = iota
	GatewayOpHeartbeat
	GatewayOpIdentify
	GatewayOpStatusUpdate
	GatewayOpVoiceStateUpdate
	_
	GatewayOpResume
	GatewayOpReconnect
	GatewayOpRequestGuildMembers
	GatewayOpInvalidSession
	GatewayOpHello
	GatewayOpHeartbeatACK
)

func (op GatewayOp) String() string {
	switch op {
	case GatewayOpDispatch:
		return "DISPATCH"
	case GatewayOpHeartbeat:
		return "HEARTBEAT"
	case GatewayOpIdentify:
		return "IDENTIFY"
	case GatewayOpStatusUpdate:
		return "PRESENCE_UPDATE"
	case GatewayOpVoiceStateUpdate:
		return "VOICE_STATE_UPDATE"
	case GatewayOpResume:
		return "RESUME"
	case GatewayOpReconnect:
		return "RECONNECT"
	case GatewayOpRequestGuildMembers:
		return "REQUEST_GUILD_MEMBERS"
	case GatewayOpInvalidSession:
		return "INVALID_SESSION"
	case GatewayOpHello:
		return "HELLO"
	case GatewayOpHeartbeatACK:
		return "HEARTBEAT_ACK"
	default:
		return "UNKNOWN"
	}
}

// GatewayIntent represents a bitflag for intents.
type GatewayIntent uint32

const (
	IntentGuilds GatewayIntent = 1 << iota
	IntentGuildMembers
	IntentGuildModeration
	IntentGuildEmojisAndStickers
	IntentGuildIntegrations
	IntentGuildWebhooks
	IntentGuildInvites
	IntentGuildVoiceStates
	IntentGuildPresences
	IntentGuildMessages
	IntentGuildMessageReactions
	IntentGuildMessageTyping
	IntentDirectMessages
	IntentDirectMessageReactions
	IntentDirectMessageTyping
	IntentMessageContent
	IntentGuildScheduledEvents
	_
	_
	_
	IntentAutoModerationConfiguration
	IntentAutoModerationExecution
)

var intentNames = map[string]GatewayIntent{
	"guilds":                        IntentGuilds,
	"guild_members":                 IntentGuildMembers,
	"guild_moderation":              IntentGuildModeration,
	"guild_bans":                    IntentGuildModeration,
	"guild_emojis_and_stickers":     IntentGuildEmojisAndStickers,
	"guild_integrations":            IntentGuildIntegrations,
	"guild_webhooks":                IntentGuildWebhooks,
	"guild_invites":                 IntentGuildInvites,
	"guild_voice_states":            IntentGuildVoiceStates,
	"guild_presences":               IntentGuildPresences,
	"guild_messages":                IntentGuildMessages,
	"guild_message_reactions":       IntentGuildMessageReactions,
	"guild_message_typing":          IntentGuildMessageTyping,
	"direct_messages":               IntentDirectMessages,
	"direct_message_reactions":      IntentDirectMessageReactions,
	"direct_message_typing":         IntentDirectMessageTyping,
	"message_content":               IntentMessageContent,
	"guild_scheduled_events":        IntentGuildScheduledEvents,
	"auto_moderation_configuration": IntentAutoModerationConfiguration,
	"auto_moderation_execution":     IntentAutoModerationExecution,
}

// ParseIntents converts a list of intent names such as "guild_messages" into a bitmask.
// Names are matched case-insensitively and may use "-" or "_".
func ParseIntents(names []string) (GatewayIntent, error) {
	var intents GatewayIntent

	for _, name := range names {
		normalized := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), "-", "_"))

		intent, ok := intentNames[normalized]
		if !ok {
			return 0, NewArgumentError("intents", "unknown intent "+name)
		}

		intents |= intent
	}

	return intents, nil
}

// Gateway close codes.
const (
	CloseUnknownError = 4000 + iota
	CloseUnknownOpCode
	CloseDecodeError
	CloseNotAuthenticated
	CloseAuthenticationFailed
	CloseAlreadyAuthenticated
	_
	CloseInvalidSeq
	CloseRateLimited
	CloseSessionTimeout
	CloseInvalidShard
	CloseShardingRequired
	CloseInvalidAPIVersion
	CloseInvalidIntents
	CloseDisallowedIntents
)

// GatewayPayload represents the base payload received from discord gateway.
type GatewayPayload struct {
	Op       GatewayOp       `json:"op"`
	Data     json.RawMessage `json:"d"`
	Sequence *int64          `json:"s,omitempty"`
	Type     string          `json:"t,omitempty"`
}

// SentPayload represents the base payload we send to discords gateway.
type SentPayload struct {
	Op   GatewayOp   `json:"op"`
	Data interface{} `json:"d"`
}

// Gateway Commands

// Identify represents the initial handshake with the gateway.
type Identify struct {
	Properties *IdentifyProperties `json:"properties"`
	Presence   *UpdateStatus       `json:"presence,omitempty"`
	Token      string              `json:"token"`
	Intents    GatewayIntent       `json:"intents"`
}

// IdentifyProperties are the extra properties sent in the identify packet.
type IdentifyProperties struct {
	OS      string `json:"os"`
	Browser string `json:"browser"`
	Device  string `json:"device"`
}

// UpdateStatus updates a client's presence. It is used both in identify and in op 3.
type UpdateStatus struct {
	Since      *int64         `json:"since"`
	Game       *Activity      `json:"game,omitempty"`
	Status     PresenceStatus `json:"status"`
	Activities []Activity     `json:"activities"`
	AFK        bool           `json:"afk"`
}

// Hello represents a hello event when connecting.
type Hello struct {
	HeartbeatInterval int64 `json:"heartbeat_interval"`
}

// GatewayResponse represents a GET /gateway response.
type GatewayResponse struct {
	URL string `json:"url"`
}
