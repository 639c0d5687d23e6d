package discord

// webhook.go represents the webhook structures returned by channel and guild routes.

// WebhookType is the type of webhook.
type WebhookType uint8

// Webhook type.
const (
	WebhookTypeIncoming WebhookType = iota + 1
	WebhookTypeChannelFollower
	WebhookTypeApplication
)

// Webhook represents a webhook on discord.
type Webhook struct {
	GuildID       *Snowflake  `json:"guild_id,omitempty"`
	ChannelID     *Snowflake  `json:"channel_id,omitempty"`
	User          *User       `json:"user,omitempty"`
	ApplicationID *Snowflake  `json:"application_id,omitempty"`
	Name          string      `json:"name,omitempty"`
	Avatar        string      `json:"avatar,omitempty"`
	Token         string      `json:"token,omitempty"`
	ID            Snowflake   `json:"id"`
	Type          WebhookType `json:"type"`
}

// URL returns the execute URL of the webhook. It is empty when the token is not
// visible to the bot, which is the case for webhooks it did not create.
func (w Webhook) URL() string {
	if w.Token == "" {
		return ""
	}

	return "https://discord.com/api/webhooks/" + w.ID.String() + "/" + w.Token
}
