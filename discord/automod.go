package discord

// automod.go contains the structures of auto moderation rules.

// AutoModerationEventType is the event a rule is checked on.
type AutoModerationEventType uint8

const (
	AutoModerationEventTypeMessageSend AutoModerationEventType = 1
)

// AutoModerationTriggerType characterizes the content that triggers a rule.
type AutoModerationTriggerType uint8

const (
	AutoModerationTriggerTypeKeyword AutoModerationTriggerType = 1 + iota
	_
	AutoModerationTriggerTypeSpam
	AutoModerationTriggerTypeKeywordPreset
	AutoModerationTriggerTypeMentionSpam
)

// AutoModerationActionType is the action taken when a rule is triggered.
type AutoModerationActionType uint8

const (
	AutoModerationActionTypeBlockMessage AutoModerationActionType = 1 + iota
	AutoModerationActionTypeSendAlertMessage
	AutoModerationActionTypeTimeout
)

// AutoModerationTriggerMetadata is the extra data used to decide whether a rule is triggered.
type AutoModerationTriggerMetadata struct {
	KeywordFilter     []string `json:"keyword_filter,omitempty"`
	RegexPatterns     []string `json:"regex_patterns,omitempty"`
	Presets           []uint8  `json:"presets,omitempty"`
	AllowList         []string `json:"allow_list,omitempty"`
	MentionTotalLimit int32    `json:"mention_total_limit,omitempty"`
}

// AutoModerationActionMetadata is the extra data used when an action is executed.
type AutoModerationActionMetadata struct {
	ChannelID       *Snowflake `json:"channel_id,omitempty"`
	DurationSeconds int32      `json:"duration_seconds,omitempty"`
	CustomMessage   string     `json:"custom_message,omitempty"`
}

// AutoModerationAction represents an action taken when a rule is triggered.
type AutoModerationAction struct {
	Metadata *AutoModerationActionMetadata `json:"metadata,omitempty"`
	Type     AutoModerationActionType      `json:"type"`
}

// AutoModerationRule represents an auto moderation rule of a guild.
type AutoModerationRule struct {
	TriggerMetadata *AutoModerationTriggerMetadata `json:"trigger_metadata,omitempty"`
	Name            string                         `json:"name"`
	Actions         []AutoModerationAction         `json:"actions"`
	ExemptRoles     []Snowflake                    `json:"exempt_roles,omitempty"`
	ExemptChannels  []Snowflake                    `json:"exempt_channels,omitempty"`
	ID              Snowflake                      `json:"id,omitempty"`
	GuildID         Snowflake                      `json:"guild_id,omitempty"`
	CreatorID       Snowflake                      `json:"creator_id,omitempty"`
	EventType       AutoModerationEventType        `json:"event_type"`
	TriggerType     AutoModerationTriggerType      `json:"trigger_type"`
	Enabled         bool                           `json:"enabled"`
}

// AutoModerationRuleParams represents the arguments to create or modify a rule.
// TriggerType is only sent on create.
type AutoModerationRuleParams struct {
	TriggerMetadata *AutoModerationTriggerMetadata `json:"trigger_metadata,omitempty"`
	Enabled         *bool                          `json:"enabled,omitempty"`
	TriggerType     AutoModerationTriggerType      `json:"trigger_type,omitempty"`
	Name            string                         `json:"name,omitempty"`
	Actions         []AutoModerationAction         `json:"actions,omitempty"`
	ExemptRoles     []Snowflake                    `json:"exempt_roles,omitempty"`
	ExemptChannels  []Snowflake                    `json:"exempt_channels,omitempty"`
	EventType       AutoModerationEventType        `json:"event_type,omitempty"`
}
