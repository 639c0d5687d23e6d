package discord

// channel.go contains the information relating to channels

// ChannelType represents a channel's type.
type ChannelType uint16

const (
	ChannelTypeGuildText ChannelType = iota
	ChannelTypeDM
	ChannelTypeGuildVoice
	ChannelTypeGroupDM
	ChannelTypeGuildCategory
	ChannelTypeGuildAnnouncement
	_
	_
	_
	_
	ChannelTypeAnnouncementThread
	ChannelTypeGuildPublicThread
	ChannelTypeGuildPrivateThread
	ChannelTypeGuildStageVoice
	ChannelTypeGuildDirectory
	ChannelTypeGuildForum
)

// IsThread reports whether the channel type is one of the thread types.
func (t ChannelType) IsThread() bool {
	return t == ChannelTypeAnnouncementThread || t == ChannelTypeGuildPublicThread || t == ChannelTypeGuildPrivateThread
}

// Channel represents a Discord channel.
type Channel struct {
	GuildID              *Snowflake         `json:"guild_id,omitempty"`
	OwnerID              *Snowflake         `json:"owner_id,omitempty"`
	ParentID             *Snowflake         `json:"parent_id,omitempty"`
	ThreadMetadata       *ThreadMetadata    `json:"thread_metadata,omitempty"`
	ThreadMember         *ThreadMember      `json:"member,omitempty"`
	LastMessageID        *Snowflake         `json:"last_message_id,omitempty"`
	Topic                string             `json:"topic,omitempty"`
	Name                 string             `json:"name,omitempty"`
	PermissionOverwrites []ChannelOverwrite `json:"permission_overwrites,omitempty"`
	Recipients           []User             `json:"recipients,omitempty"`
	ID                   Snowflake          `json:"id"`
	Position             int32              `json:"position,omitempty"`
	RateLimitPerUser     int32              `json:"rate_limit_per_user,omitempty"`
	UserLimit            int32              `json:"user_limit,omitempty"`
	Bitrate              int32              `json:"bitrate,omitempty"`
	MessageCount         int32              `json:"message_count,omitempty"`
	MemberCount          int32              `json:"member_count,omitempty"`
	Type                 ChannelType        `json:"type"`
	NSFW                 bool               `json:"nsfw,omitempty"`
}

// Mention returns the string used to mention the channel in message content.
func (c Channel) Mention() string {
	return "<#" + c.ID.String() + ">"
}

// ChannelOverrideType represents the target of a channel override.
type ChannelOverrideType uint8

const (
	ChannelOverrideTypeRole ChannelOverrideType = iota
	ChannelOverrideTypeMember
)

// ChannelOverwrite represents a permission overwrite for a channel.
type ChannelOverwrite struct {
	ID    Snowflake           `json:"id"`
	Allow Int64               `json:"allow"`
	Deny  Int64               `json:"deny"`
	Type  ChannelOverrideType `json:"type"`
}

// ThreadMetadata contains thread-specific channel fields.
type ThreadMetadata struct {
	ArchiveTimestamp    Timestamp `json:"archive_timestamp"`
	AutoArchiveDuration int32     `json:"auto_archive_duration"`
	Archived            bool      `json:"archived"`
	Locked              bool      `json:"locked"`
	Invitable           bool      `json:"invitable,omitempty"`
}

// ThreadMember is used to indicate whether a user has joined a thread or not.
type ThreadMember struct {
	ID            *Snowflake `json:"id,omitempty"`
	UserID        *Snowflake `json:"user_id,omitempty"`
	JoinTimestamp Timestamp  `json:"join_timestamp"`
	Flags         int32      `json:"flags"`
}

// ThreadList is returned by the thread listing endpoints.
type ThreadList struct {
	Threads []Channel      `json:"threads"`
	Members []ThreadMember `json:"members"`
	HasMore bool           `json:"has_more,omitempty"`
}

// FollowedChannel represents a followed channel.
type FollowedChannel struct {
	ChannelID Snowflake `json:"channel_id"`
	WebhookID Snowflake `json:"webhook_id"`
}

// ChannelParams represents the arguments to create or modify a channel.
type ChannelParams struct {
	Name                 string              `json:"name,omitempty"`
	Type                 *ChannelType        `json:"type,omitempty"`
	Topic                *string             `json:"topic,omitempty"`
	Position             *int32              `json:"position,omitempty"`
	ParentID             *Snowflake          `json:"parent_id,omitempty"`
	NSFW                 *bool               `json:"nsfw,omitempty"`
	RateLimitPerUser     *int32              `json:"rate_limit_per_user,omitempty"`
	Bitrate              *int32              `json:"bitrate,omitempty"`
	UserLimit            *int32              `json:"user_limit,omitempty"`
	PermissionOverwrites *[]ChannelOverwrite `json:"permission_overwrites,omitempty"`
}

// ChannelPositionParams moves a channel when passed to ModifyGuildChannelPositions.
type ChannelPositionParams struct {
	ParentID        *Snowflake `json:"parent_id,omitempty"`
	LockPermissions *bool      `json:"lock_permissions,omitempty"`
	ID              Snowflake  `json:"id"`
	Position        int32      `json:"position"`
}

// ChannelPermissionsParams represents the arguments to edit a permission overwrite.
type ChannelPermissionsParams struct {
	Allow *Int64              `json:"allow,omitempty"`
	Deny  *Int64              `json:"deny,omitempty"`
	Type  ChannelOverrideType `json:"type"`
}

// StartThreadParams represents the arguments to start a thread.
// Type is ignored when starting a thread from a message.
type StartThreadParams struct {
	Type                *ChannelType   `json:"type,omitempty"`
	Message             *MessageParams `json:"message,omitempty"`
	Name                string         `json:"name"`
	AutoArchiveDuration int32          `json:"auto_archive_duration,omitempty"`
	RateLimitPerUser    int32          `json:"rate_limit_per_user,omitempty"`
	Invitable           bool           `json:"invitable,omitempty"`
}

// ThreadListParams pages through archived threads.
type ThreadListParams struct {
	Before string
	Limit  int
}
