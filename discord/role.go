package discord

// role.go represents all structures for a discord guild role.

// Role represents a role on discord.
type Role struct {
	Tags         *RoleTag  `json:"tags,omitempty"`
	Name         string    `json:"name"`
	Icon         string    `json:"icon,omitempty"`
	UnicodeEmoji string    `json:"unicode_emoji,omitempty"`
	ID           Snowflake `json:"id"`
	Permissions  Int64     `json:"permissions"`
	Color        int32     `json:"color"`
	Position     int32     `json:"position"`
	Hoist        bool      `json:"hoist"`
	Managed      bool      `json:"managed"`
	Mentionable  bool      `json:"mentionable"`
}

// Mention returns the string used to mention the role in message content.
func (r Role) Mention() string {
	return "<@&" + r.ID.String() + ">"
}

// RoleTag represents extra information about a role.
type RoleTag struct {
	BotID             *Snowflake `json:"bot_id"`
	IntegrationID     *Snowflake `json:"integration_id"`
	PremiumSubscriber *bool      `json:"premium_subscriber"`
}

// RoleParams represents the arguments to create or modify a role.
type RoleParams struct {
	Name        *string `json:"name,omitempty"`
	Permissions *Int64  `json:"permissions,omitempty"`
	Color       *int32  `json:"color,omitempty"`
	Hoist       *bool   `json:"hoist,omitempty"`
	Mentionable *bool   `json:"mentionable,omitempty"`
}

// RolePosition moves a role when passed to ModifyGuildRolePositions.
type RolePosition struct {
	ID       Snowflake `json:"id"`
	Position int32     `json:"position"`
}
