package discord

// invites.go contains all structures for invites.

// Invite represents the structure of Invite data.
type Invite struct {
	ExpiresAt *Timestamp `json:"expires_at,omitempty"`
	Inviter   *User      `json:"inviter,omitempty"`
	Guild     *Guild     `json:"guild,omitempty"`
	Channel   *Channel   `json:"channel,omitempty"`
	Code      string     `json:"code"`
	CreatedAt Timestamp  `json:"created_at,omitempty"`
	Uses      int32      `json:"uses"`
	MaxUses   int32      `json:"max_uses"`
	MaxAge    int32      `json:"max_age"`
	Temporary bool       `json:"temporary"`
}

// InviteParams represents the params to create an invite.
type InviteParams struct {
	MaxAge    int32 `json:"max_age"`
	MaxUses   int32 `json:"max_uses"`
	Temporary bool  `json:"temporary"`
	Unique    bool  `json:"unique"`
}
