package discord

import (
	"fmt"
	"strings"
)

// user.go represents all structures for a discord user.

// UserFlags represents the flags on a user's account.
type UserFlags uint32

// User flags.
const (
	UserFlagsDiscordEmployee UserFlags = 1 << iota
	UserFlagsPartneredServerOwner
	UserFlagsHypeSquadEvents
	UserFlagsBugHunterLevel1
	_
	_
	UserFlagsHouseBravery
	UserFlagsHouseBrilliance
	UserFlagsHouseBalance
	UserFlagsEarlySupporter
	UserFlagsTeamUser
	_
	_
	_
	UserFlagsBugHunterLevel2
	_
	UserFlagsVerifiedBot
	UserFlagsVerifiedDeveloper
	UserFlagsCertifiedModerator
	UserFlagsBotHTTPInteractions
	_
	_
	UserFlagsActiveDeveloper
)

const (
	EndpointCDN = "https://cdn.discordapp.com"
)

// User represents a user on discord.
type User struct {
	Avatar        *string   `json:"avatar"`
	Banner        string    `json:"banner,omitempty"`
	GlobalName    string    `json:"global_name"`
	Username      string    `json:"username"`
	Discriminator string    `json:"discriminator"`
	Locale        string    `json:"locale,omitempty"`
	ID            Snowflake `json:"id"`
	Flags         UserFlags `json:"flags"`
	PublicFlags   UserFlags `json:"public_flags"`
	MFAEnabled    bool      `json:"mfa_enabled"`
	Verified      bool      `json:"verified"`
	Bot           bool      `json:"bot"`
	System        bool      `json:"system"`
}

// Mention returns the string used to mention the user in message content.
func (u User) Mention() string {
	return "<@" + u.ID.String() + ">"
}

// Tag returns username#discriminator, or just the username for migrated accounts.
func (u User) Tag() string {
	if u.Discriminator == "" || u.Discriminator == "0" {
		return u.Username
	}

	return u.Username + "#" + u.Discriminator
}

// DisplayAvatarURL returns the CDN URL of the user's avatar. Animated avatars are
// returned as gif, everything else as png.
func (u User) DisplayAvatarURL() (string, error) {
	if u.Avatar == nil || *u.Avatar == "" {
		return "", NewArgumentError("avatar", fmt.Sprintf("user %s has no avatar", u.ID))
	}

	ext := "png"
	if strings.HasPrefix(*u.Avatar, "a_") {
		ext = "gif"
	}

	return fmt.Sprintf("%s/avatars/%s/%s.%s", EndpointCDN, u.ID, *u.Avatar, ext), nil
}

// ModifyCurrentUserParams represents the arguments to modify the current user.
// Avatar is a data URI, see ImageDataURI.
type ModifyCurrentUserParams struct {
	Username *string `json:"username,omitempty"`
	Avatar   *string `json:"avatar,omitempty"`
}
