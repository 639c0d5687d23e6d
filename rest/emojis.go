package rest

import (
	"context"
	"net/http"
	"strings"

	"github.com/WelcomerTeam/Swyft/discord"
)

func (c *Client) ListGuildEmojis(ctx context.Context, guildID discord.Snowflake) ([]discord.Emoji, error) {
	if err := validate().id("guild_id", guildID).Err(); err != nil {
		return nil, err
	}

	var emojis []discord.Emoji

	if err := c.FetchJJ(ctx, http.MethodGet, EndpointGuildEmojis(guildID), nil, nil, &emojis); err != nil {
		return nil, err
	}

	return emojis, nil
}

func (c *Client) GetGuildEmoji(ctx context.Context, guildID, emojiID discord.Snowflake) (*discord.Emoji, error) {
	if err := validate().id("guild_id", guildID).id("emoji_id", emojiID).Err(); err != nil {
		return nil, err
	}

	emoji := &discord.Emoji{}

	if err := c.FetchJJ(ctx, http.MethodGet, EndpointGuildEmoji(guildID, emojiID), nil, nil, emoji); err != nil {
		return nil, err
	}

	return emoji, nil
}

// CreateGuildEmoji uploads an emoji. Image must be a data URI, see discord.ImageDataURI.
func (c *Client) CreateGuildEmoji(ctx context.Context, guildID discord.Snowflake, params discord.CreateEmojiParams, reason string) (*discord.Emoji, error) {
	if err := validate().
		id("guild_id", guildID).
		between("name", len(params.Name), 2, 32, false).
		check(strings.HasPrefix(params.Image, "data:image/"), "image", "must be an image data uri").
		Err(); err != nil {
		return nil, err
	}

	emoji := &discord.Emoji{}

	if err := c.FetchJJ(ctx, http.MethodPost, EndpointGuildEmojis(guildID), params, withReason(reason), emoji); err != nil {
		return nil, err
	}

	return emoji, nil
}

func (c *Client) ModifyGuildEmoji(ctx context.Context, guildID, emojiID discord.Snowflake, params discord.ModifyEmojiParams, reason string) (*discord.Emoji, error) {
	v := validate().id("guild_id", guildID).id("emoji_id", emojiID)
	if params.Name != nil {
		v.between("name", len(*params.Name), 2, 32, false)
	}

	if err := v.Err(); err != nil {
		return nil, err
	}

	emoji := &discord.Emoji{}

	if err := c.FetchJJ(ctx, http.MethodPatch, EndpointGuildEmoji(guildID, emojiID), params, withReason(reason), emoji); err != nil {
		return nil, err
	}

	return emoji, nil
}

func (c *Client) DeleteGuildEmoji(ctx context.Context, guildID, emojiID discord.Snowflake, reason string) error {
	if err := validate().id("guild_id", guildID).id("emoji_id", emojiID).Err(); err != nil {
		return err
	}

	return c.FetchJJ(ctx, http.MethodDelete, EndpointGuildEmoji(guildID, emojiID), nil, withReason(reason), nil)
}
