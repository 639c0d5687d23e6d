package rest

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/WelcomerTeam/Swyft/discord"
)

// GetChannelMessages returns up to params.Limit messages (1-100, discord defaults to 50).
func (c *Client) GetChannelMessages(ctx context.Context, channelID discord.Snowflake, params discord.MessagesParams) ([]discord.Message, error) {
	if err := validate().id("channel_id", channelID).between("limit", params.Limit, 1, 100, true).Err(); err != nil {
		return nil, err
	}

	endpoint := query{}.
		snowflake("around", params.Around).
		snowflake("before", params.Before).
		snowflake("after", params.After).
		int("limit", params.Limit).
		encode(EndpointChannelMessages(channelID))

	var messages []discord.Message

	if err := c.FetchJJ(ctx, http.MethodGet, endpoint, nil, nil, &messages); err != nil {
		return nil, err
	}

	return messages, nil
}

func (c *Client) GetChannelMessage(ctx context.Context, channelID, messageID discord.Snowflake) (*discord.Message, error) {
	if err := validate().id("channel_id", channelID).id("message_id", messageID).Err(); err != nil {
		return nil, err
	}

	message := &discord.Message{}

	if err := c.FetchJJ(ctx, http.MethodGet, EndpointChannelMessage(channelID, messageID), nil, nil, message); err != nil {
		return nil, err
	}

	return message, nil
}

// CreateMessage sends a message. Messages with files are sent as multipart form data.
func (c *Client) CreateMessage(ctx context.Context, channelID discord.Snowflake, params discord.MessageParams) (*discord.Message, error) {
	if err := validate().
		id("channel_id", channelID).
		check(!params.IsEmpty(), "message", "content, embeds, files, stickers or components are required").
		check(len([]rune(params.Content)) <= 2000, "content", "must be at most 2000 characters").
		check(len(params.Embeds) <= 10, "embeds", "must have at most 10 embeds").
		Err(); err != nil {
		return nil, err
	}

	message := &discord.Message{}

	if err := c.sendMessage(ctx, http.MethodPost, EndpointChannelMessages(channelID), params, message); err != nil {
		return nil, err
	}

	return message, nil
}

func (c *Client) EditMessage(ctx context.Context, channelID, messageID discord.Snowflake, params discord.MessageParams) (*discord.Message, error) {
	if err := validate().
		id("channel_id", channelID).
		id("message_id", messageID).
		check(len([]rune(params.Content)) <= 2000, "content", "must be at most 2000 characters").
		Err(); err != nil {
		return nil, err
	}

	message := &discord.Message{}

	if err := c.sendMessage(ctx, http.MethodPatch, EndpointChannelMessage(channelID, messageID), params, message); err != nil {
		return nil, err
	}

	return message, nil
}

func (c *Client) sendMessage(ctx context.Context, method, endpoint string, params discord.MessageParams, message *discord.Message) error {
	if len(params.Files) == 0 {
		return c.FetchJJ(ctx, method, endpoint, params, nil, message)
	}

	if len(params.Attachments) == 0 {
		for i, file := range params.Files {
			params.Attachments = append(params.Attachments, discord.MessageAttachment{
				ID:       discord.Snowflake(i),
				Filename: file.Name,
			})
		}
	}

	return c.FetchMultipart(ctx, method, endpoint, params, params.Files, nil, message)
}

func (c *Client) DeleteMessage(ctx context.Context, channelID, messageID discord.Snowflake, reason string) error {
	if err := validate().id("channel_id", channelID).id("message_id", messageID).Err(); err != nil {
		return err
	}

	return c.FetchJJ(ctx, http.MethodDelete, EndpointChannelMessage(channelID, messageID), nil, withReason(reason), nil)
}

// BulkDeleteMessages deletes 2 to 100 messages. Messages older than two weeks are rejected by discord.
func (c *Client) BulkDeleteMessages(ctx context.Context, channelID discord.Snowflake, messageIDs []discord.Snowflake, reason string) error {
	if err := validate().
		id("channel_id", channelID).
		between("messages", len(messageIDs), 2, 100, false).
		Err(); err != nil {
		return err
	}

	payload := struct {
		Messages []discord.Snowflake `json:"messages"`
	}{Messages: messageIDs}

	return c.FetchJJ(ctx, http.MethodPost, EndpointChannelMessagesBulkDelete(channelID), payload, withReason(reason), nil)
}

func (c *Client) CrosspostMessage(ctx context.Context, channelID, messageID discord.Snowflake) (*discord.Message, error) {
	if err := validate().id("channel_id", channelID).id("message_id", messageID).Err(); err != nil {
		return nil, err
	}

	message := &discord.Message{}

	if err := c.FetchJJ(ctx, http.MethodPost, EndpointChannelMessageCrosspost(channelID, messageID), nil, nil, message); err != nil {
		return nil, err
	}

	return message, nil
}

func (c *Client) GetPinnedMessages(ctx context.Context, channelID discord.Snowflake) ([]discord.Message, error) {
	if err := validate().id("channel_id", channelID).Err(); err != nil {
		return nil, err
	}

	var messages []discord.Message

	if err := c.FetchJJ(ctx, http.MethodGet, EndpointChannelPins(channelID), nil, nil, &messages); err != nil {
		return nil, err
	}

	return messages, nil
}

func (c *Client) PinMessage(ctx context.Context, channelID, messageID discord.Snowflake, reason string) error {
	if err := validate().id("channel_id", channelID).id("message_id", messageID).Err(); err != nil {
		return err
	}

	return c.FetchJJ(ctx, http.MethodPut, EndpointChannelPin(channelID, messageID), nil, withReason(reason), nil)
}

func (c *Client) UnpinMessage(ctx context.Context, channelID, messageID discord.Snowflake, reason string) error {
	if err := validate().id("channel_id", channelID).id("message_id", messageID).Err(); err != nil {
		return err
	}

	return c.FetchJJ(ctx, http.MethodDelete, EndpointChannelPin(channelID, messageID), nil, withReason(reason), nil)
}

func (c *Client) TriggerTypingIndicator(ctx context.Context, channelID discord.Snowflake) error {
	if err := validate().id("channel_id", channelID).Err(); err != nil {
		return err
	}

	return c.FetchJJ(ctx, http.MethodPost, EndpointChannelTyping(channelID), nil, nil, nil)
}

// reactionEmoji accepts a unicode emoji, name:id or the <:name:id> message form and
// returns it escaped for use in a path.
func reactionEmoji(emoji string) (string, error) {
	if emoji == "" {
		return "", discord.NewArgumentError("emoji", "must not be empty")
	}

	if strings.HasPrefix(emoji, "<") {
		parsed, err := discord.ParseEmoji(emoji)
		if err != nil {
			return "", err
		}

		return parsed.APIName(), nil
	}

	return url.PathEscape(emoji), nil
}

func (c *Client) CreateReaction(ctx context.Context, channelID, messageID discord.Snowflake, emoji string) error {
	if err := validate().id("channel_id", channelID).id("message_id", messageID).Err(); err != nil {
		return err
	}

	escaped, err := reactionEmoji(emoji)
	if err != nil {
		return err
	}

	return c.FetchJJ(ctx, http.MethodPut, EndpointChannelMessageReactionUser(channelID, messageID, escaped, "@me"), nil, nil, nil)
}

func (c *Client) DeleteOwnReaction(ctx context.Context, channelID, messageID discord.Snowflake, emoji string) error {
	if err := validate().id("channel_id", channelID).id("message_id", messageID).Err(); err != nil {
		return err
	}

	escaped, err := reactionEmoji(emoji)
	if err != nil {
		return err
	}

	return c.FetchJJ(ctx, http.MethodDelete, EndpointChannelMessageReactionUser(channelID, messageID, escaped, "@me"), nil, nil, nil)
}

func (c *Client) DeleteUserReaction(ctx context.Context, channelID, messageID discord.Snowflake, emoji string, userID discord.Snowflake) error {
	if err := validate().id("channel_id", channelID).id("message_id", messageID).id("user_id", userID).Err(); err != nil {
		return err
	}

	escaped, err := reactionEmoji(emoji)
	if err != nil {
		return err
	}

	return c.FetchJJ(ctx, http.MethodDelete, EndpointChannelMessageReactionUser(channelID, messageID, escaped, userID.String()), nil, nil, nil)
}

// GetReactions returns the users that reacted with emoji. Limit is 1-100.
func (c *Client) GetReactions(ctx context.Context, channelID, messageID discord.Snowflake, emoji string, params discord.ReactionsParams) ([]discord.User, error) {
	if err := validate().
		id("channel_id", channelID).
		id("message_id", messageID).
		between("limit", params.Limit, 1, 100, true).
		Err(); err != nil {
		return nil, err
	}

	escaped, err := reactionEmoji(emoji)
	if err != nil {
		return nil, err
	}

	endpoint := query{}.
		snowflake("after", params.After).
		int("limit", params.Limit).
		encode(EndpointChannelMessageReaction(channelID, messageID, escaped))

	var users []discord.User

	if err := c.FetchJJ(ctx, http.MethodGet, endpoint, nil, nil, &users); err != nil {
		return nil, err
	}

	return users, nil
}

func (c *Client) DeleteAllReactions(ctx context.Context, channelID, messageID discord.Snowflake) error {
	if err := validate().id("channel_id", channelID).id("message_id", messageID).Err(); err != nil {
		return err
	}

	return c.FetchJJ(ctx, http.MethodDelete, EndpointChannelMessageReactions(channelID, messageID), nil, nil, nil)
}

func (c *Client) DeleteAllReactionsForEmoji(ctx context.Context, channelID, messageID discord.Snowflake, emoji string) error {
	if err := validate().id("channel_id", channelID).id("message_id", messageID).Err(); err != nil {
		return err
	}

	escaped, err := reactionEmoji(emoji)
	if err != nil {
		return err
	}

	return c.FetchJJ(ctx, http.MethodDelete, EndpointChannelMessageReaction(channelID, messageID, escaped), nil, nil, nil)
}
