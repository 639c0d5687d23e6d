package swyft

import (
	"context"
	"fmt"
	"time"

	"github.com/WelcomerTeam/Swyft/discord"
	"github.com/WelcomerTeam/Swyft/gateway"
)

// SendMessage sends a plain text message to a channel.
func (b *Bot) SendMessage(ctx context.Context, channelID discord.Snowflake, content string) (*discord.Message, error) {
	return b.REST.CreateMessage(ctx, channelID, discord.MessageParams{Content: content})
}

// SendDM opens a direct message channel with the user and sends content to it.
func (b *Bot) SendDM(ctx context.Context, userID discord.Snowflake, content string) (*discord.Message, error) {
	if content == "" {
		return nil, discord.NewArgumentError("content", "content is required")
	}

	channel, err := b.REST.CreateDM(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to open dm channel: %w", err)
	}

	return b.SendMessage(ctx, channel.ID, content)
}

// DeleteMessages deletes the latest amount messages of a channel, up to 100, and
// returns how many were deleted. A single message is deleted directly, more are
// bulk deleted.
func (b *Bot) DeleteMessages(ctx context.Context, channelID discord.Snowflake, amount int, reason string) (int, error) {
	if channelID.IsNil() {
		return 0, discord.NewArgumentError("channelID", "channel id is required")
	}

	if amount < 1 || amount > 100 {
		return 0, discord.NewArgumentError("amount", "must be between 1 and 100")
	}

	messages, err := b.REST.GetChannelMessages(ctx, channelID, discord.MessagesParams{Limit: amount})
	if err != nil {
		return 0, fmt.Errorf("failed to fetch messages: %w", err)
	}

	switch len(messages) {
	case 0:
		return 0, nil
	case 1:
		if err := b.REST.DeleteMessage(ctx, channelID, messages[0].ID, reason); err != nil {
			return 0, err
		}

		return 1, nil
	}

	messageIDs := make([]discord.Snowflake, len(messages))
	for i, message := range messages {
		messageIDs[i] = message.ID
	}

	if err := b.REST.BulkDeleteMessages(ctx, channelID, messageIDs, reason); err != nil {
		return 0, err
	}

	return len(messageIDs), nil
}

// CollectMessages collects limit messages accepted by filter. See gateway.Session.Collect.
func (b *Bot) CollectMessages(ctx context.Context, filter func(*discord.Message) bool, limit int, timeout time.Duration) ([]*discord.Message, error) {
	if filter == nil {
		return nil, discord.NewArgumentError("filter", "filter is required")
	}

	// The filter runs on the event loop, which is the only writer of decoded.
	decoded := make(map[*gateway.Event]*discord.Message)

	events, err := b.Session.Collect(ctx, func(event *gateway.Event) bool {
		if event.Type != discord.EventMessageCreate {
			return false
		}

		var message discord.Message

		if err := event.Decode(&message); err != nil {
			b.Logger.Warn().Err(err).Msg("Failed to decode collected message")

			return false
		}

		if !filter(&message) {
			return false
		}

		decoded[event] = &message

		return true
	}, limit, timeout)
	if err != nil {
		return nil, err
	}

	messages := make([]*discord.Message, len(events))
	for i, event := range events {
		messages[i] = decoded[event]
	}

	return messages, nil
}

// Respond replies to an interaction with a message.
func (b *Bot) Respond(ctx context.Context, interaction *discord.Interaction, data discord.InteractionCallbackData) error {
	return b.REST.CreateInteractionResponse(ctx, interaction.ID, interaction.Token, discord.InteractionResponse{
		Type: discord.InteractionCallbackTypeChannelMessageSource,
		Data: &data,
	})
}

// ShowModal responds to an interaction with the modal built by modal.
func (b *Bot) ShowModal(ctx context.Context, interaction *discord.Interaction, modal *discord.ModalBuilder) error {
	response, err := modal.Build()
	if err != nil {
		return err
	}

	return b.REST.CreateInteractionResponse(ctx, interaction.ID, interaction.Token, response)
}
