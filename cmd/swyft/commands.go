package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/WelcomerTeam/Swyft"
	"github.com/WelcomerTeam/Swyft/cooldown"
	"github.com/WelcomerTeam/Swyft/discord"
	"github.com/rs/zerolog"
)

const commandTimeout = 30 * time.Second

// commandHandler answers prefixed message commands and the ping slash command.
type commandHandler struct {
	Logger zerolog.Logger

	ctx       context.Context
	bot       *swyft.Bot
	cooldowns cooldown.Store

	prefix   string
	duration time.Duration
}

func newCommandHandler(ctx context.Context, bot *swyft.Bot, cooldowns cooldown.Store, prefix string, duration time.Duration, logger zerolog.Logger) *commandHandler {
	return &commandHandler{
		Logger:    logger.With().Str("component", "commands").Logger(),
		ctx:       ctx,
		bot:       bot,
		cooldowns: cooldowns,
		prefix:    prefix,
		duration:  duration,
	}
}

func (h *commandHandler) register() {
	h.bot.OnReady(func() {
		go h.registerSlashCommands()
	})

	h.bot.OnMessage(func(message *discord.Message) {
		if message.Author.Bot || !strings.HasPrefix(message.Content, h.prefix) {
			return
		}

		go h.handleMessage(message)
	})

	h.bot.OnInteraction(func(interaction *discord.Interaction) {
		if interaction.Type != discord.InteractionTypeApplicationCommand || interaction.Data == nil {
			return
		}

		go h.handleInteraction(interaction)
	})
}

func (h *commandHandler) registerSlashCommands() {
	ctx, cancel := context.WithTimeout(h.ctx, commandTimeout)
	defer cancel()

	_, err := h.bot.RegisterCommands(ctx,
		discord.NewSlashCommandBuilder().SetName("ping").SetDescription("Shows the gateway latency"),
	)
	if err != nil {
		h.Logger.Error().Err(err).Msg("Failed to register commands")
	}
}

func (h *commandHandler) handleMessage(message *discord.Message) {
	ctx, cancel := context.WithTimeout(h.ctx, commandTimeout)
	defer cancel()

	arguments := strings.Fields(strings.TrimPrefix(message.Content, h.prefix))
	if len(arguments) == 0 {
		return
	}

	command := strings.ToLower(arguments[0])

	ok, remaining, err := h.cooldowns.Acquire(ctx, cooldown.Key(command, message.Author.ID), h.duration)
	if err != nil {
		h.Logger.Warn().Err(err).Str("command", command).Msg("Failed to check cooldown")

		return
	}

	if !ok {
		h.reply(ctx, message, fmt.Sprintf("Slow down, try again in %s.", remaining.Round(time.Second)))

		return
	}

	switch command {
	case "ping":
		h.reply(ctx, message, "Pong! "+h.bot.Session.HeartbeatLatency().Round(time.Millisecond).String())
	case "avatar":
		h.avatar(ctx, message)
	case "purge":
		h.purge(ctx, message, arguments[1:])
	default:
		_ = h.cooldowns.Reset(ctx, cooldown.Key(command, message.Author.ID))
	}
}

func (h *commandHandler) avatar(ctx context.Context, message *discord.Message) {
	user, err := h.bot.FirstMentionedUser(ctx, message)
	if err != nil {
		h.Logger.Warn().Err(err).Msg("Failed to fetch mentioned user")

		return
	}

	if user == nil {
		user = &message.Author
	}

	url, err := user.DisplayAvatarURL()
	if err != nil {
		h.reply(ctx, message, user.Username+" has no avatar.")

		return
	}

	h.reply(ctx, message, url)
}

func (h *commandHandler) purge(ctx context.Context, message *discord.Message, arguments []string) {
	amount := 10

	if len(arguments) > 0 {
		parsed, err := strconv.Atoi(arguments[0])
		if err != nil {
			h.reply(ctx, message, "Usage: "+h.prefix+"purge <1-100>")

			return
		}

		amount = parsed
	}

	deleted, err := h.bot.DeleteMessages(ctx, message.ChannelID, amount, "purge requested by "+message.Author.Username)
	if err != nil {
		h.reply(ctx, message, "Failed to purge: "+err.Error())

		return
	}

	h.Logger.Info().Int("deleted", deleted).Str("channel_id", message.ChannelID.String()).Msg("Purged messages")
}

func (h *commandHandler) handleInteraction(interaction *discord.Interaction) {
	ctx, cancel := context.WithTimeout(h.ctx, commandTimeout)
	defer cancel()

	if interaction.Data.Name != "ping" {
		return
	}

	err := h.bot.Respond(ctx, interaction, discord.InteractionCallbackData{
		Content: "Pong! " + h.bot.Session.HeartbeatLatency().Round(time.Millisecond).String(),
		Flags:   discord.MessageFlagEphemeral,
	})
	if err != nil {
		h.Logger.Warn().Err(err).Msg("Failed to respond to interaction")
	}
}

func (h *commandHandler) reply(ctx context.Context, message *discord.Message, content string) {
	if _, err := h.bot.SendMessage(ctx, message.ChannelID, content); err != nil {
		h.Logger.Warn().Err(err).Msg("Failed to reply")
	}
}
