// Package swyft ties a REST client and a gateway session together into a Bot.
package swyft

import (
	"context"

	"github.com/WelcomerTeam/Swyft/discord"
	"github.com/WelcomerTeam/Swyft/gateway"
	"github.com/WelcomerTeam/Swyft/rest"
	"github.com/rs/zerolog"
)

// VERSION follows semantic versioning.
const VERSION = "1.0.0"

// Bot is a single gateway session with the REST client that acts on its events.
type Bot struct {
	Logger zerolog.Logger

	REST    *rest.Client
	Session *gateway.Session
}

type botOptions struct {
	logger         zerolog.Logger
	partials       []string
	clientOptions  []rest.ClientOption
	sessionOptions []gateway.SessionOption
}

// BotOption configures a Bot.
type BotOption func(*botOptions)

func WithLogger(logger zerolog.Logger) BotOption {
	return func(o *botOptions) {
		o.logger = logger
	}
}

func WithPartials(partials ...string) BotOption {
	return func(o *botOptions) {
		o.partials = partials
	}
}

func WithClientOptions(opts ...rest.ClientOption) BotOption {
	return func(o *botOptions) {
		o.clientOptions = append(o.clientOptions, opts...)
	}
}

func WithSessionOptions(opts ...gateway.SessionOption) BotOption {
	return func(o *botOptions) {
		o.sessionOptions = append(o.sessionOptions, opts...)
	}
}

// NewBot creates a bot that authenticates both the gateway and REST with token.
func NewBot(token string, intents discord.GatewayIntent, opts ...BotOption) *Bot {
	options := &botOptions{
		logger: zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(options)
	}

	clientOptions := append([]rest.ClientOption{
		rest.WithLogger(options.logger),
		rest.WithUserAgent("DiscordBot (https://github.com/WelcomerTeam/Swyft, " + VERSION + ")"),
	}, options.clientOptions...)

	sessionOptions := append([]gateway.SessionOption{
		gateway.WithLogger(options.logger),
	}, options.sessionOptions...)

	b := &Bot{
		Logger:  options.logger.With().Str("component", "bot").Logger(),
		REST:    rest.NewClient(rest.BotToken(token), clientOptions...),
		Session: gateway.NewSession(token, intents, options.partials, sessionOptions...),
	}

	b.Session.Subscribe(discord.EventReady, b.onReady)

	return b
}

func (b *Bot) onReady(event *gateway.Event) {
	var ready discord.Ready

	if err := event.Decode(&ready); err != nil {
		b.Logger.Warn().Err(err).Msg("Failed to decode READY")

		return
	}

	if !ready.Application.ID.IsNil() {
		b.REST.SetApplicationID(ready.Application.ID)
	}

	b.Logger.Info().
		Str("username", ready.User.Username).
		Int("guilds", len(ready.Guilds)).
		Msg("Bot is ready")
}

// Connect connects the gateway session. See gateway.Session.Connect.
func (b *Bot) Connect(ctx context.Context) error {
	return b.Session.Connect(ctx)
}

func (b *Bot) Close() error {
	return b.Session.Close()
}

func (b *Bot) Done() <-chan struct{} {
	return b.Session.Done()
}

func (b *Bot) OnReady(fn func()) {
	b.Session.OnReady(fn)
}

func (b *Bot) OnError(fn func(error)) {
	b.Session.OnError(fn)
}

// OnMessage calls fn for every MESSAGE_CREATE that decodes.
func (b *Bot) OnMessage(fn func(message *discord.Message)) (unsubscribe func()) {
	return b.Session.Subscribe(discord.EventMessageCreate, func(event *gateway.Event) {
		var message discord.Message

		if err := event.Decode(&message); err != nil {
			b.Logger.Warn().Err(err).Msg("Failed to decode message")

			return
		}

		fn(&message)
	})
}

// OnInteraction calls fn for every INTERACTION_CREATE that decodes.
func (b *Bot) OnInteraction(fn func(interaction *discord.Interaction)) (unsubscribe func()) {
	return b.Session.Subscribe(discord.EventInteractionCreate, func(event *gateway.Event) {
		var interaction discord.Interaction

		if err := event.Decode(&interaction); err != nil {
			b.Logger.Warn().Err(err).Msg("Failed to decode interaction")

			return
		}

		fn(&interaction)
	})
}

// SetPresence updates the bot's status. See gateway.Session.SetPresence.
func (b *Bot) SetPresence(ctx context.Context, status discord.PresenceStatus, activityKind, activityName string) error {
	return b.Session.SetPresence(ctx, status, activityKind, activityName)
}
