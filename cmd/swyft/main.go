package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/WelcomerTeam/Swyft"
	"github.com/WelcomerTeam/Swyft/cooldown"
	"github.com/WelcomerTeam/Swyft/discord"
	"github.com/WelcomerTeam/Swyft/gateway"
	"github.com/WelcomerTeam/Swyft/internal/config"
	"github.com/WelcomerTeam/Swyft/internal/status"
	"github.com/WelcomerTeam/Swyft/messaging"
	"github.com/WelcomerTeam/Swyft/rest"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
	"golang.org/x/text/cases"
)

const cooldownSweepInterval = time.Minute

func main() {
	configurationPath := flag.String("config", "swyft.yaml", "Path of the configuration file")
	flag.Parse()

	if err := run(*configurationPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configurationPath string) error {
	configuration, err := config.Load(configurationPath)
	if err != nil {
		return err
	}

	logger, logCloser, err := configuration.Logging.NewLogger(os.Stdout)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	intents, err := configuration.GatewayIntents()
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	presence := &discord.UpdateStatus{
		Status:     configuration.Presence.Status,
		Activities: presenceActivities(configuration.Presence),
	}
	if len(presence.Activities) > 0 {
		presence.Game = &presence.Activities[0]
	}

	bot := swyft.NewBot(configuration.Token, intents,
		swyft.WithLogger(logger),
		swyft.WithPartials(configuration.Partials...),
		swyft.WithSessionOptions(gateway.WithPresence(presence)),
	)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	registry.MustRegister(gateway.Collectors()...)
	registry.MustRegister(rest.Collectors()...)
	registry.MustRegister(messaging.Collectors()...)

	store, err := newCooldownStore(ctx, configuration.Cooldown, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	if configuration.Producer.Type != "" {
		forwarder, closeProducer, err := newForwarder(ctx, configuration.Producer, logger)
		if err != nil {
			return err
		}
		defer closeProducer()

		forwarder.Attach(bot.Session)

		go func() {
			if err := forwarder.Run(ctx); err != nil {
				logger.Error().Err(err).Msg("Forwarder stopped")
			}
		}()
	}

	if configuration.HTTP.Enabled {
		server := status.NewServer(bot.Session, registry, swyft.VERSION, logger)

		go func() {
			if err := server.ListenAndServe(ctx, configuration.HTTP.Host); err != nil {
				logger.Error().Err(err).Msg("Status server stopped")
			}
		}()
	}

	commands := newCommandHandler(ctx, bot, store, configuration.Prefix, configuration.Cooldown.Duration, logger)
	commands.register()

	bot.OnError(func(err error) {
		logger.Error().Err(err).Msg("Gateway error")
	})

	logger.Info().Str("version", swyft.VERSION).Msg("Starting swyft")

	if err := bot.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}

	select {
	case <-ctx.Done():
		logger.Info().Msg("Shutting down")

		_ = bot.Close()
		<-bot.Done()
	case <-bot.Done():
		logger.Warn().Msg("Gateway session closed")
	}

	return nil
}

func presenceActivities(presence config.PresenceConfiguration) []discord.Activity {
	if presence.ActivityName == "" {
		return []discord.Activity{}
	}

	return []discord.Activity{{
		Name: presence.ActivityName,
		Type: discord.ParseActivityType(cases.Fold().String(strings.TrimSpace(presence.ActivityType))),
	}}
}

func newCooldownStore(ctx context.Context, cooldownConfiguration config.CooldownConfiguration, logger zerolog.Logger) (cooldown.Store, error) {
	if cooldownConfiguration.Type == config.CooldownTypeRedis {
		store, err := cooldown.NewRedisStore(ctx, cooldown.RedisOptions{
			Address:  cooldownConfiguration.Address,
			Password: cooldownConfiguration.Password,
			Prefix:   cooldownConfiguration.Prefix,
			DB:       cooldownConfiguration.DB,
		}, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create redis cooldown store: %w", err)
		}

		return store, nil
	}

	store := cooldown.NewMemoryStore()

	go func() {
		ticker := time.NewTicker(cooldownSweepInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if swept := store.Sweep(); swept > 0 {
					logger.Debug().Int("swept", swept).Msg("Swept expired cooldowns")
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	return store, nil
}

func newForwarder(ctx context.Context, producer config.ProducerConfiguration, logger zerolog.Logger) (*messaging.Forwarder, func(), error) {
	client, err := messaging.NewMQClient(producer.Type)
	if err != nil {
		return nil, nil, err
	}

	args := make(map[string]interface{}, len(producer.Configuration)+1)
	for key, value := range producer.Configuration {
		args[key] = value
	}

	if messaging.GetEntry(args, "Channel") == nil {
		args["Channel"] = producer.Channel
	}

	hostname, _ := os.Hostname()
	clientName := "swyft-" + strings.ReplaceAll(hostname, ".", "-")

	if err := client.Connect(ctx, clientName, args); err != nil {
		return nil, nil, fmt.Errorf("failed to connect to %s: %w", client, err)
	}

	forwarder := messaging.NewForwarder(client, messaging.ForwarderOptions{
		Channel:    producer.Channel,
		EventTypes: producer.EventTypes,
		Blacklist:  producer.Blacklist,
		QueueSize:  producer.QueueSize,
	}, logger)

	return forwarder, func() {
		if err := client.Close(); err != nil {
			logger.Warn().Err(err).Msg("Failed to close producer")
		}
	}, nil
}
