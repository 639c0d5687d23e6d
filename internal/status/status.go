// Package status serves the daemon's status API and prometheus metrics over fasthttp.
package status

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/WelcomerTeam/Swyft/discord"
	"github.com/WelcomerTeam/Swyft/gateway"
	"github.com/WelcomerTeam/Swyft/swyftjson"
	"github.com/fasthttp/router"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
)

const contentTypeJSON = "application/json;charset=UTF-8"

// Session is the part of a gateway session the status API reports on.
type Session interface {
	Status() gateway.SessionStatus
	HeartbeatLatency() time.Duration
	CurrentGuildID() discord.Snowflake
}

// RestResponse is the envelope of every status API response.
type RestResponse struct {
	Response interface{} `json:"response,omitempty"`
	Error    string      `json:"error,omitempty"`
	Success  bool        `json:"success"`
}

type SessionStatus struct {
	Status           string            `json:"status"`
	Version          string            `json:"version"`
	StartedAt        time.Time         `json:"started_at"`
	Uptime           string            `json:"uptime"`
	HeartbeatLatency int64             `json:"heartbeat_latency_ms"`
	CurrentGuildID   discord.Snowflake `json:"current_guild_id,omitempty"`
}

type Server struct {
	Logger zerolog.Logger

	session   Session
	version   string
	startTime time.Time

	router *router.Router
}

// NewServer routes /api/status and /metrics. Metrics are read from gatherer.
func NewServer(session Session, gatherer prometheus.Gatherer, version string, logger zerolog.Logger) *Server {
	s := &Server{
		Logger:    logger.With().Str("component", "status").Logger(),
		session:   session,
		version:   version,
		startTime: time.Now().UTC(),
		router:    router.New(),
	}

	s.router.GET("/api/status", s.handleStatus)
	s.router.GET("/metrics", fasthttpadaptor.NewFastHTTPHandler(
		promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}),
	))
	s.router.NotFound = func(ctx *fasthttp.RequestCtx) {
		writeResponse(ctx, fasthttp.StatusNotFound, RestResponse{Error: "not found"})
	}

	return s
}

// HandleRequest handles any incoming HTTP request.
func (s *Server) HandleRequest(ctx *fasthttp.RequestCtx) {
	start := time.Now()

	defer func() {
		s.Logger.Debug().
			Str("remote", ctx.RemoteAddr().String()).
			Bytes("method", ctx.Method()).
			Bytes("path", ctx.Path()).
			Int("status", ctx.Response.StatusCode()).
			Dur("duration", time.Since(start)).
			Msg("Handled request")
	}()

	s.router.Handler(ctx)
}

// ListenAndServe serves on host until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context, host string) error {
	server := &fasthttp.Server{
		Handler: s.HandleRequest,
		Name:    "swyft",
	}

	errs := make(chan error, 1)

	go func() {
		s.Logger.Info().Str("host", host).Msg("Serving status")

		errs <- server.ListenAndServe(host)
	}()

	select {
	case err := <-errs:
		if err != nil {
			s.Logger.Error().Str("host", host).Err(err).Msg("Failed to serve status")

			return fmt.Errorf("failed to serve status: %w", err)
		}

		return nil
	case <-ctx.Done():
		if err := server.Shutdown(); err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("failed to shutdown status: %w", err)
		}

		return nil
	}
}

func (s *Server) handleStatus(ctx *fasthttp.RequestCtx) {
	writeResponse(ctx, fasthttp.StatusOK, RestResponse{
		Success: true,
		Response: SessionStatus{
			Status:           s.session.Status().String(),
			Version:          s.version,
			StartedAt:        s.startTime,
			Uptime:           time.Since(s.startTime).Round(time.Second).String(),
			HeartbeatLatency: s.session.HeartbeatLatency().Milliseconds(),
			CurrentGuildID:   s.session.CurrentGuildID(),
		},
	})
}

func writeResponse(ctx *fasthttp.RequestCtx, statusCode int, response RestResponse) {
	data, err := swyftjson.Marshal(response)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)

		return
	}

	ctx.SetStatusCode(statusCode)
	ctx.SetContentType(contentTypeJSON)
	ctx.SetBody(data)
}
