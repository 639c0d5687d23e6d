package gateway

import (
	"context"

	"github.com/WelcomerTeam/Swyft/discord"
)

// SetPresence updates the bot's status with a single activity. activityKind is one
// of playing, streaming, listening, watching or competing.
func (s *Session) SetPresence(ctx context.Context, status discord.PresenceStatus, activityKind, activityName string) error {
	activity := discord.Activity{
		Name: activityName,
		Type: discord.ParseActivityType(activityKind),
	}

	return s.UpdatePresence(ctx, &discord.UpdateStatus{
		Status:     status,
		Game:       &activity,
		Activities: []discord.Activity{activity},
	})
}

// UpdatePresence sends a presence update. Nothing is sent when the socket is not open.
func (s *Session) UpdatePresence(ctx context.Context, us *discord.UpdateStatus) error {
	if !s.connected() {
		s.Logger.Warn().Msg("Cannot update presence while the session is not connected")

		return ErrNotConnected
	}

	if us.Activities == nil {
		us.Activities = []discord.Activity{}
	}

	s.Logger.Debug().Str("status", string(us.Status)).Msg("Sending update status")

	return s.SendEvent(ctx, discord.GatewayOpStatusUpdate, us)
}
