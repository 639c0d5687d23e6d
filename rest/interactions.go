package rest

import (
	"context"
	"net/http"

	"github.com/WelcomerTeam/Swyft/discord"
)

// CreateInteractionResponse responds to an interaction, for example with a modal
// built by discord.ModalBuilder.
func (c *Client) CreateInteractionResponse(ctx context.Context, interactionID discord.Snowflake, token string, response discord.InteractionResponse) error {
	if err := validate().
		id("interaction_id", interactionID).
		str("token", token).
		check(response.Type != 0, "type", "is required").
		Err(); err != nil {
		return err
	}

	return c.FetchJJ(ctx, http.MethodPost, EndpointInteractionResponse(interactionID, token), response, nil, nil)
}
