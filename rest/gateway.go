package rest

import (
	"context"
	"net/http"

	"github.com/WelcomerTeam/Swyft/discord"
)

// GetGateway returns the url to connect the gateway to.
func (c *Client) GetGateway(ctx context.Context) (*discord.GatewayResponse, error) {
	gateway := &discord.GatewayResponse{}

	if err := c.FetchJJ(ctx, http.MethodGet, EndpointGateway, nil, nil, gateway); err != nil {
		return nil, err
	}

	return gateway, nil
}
