package rest

import (
	"context"
	"net/http"

	"github.com/WelcomerTeam/Swyft/discord"
)

func (c *Client) ListAutoModerationRules(ctx context.Context, guildID discord.Snowflake) ([]discord.AutoModerationRule, error) {
	if err := validate().id("guild_id", guildID).Err(); err != nil {
		return nil, err
	}

	var rules []discord.AutoModerationRule

	if err := c.FetchJJ(ctx, http.MethodGet, EndpointGuildAutoModerationRules(guildID), nil, nil, &rules); err != nil {
		return nil, err
	}

	return rules, nil
}

func (c *Client) GetAutoModerationRule(ctx context.Context, guildID, ruleID discord.Snowflake) (*discord.AutoModerationRule, error) {
	if err := validate().id("guild_id", guildID).id("rule_id", ruleID).Err(); err != nil {
		return nil, err
	}

	rule := &discord.AutoModerationRule{}

	if err := c.FetchJJ(ctx, http.MethodGet, EndpointGuildAutoModerationRule(guildID, ruleID), nil, nil, rule); err != nil {
		return nil, err
	}

	return rule, nil
}

func (c *Client) CreateAutoModerationRule(ctx context.Context, guildID discord.Snowflake, params discord.AutoModerationRuleParams, reason string) (*discord.AutoModerationRule, error) {
	if err := validate().
		id("guild_id", guildID).
		str("name", params.Name).
		check(params.EventType == discord.AutoModerationEventTypeMessageSend, "event_type", "must be message send").
		check(params.TriggerType != 0, "trigger_type", "is required").
		check(len(params.Actions) > 0, "actions", "at least one action is required").
		Err(); err != nil {
		return nil, err
	}

	rule := &discord.AutoModerationRule{}

	if err := c.FetchJJ(ctx, http.MethodPost, EndpointGuildAutoModerationRules(guildID), params, withReason(reason), rule); err != nil {
		return nil, err
	}

	return rule, nil
}

// ModifyAutoModerationRule updates a rule. The trigger type of a rule cannot be changed.
func (c *Client) ModifyAutoModerationRule(ctx context.Context, guildID, ruleID discord.Snowflake, params discord.AutoModerationRuleParams, reason string) (*discord.AutoModerationRule, error) {
	if err := validate().id("guild_id", guildID).id("rule_id", ruleID).Err(); err != nil {
		return nil, err
	}

	params.TriggerType = 0

	rule := &discord.AutoModerationRule{}

	if err := c.FetchJJ(ctx, http.MethodPatch, EndpointGuildAutoModerationRule(guildID, ruleID), params, withReason(reason), rule); err != nil {
		return nil, err
	}

	return rule, nil
}

func (c *Client) DeleteAutoModerationRule(ctx context.Context, guildID, ruleID discord.Snowflake, reason string) error {
	if err := validate().id("guild_id", guildID).id("rule_id", ruleID).Err(); err != nil {
		return err
	}

	return c.FetchJJ(ctx, http.MethodDelete, EndpointGuildAutoModerationRule(guildID, ruleID), nil, withReason(reason), nil)
}
