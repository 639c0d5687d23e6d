package rest

import (
	"net/url"
	"strconv"

	"github.com/WelcomerTeam/Swyft/discord"
)

// validator collects the first failed precondition of a request.
type validator struct {
	err error
}

func (v *validator) id(argument string, id discord.Snowflake) *validator {
	if v.err == nil && id.IsNil() {
		v.err = discord.NewArgumentError(argument, "is required")
	}

	return v
}

func (v *validator) str(argument, value string) *validator {
	if v.err == nil && value == "" {
		v.err = discord.NewArgumentError(argument, "must not be empty")
	}

	return v
}

// between checks lo <= value <= hi. A zero value is allowed when optional is set.
func (v *validator) between(argument string, value, lo, hi int, optional bool) *validator {
	if v.err != nil || (optional && value == 0) {
		return v
	}

	if value < lo || value > hi {
		v.err = discord.NewArgumentError(argument, "must be between "+strconv.Itoa(lo)+" and "+strconv.Itoa(hi))
	}

	return v
}

func (v *validator) check(ok bool, argument, reason string) *validator {
	if v.err == nil && !ok {
		v.err = discord.NewArgumentError(argument, reason)
	}

	return v
}

func (v *validator) Err() error {
	return v.err
}

func validate() *validator {
	return &validator{}
}

// query builds an endpoint query string, skipping zero values.
type query url.Values

func (q query) snowflake(key string, value discord.Snowflake) query {
	if !value.IsNil() {
		url.Values(q).Set(key, value.String())
	}

	return q
}

func (q query) int(key string, value int) query {
	if value != 0 {
		url.Values(q).Set(key, strconv.Itoa(value))
	}

	return q
}

func (q query) str(key, value string) query {
	if value != "" {
		url.Values(q).Set(key, value)
	}

	return q
}

func (q query) encode(endpoint string) string {
	if len(q) == 0 {
		return endpoint
	}

	return endpoint + "?" + url.Values(q).Encode()
}
