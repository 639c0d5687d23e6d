package discord

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/WelcomerTeam/Swyft/swyftjson"
)

const (
	MaxInt64        = 9007199254740991
	DiscordCreation = 1420070400000
)

var null = []byte("null")

// Snowflake is a discord ID. It is sent over the wire as a string.
type Snowflake int64

func (s Snowflake) IsNil() bool {
	return s == 0
}

func toSnowflake(b []byte, s *Snowflake) error {
	if bytes.Equal(b, null) || len(b) == 0 {
		*s = 0

		return nil
	}

	if b[0] == '"' && len(b) >= 2 {
		b = b[1 : len(b)-1]
	}

	if len(b) == 0 {
		*s = 0

		return nil
	}

	i, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return fmt.Errorf("failed to unmarshal snowflake: %w", err)
	}

	*s = Snowflake(i)

	return nil
}

func (s *Snowflake) UnmarshalJSON(b []byte) error {
	return toSnowflake(b, s)
}

func (s Snowflake) MarshalJSON() ([]byte, error) {
	return int64ToStringBytes(int64(s)), nil
}

func (s Snowflake) String() string {
	return strconv.FormatInt(int64(s), 10)
}

// Time returns the creation time of the Snowflake.
func (s Snowflake) Time() time.Time {
	nsec := (int64(s) >> 22) + DiscordCreation

	return time.Unix(0, nsec*int64(time.Millisecond))
}

// ParseSnowflake parses a decimal string ID.
func ParseSnowflake(s string) (Snowflake, error) {
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse snowflake %q: %w", s, err)
	}

	return Snowflake(i), nil
}

// Int64 is an int64 that accepts both quoted and unquoted json. Permission
// bitsets use it.
type Int64 int64

func (in *Int64) UnmarshalJSON(b []byte) error {
	var s Snowflake

	if err := toSnowflake(b, &s); err != nil {
		return err
	}

	*in = Int64(s)

	return nil
}

func (in Int64) MarshalJSON() ([]byte, error) {
	return int64ToStringBytes(int64(in)), nil
}

func (in Int64) String() string {
	return strconv.FormatInt(int64(in), 10)
}

func int64ToStringBytes(s int64) []byte {
	buf := make([]byte, 0, 24)

	buf = append(buf, '"')
	buf = strconv.AppendInt(buf, s, 10)
	buf = append(buf, '"')

	return buf
}

// Timestamp is an ISO8601 timestamp as sent by discord.
type Timestamp string

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t == "" {
		return null, nil
	}

	if _, err := time.Parse(time.RFC3339, string(t)); err != nil {
		return null, nil
	}

	return swyftjson.Marshal(string(t))
}

// Time parses the timestamp. A zero time is returned for empty or malformed values.
func (t Timestamp) Time() time.Time {
	parsed, err := time.Parse(time.RFC3339, string(t))
	if err != nil {
		return time.Time{}
	}

	return parsed
}

func NewTimestamp(t time.Time) Timestamp {
	return Timestamp(t.UTC().Format(time.RFC3339))
}
