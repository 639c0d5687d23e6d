package discord

import (
	"testing"

	"github.com/WelcomerTeam/Swyft/swyftjson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnowflakeJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Snowflake
	}{
		{"quoted", `"175928847299117063"`, 175928847299117063},
		{"unquoted", `175928847299117063`, 175928847299117063},
		{"null", `null`, 0},
		{"empty string", `""`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Snowflake

			require.NoError(t, swyftjson.Unmarshal([]byte(tt.in), &s))
			assert.Equal(t, tt.want, s)
		})
	}

	out, err := swyftjson.Marshal(Snowflake(42))
	require.NoError(t, err)
	assert.Equal(t, `"42"`, string(out))
}

func TestSnowflakeInvalid(t *testing.T) {
	var s Snowflake

	assert.Error(t, swyftjson.Unmarshal([]byte(`"abc"`), &s))
}

func TestSnowflakeTime(t *testing.T) {
	s := Snowflake(175928847299117063)

	assert.Equal(t, int64(1462015105796), s.Time().UnixMilli())
}

func TestTimestampMarshal(t *testing.T) {
	out, err := swyftjson.Marshal(Timestamp(""))
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))

	out, err = swyftjson.Marshal(Timestamp("2021-01-01T00:00:00Z"))
	require.NoError(t, err)
	assert.Equal(t, `"2021-01-01T00:00:00Z"`, string(out))
}

func TestParseIntents(t *testing.T) {
	intents, err := ParseIntents([]string{"guilds", "GUILD_MESSAGES", "message-content"})
	require.NoError(t, err)
	assert.Equal(t, IntentGuilds|IntentGuildMessages|IntentMessageContent, intents)
	assert.Equal(t, GatewayIntent(1|512|32768), intents)

	_, err = ParseIntents([]string{"nope"})
	assert.ErrorIs(t, err, ErrPrecondition)
}

func TestGatewayPayloadDecode(t *testing.T) {
	var payload GatewayPayload

	require.NoError(t, swyftjson.Unmarshal([]byte(`{"op":0,"t":"MESSAGE_CREATE","s":4,"d":{"content":"hi"}}`), &payload))
	assert.Equal(t, GatewayOpDispatch, payload.Op)
	assert.Equal(t, "MESSAGE_CREATE", payload.Type)
	require.NotNil(t, payload.Sequence)
	assert.Equal(t, int64(4), *payload.Sequence)
	assert.JSONEq(t, `{"content":"hi"}`, string(payload.Data))
}

func TestHeartbeatPayload(t *testing.T) {
	out, err := swyftjson.Marshal(SentPayload{Op: GatewayOpHeartbeat})
	require.NoError(t, err)
	assert.JSONEq(t, `{"op":1,"d":null}`, string(out))
}

func TestMentionedChannelIDs(t *testing.T) {
	m := Message{Content: "see <#123> and <#456>, not <@789>"}

	assert.Equal(t, []Snowflake{123, 456}, m.MentionedChannelIDs())
	assert.Empty(t, Message{Content: "nothing"}.MentionedChannelIDs())
}

func TestDisplayAvatarURL(t *testing.T) {
	avatar := "a_abcdef"
	u := User{ID: 10, Avatar: &avatar}

	url, err := u.DisplayAvatarURL()
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.discordapp.com/avatars/10/a_abcdef.gif", url)

	_, err = User{ID: 10}.DisplayAvatarURL()
	assert.ErrorIs(t, err, ErrPrecondition)
}

func TestEmojiAPIName(t *testing.T) {
	assert.Equal(t, "%F0%9F%91%8D", Emoji{Name: "👍"}.APIName())
	assert.Equal(t, "blob:12", Emoji{Name: "blob", ID: 12}.APIName())
}

func TestImageDataURI(t *testing.T) {
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

	uri, err := ImageDataURI(png)
	require.NoError(t, err)
	assert.Contains(t, uri, "data:image/png;base64,")

	_, err = ImageDataURI([]byte("plain text"))
	assert.ErrorIs(t, err, ErrUnsupportedImageType)
}

func TestParseActivityType(t *testing.T) {
	assert.Equal(t, ActivityTypeGame, ParseActivityType("playing"))
	assert.Equal(t, ActivityTypeStreaming, ParseActivityType("streaming"))
	assert.Equal(t, ActivityTypeListening, ParseActivityType("listening"))
	assert.Equal(t, ActivityTypeWatching, ParseActivityType("watching"))
	assert.Equal(t, ActivityTypeCompeting, ParseActivityType("competing"))

	// Names are matched exactly.
	assert.Equal(t, ActivityTypeGame, ParseActivityType("Streaming"))
	assert.Equal(t, ActivityTypeGame, ParseActivityType("WATCHING"))
	assert.Equal(t, ActivityTypeGame, ParseActivityType(" listening "))
	assert.Equal(t, ActivityTypeGame, ParseActivityType("Competing"))
	assert.Equal(t, ActivityTypeGame, ParseActivityType("dancing"))
	assert.Equal(t, ActivityTypeGame, ParseActivityType(""))
}

func TestWebhookURL(t *testing.T) {
	assert.Equal(t, "https://discord.com/api/webhooks/5/secret", Webhook{ID: 5, Token: "secret"}.URL())
	assert.Empty(t, Webhook{ID: 5}.URL())
}
