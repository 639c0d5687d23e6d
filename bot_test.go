package swyft

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/WelcomerTeam/Swyft/discord"
	"github.com/WelcomerTeam/Swyft/gateway"
	"github.com/WelcomerTeam/Swyft/rest"
	"github.com/WelcomerTeam/Swyft/swyftjson"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTimeout = 2 * time.Second

type recordedRequest struct {
	Method string
	Path   string
	Body   string
}

// fakeDiscord serves canned REST responses by "METHOD /path" and records every request.
type fakeDiscord struct {
	mu        sync.Mutex
	requests  []recordedRequest
	responses map[string]interface{}
}

func (f *fakeDiscord) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	path := strings.TrimPrefix(r.URL.Path, "/"+rest.APIVersion)

	f.mu.Lock()
	f.requests = append(f.requests, recordedRequest{Method: r.Method, Path: path, Body: string(body)})
	response, ok := f.responses[r.Method+" "+path]
	f.mu.Unlock()

	if !ok || response == nil {
		w.WriteHeader(http.StatusNoContent)

		return
	}

	data, _ := swyftjson.Marshal(response)

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(data)
}

func (f *fakeDiscord) recorded() []recordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]recordedRequest{}, f.requests...)
}

func newTestBot(t *testing.T, responses map[string]interface{}, opts ...BotOption) (*Bot, *fakeDiscord) {
	t.Helper()

	fake := &fakeDiscord{responses: responses}

	server := httptest.NewServer(fake)
	t.Cleanup(server.Close)

	bot := NewBot("token", discord.IntentGuilds|discord.IntentGuildMessages,
		append([]BotOption{WithClientOptions(rest.WithBaseURL(server.URL), rest.WithApplicationID(99))}, opts...)...)

	return bot, fake
}

// startGateway serves a gateway that sends frames once it has read identify. When
// repeat is set the last frame is resent until the connection closes.
func startGateway(t *testing.T, repeat bool, frames ...string) string {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		upgrader := websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}

		closed := make(chan struct{})

		go func() {
			defer close(closed)

			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		for _, frame := range frames {
			if err := conn.WriteMessage(websocket.TextMessage, []byte(frame)); err != nil {
				return
			}
		}

		if !repeat || len(frames) == 0 {
			<-closed

			return
		}

		ticker := time.NewTicker(20 * time.Millisecond)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if err := conn.WriteMessage(websocket.TextMessage, []byte(frames[len(frames)-1])); err != nil {
					return
				}
			case <-closed:
				return
			}
		}
	}))
	t.Cleanup(server.Close)

	return "ws" + strings.TrimPrefix(server.URL, "http")
}

func connectBot(t *testing.T, bot *Bot) {
	t.Helper()

	require.NoError(t, bot.Connect(context.Background()))

	t.Cleanup(func() {
		_ = bot.Close()

		select {
		case <-bot.Done():
		case <-time.After(testTimeout):
			t.Error("bot did not close")
		}
	})
}

func TestDeleteMessages(t *testing.T) {
	bot, fake := newTestBot(t, map[string]interface{}{
		"GET /channels/5/messages": []discord.Message{{ID: 1}, {ID: 2}, {ID: 3}},
	})

	deleted, err := bot.DeleteMessages(context.Background(), 5, 3, "cleanup")
	require.NoError(t, err)
	assert.Equal(t, 3, deleted)

	requests := fake.recorded()
	require.Len(t, requests, 2)
	assert.Equal(t, "POST", requests[1].Method)
	assert.Equal(t, "/channels/5/messages/bulk-delete", requests[1].Path)
	assert.JSONEq(t, `{"messages":["1","2","3"]}`, requests[1].Body)
}

func TestDeleteSingleMessage(t *testing.T) {
	bot, fake := newTestBot(t, map[string]interface{}{
		"GET /channels/5/messages": []discord.Message{{ID: 9}},
	})

	deleted, err := bot.DeleteMessages(context.Background(), 5, 1, "")
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)

	requests := fake.recorded()
	require.Len(t, requests, 2)
	assert.Equal(t, "DELETE", requests[1].Method)
	assert.Equal(t, "/channels/5/messages/9", requests[1].Path)
}

func TestDeleteMessagesEmptyChannel(t *testing.T) {
	bot, fake := newTestBot(t, map[string]interface{}{
		"GET /channels/5/messages": []discord.Message{},
	})

	deleted, err := bot.DeleteMessages(context.Background(), 5, 10, "")
	require.NoError(t, err)
	assert.Zero(t, deleted)
	assert.Len(t, fake.recorded(), 1)
}

func TestDeleteMessagesPreconditions(t *testing.T) {
	bot, fake := newTestBot(t, nil)

	_, err := bot.DeleteMessages(context.Background(), 0, 2, "")
	assert.ErrorIs(t, err, discord.ErrPrecondition)

	_, err = bot.DeleteMessages(context.Background(), 5, 0, "")
	assert.ErrorIs(t, err, discord.ErrPrecondition)

	_, err = bot.DeleteMessages(context.Background(), 5, 101, "")
	assert.ErrorIs(t, err, discord.ErrPrecondition)

	assert.Empty(t, fake.recorded())
}

func TestSendDM(t *testing.T) {
	bot, fake := newTestBot(t, map[string]interface{}{
		"POST /users/@me/channels":   discord.Channel{ID: 77},
		"POST /channels/77/messages": discord.Message{ID: 1, Content: "hello"},
	})

	message, err := bot.SendDM(context.Background(), 42, "hello")
	require.NoError(t, err)
	assert.Equal(t, "hello", message.Content)

	requests := fake.recorded()
	require.Len(t, requests, 2)
	assert.JSONEq(t, `{"recipient_id":"42"}`, requests[0].Body)
	assert.Equal(t, "/channels/77/messages", requests[1].Path)

	_, err = bot.SendDM(context.Background(), 42, "")
	assert.ErrorIs(t, err, discord.ErrPrecondition)
}

func TestMentions(t *testing.T) {
	guildID := discord.Snowflake(20)

	bot, _ := newTestBot(t, map[string]interface{}{
		"GET /users/1":             discord.User{ID: 1, Username: "first"},
		"GET /users/2":             discord.User{ID: 2, Username: "second"},
		"GET /guilds/20/members/1": discord.GuildMember{Nick: "one"},
		"GET /guilds/20/members/2": discord.GuildMember{Nick: "two"},
		"GET /guilds/20/roles":     []discord.Role{{ID: 30, Name: "mods"}, {ID: 31, Name: "admins"}},
		"GET /channels/40":         discord.Channel{ID: 40, Name: "general"},
		"GET /channels/41":         discord.Channel{ID: 41, Name: "random"},
	})

	message := &discord.Message{
		GuildID:      &guildID,
		Content:      "see <#40> and <#41>",
		Mentions:     []discord.User{{ID: 1}, {ID: 2}},
		MentionRoles: []discord.Snowflake{31, 32},
	}

	ctx := context.Background()

	users, err := bot.MentionedUsers(ctx, message)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "first", users[0].Username)

	last, err := bot.LastMentionedUser(ctx, message)
	require.NoError(t, err)
	assert.Equal(t, "second", last.Username)

	members, err := bot.MentionedMembers(ctx, message)
	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, "two", members[1].Nick)

	first, err := bot.FirstMentionedMember(ctx, message)
	require.NoError(t, err)
	assert.Equal(t, "one", first.Nick)

	roles, err := bot.MentionedRoles(ctx, message)
	require.NoError(t, err)
	require.Len(t, roles, 1)
	assert.Equal(t, "admins", roles[0].Name)

	channels, err := bot.MentionedChannels(ctx, message)
	require.NoError(t, err)
	require.Len(t, channels, 2)
	assert.Equal(t, "random", channels[1].Name)

	channel, err := bot.FirstMentionedChannel(ctx, message)
	require.NoError(t, err)
	assert.Equal(t, "general", channel.Name)

	none, err := bot.FirstMentionedUser(ctx, &discord.Message{})
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestCurrentGuildRequired(t *testing.T) {
	bot, fake := newTestBot(t, nil)

	assert.ErrorIs(t, bot.KickMember(context.Background(), 5, ""), discord.ErrPrecondition)

	_, err := bot.CreateRole(context.Background(), discord.RoleParams{}, "")
	assert.ErrorIs(t, err, discord.ErrPrecondition)

	_, err = bot.MentionedMembers(context.Background(), &discord.Message{Mentions: []discord.User{{ID: 1}}})
	assert.ErrorIs(t, err, discord.ErrPrecondition)

	assert.Empty(t, fake.recorded())
}

func TestCurrentGuildShortcuts(t *testing.T) {
	gatewayURL := startGateway(t, false,
		`{"op":0,"t":"MESSAGE_CREATE","s":1,"d":{"id":"1","channel_id":"10","guild_id":"20","content":"!kick"}}`,
	)

	bot, fake := newTestBot(t, nil, WithSessionOptions(gateway.WithGatewayURL(gatewayURL)))

	received := make(chan *discord.Message, 1)
	bot.OnMessage(func(message *discord.Message) { received <- message })

	connectBot(t, bot)

	select {
	case message := <-received:
		assert.Equal(t, "!kick", message.Content)
	case <-time.After(testTimeout):
		t.Fatal("timed out waiting for message")
	}

	ctx := context.Background()

	require.NoError(t, bot.KickMember(ctx, 5, "bye"))
	require.NoError(t, bot.AddRoleToMember(ctx, 5, 30, ""))
	require.NoError(t, bot.BanMember(ctx, 5, 60, ""))
	require.NoError(t, bot.SetChannelPosition(ctx, 10, 2))

	requests := fake.recorded()
	require.Len(t, requests, 4)
	assert.Equal(t, recordedRequest{Method: "DELETE", Path: "/guilds/20/members/5"}, requests[0])
	assert.Equal(t, "/guilds/20/members/5/roles/30", requests[1].Path)
	assert.Equal(t, "/guilds/20/bans/5", requests[2].Path)
	assert.JSONEq(t, `{"delete_message_seconds":60}`, requests[2].Body)
	assert.Equal(t, "PATCH", requests[3].Method)
	assert.JSONEq(t, `[{"id":"10","position":2}]`, requests[3].Body)
}

func TestCollectMessages(t *testing.T) {
	gatewayURL := startGateway(t, true,
		`{"op":0,"t":"TYPING_START","s":1,"d":{"channel_id":"10"}}`,
		`{"op":0,"t":"MESSAGE_CREATE","s":2,"d":{"id":"1","channel_id":"10","content":"yes"}}`,
	)

	bot, _ := newTestBot(t, nil, WithSessionOptions(gateway.WithGatewayURL(gatewayURL)))

	_, err := bot.CollectMessages(context.Background(), func(*discord.Message) bool { return true }, 1, time.Second)
	assert.ErrorIs(t, err, gateway.ErrNotConnected)

	_, err = bot.CollectMessages(context.Background(), nil, 1, time.Second)
	assert.ErrorIs(t, err, discord.ErrPrecondition)

	connectBot(t, bot)

	messages, err := bot.CollectMessages(context.Background(), func(message *discord.Message) bool {
		return message.Content == "yes"
	}, 2, testTimeout)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "yes", messages[0].Content)
	assert.Equal(t, discord.Snowflake(10), messages[1].ChannelID)
}

func TestRegisterCommands(t *testing.T) {
	bot, fake := newTestBot(t, map[string]interface{}{
		"PUT /applications/99/commands": []discord.ApplicationCommand{{Name: "ping"}},
	})

	commands, err := bot.RegisterCommands(context.Background(),
		discord.NewSlashCommandBuilder().SetName("ping").SetDescription("Checks the bot is alive"),
	)
	require.NoError(t, err)
	require.Len(t, commands, 1)

	_, err = bot.RegisterCommands(context.Background(), discord.NewSlashCommandBuilder().SetName("Bad Name"))
	assert.ErrorIs(t, err, discord.ErrPrecondition)

	_, err = bot.RegisterUserCommand(context.Background(), "Inspect")
	require.NoError(t, err)

	requests := fake.recorded()
	require.Len(t, requests, 2)
	assert.Equal(t, "POST", requests[1].Method)
	assert.Equal(t, "/applications/99/commands", requests[1].Path)
	assert.JSONEq(t, `{"name":"Inspect","type":2}`, requests[1].Body)
}

func TestShowModal(t *testing.T) {
	bot, fake := newTestBot(t, nil)

	interaction := &discord.Interaction{ID: 3, Token: "tok"}

	textInput, err := discord.NewTextInputBuilder().SetCustomID("text").SetLabel("Text").SetStyle("paragraph").Build()
	require.NoError(t, err)

	modal := discord.NewModalBuilder().
		SetCustomID("feedback").
		SetTitle("Feedback").
		AddComponent(textInput)

	require.NoError(t, bot.ShowModal(context.Background(), interaction, modal))

	requests := fake.recorded()
	require.Len(t, requests, 1)
	assert.Equal(t, "/interactions/3/tok/callback", requests[0].Path)
	assert.Equal(t, float64(9), swyftjson.Get([]byte(requests[0].Body), "type").ToFloat64())
}
