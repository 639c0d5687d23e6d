package rest

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/WelcomerTeam/Swyft/discord"
	"github.com/WelcomerTeam/Swyft/swyftjson"
	"github.com/rs/zerolog"
	"go.uber.org/atomic"
	"golang.org/x/oauth2"
)

const (
	APIVersion      = "v10"
	EndpointDiscord = "https://discord.com/api"
	UserAgent       = "DiscordBot (github.com/WelcomerTeam/Swyft, 1.0)"
)

// Authorizer returns the value of the Authorization header of every request.
type Authorizer interface {
	Authorization(ctx context.Context) (string, error)
}

type botToken string

// BotToken authorizes requests as a bot.
func BotToken(token string) Authorizer {
	return botToken(token)
}

func (t botToken) Authorization(context.Context) (string, error) {
	if t == "" {
		return "", discord.NewArgumentError("token", "is required")
	}

	return "Bot " + string(t), nil
}

type oauth2Authorizer struct {
	source oauth2.TokenSource
}

// OAuth2 authorizes requests with a bearer token taken from the token source.
// The source is expected to refresh tokens itself.
func OAuth2(source oauth2.TokenSource) Authorizer {
	return oauth2Authorizer{source: source}
}

func (o oauth2Authorizer) Authorization(context.Context) (string, error) {
	if o.source == nil {
		return "", discord.NewArgumentError("token", "token source is required")
	}

	token, err := o.source.Token()
	if err != nil {
		return "", &discord.TransportError{Op: "oauth2 token", Err: err}
	}

	if token.AccessToken == "" {
		return "", discord.NewArgumentError("token", "access token is empty")
	}

	return token.Type() + " " + token.AccessToken, nil
}

// Client issues authenticated requests to discord. It does not handle rate limiting
// and never retries; a 429 is returned as a *discord.RateLimitError.
type Client struct {
	HTTP       *http.Client
	Logger     zerolog.Logger
	credential Authorizer

	BaseURL    string
	APIVersion string
	UserAgent  string

	applicationID *atomic.Int64
}

type ClientOption func(*Client)

func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.HTTP = httpClient
	}
}

// WithBaseURL overrides https://discord.com/api. The API version is appended to it.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.BaseURL = strings.TrimSuffix(baseURL, "/")
	}
}

func WithUserAgent(userAgent string) ClientOption {
	return func(c *Client) {
		c.UserAgent = userAgent
	}
}

func WithLogger(logger zerolog.Logger) ClientOption {
	return func(c *Client) {
		c.Logger = logger.With().Str("component", "rest").Logger()
	}
}

// WithApplicationID sets the application used by the application command routes.
// When unset it is resolved from the current user on first use.
func WithApplicationID(applicationID discord.Snowflake) ClientOption {
	return func(c *Client) {
		c.applicationID.Store(int64(applicationID))
	}
}

func NewClient(credential Authorizer, opts ...ClientOption) *Client {
	c := &Client{
		HTTP: &http.Client{
			Timeout: 20 * time.Second,
		},
		Logger:        zerolog.Nop(),
		credential:    credential,
		BaseURL:       EndpointDiscord,
		APIVersion:    APIVersion,
		UserAgent:     UserAgent,
		applicationID: atomic.NewInt64(0),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Fetch constructs a request. It will return a response body along with any errors.
// Errors can include discord.ErrUnauthorized, *discord.RateLimitError, *discord.RestError
// and *discord.TransportError.
func (c *Client) Fetch(ctx context.Context, method, endpoint, contentType string, body []byte, headers http.Header) ([]byte, error) {
	if c.credential == nil {
		return nil, discord.NewArgumentError("token", "is required")
	}

	authorization, err := c.credential.Authorization(ctx)
	if err != nil {
		return nil, err
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+"/"+c.APIVersion+endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create new request: %w", err)
	}

	for name, values := range headers {
		for _, value := range values {
			req.Header.Add(name, value)
		}
	}

	if body != nil && len(req.Header.Get("Content-Type")) == 0 {
		req.Header.Set("Content-Type", contentType)
	}

	req.Header.Set("Authorization", authorization)
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Accept", "application/json")

	start := time.Now()

	resp, err := c.HTTP.Do(req)
	if err != nil {
		restRequests.WithLabelValues(method, "error").Inc()

		return nil, &discord.TransportError{Op: method + " " + req.URL.Path, Err: err}
	}

	defer resp.Body.Close()

	response, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &discord.TransportError{Op: "read " + req.URL.Path, Err: err}
	}

	restRequests.WithLabelValues(method, strconv.Itoa(resp.StatusCode)).Inc()
	restRequestDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())

	c.Logger.Trace().
		Str("method", method).
		Str("url", req.URL.String()).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("Request completed")

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusCreated:
	case http.StatusNoContent:
	case http.StatusUnauthorized:
		return response, discord.ErrUnauthorized
	case http.StatusTooManyRequests:
		rateLimit := discord.NewRateLimitError(resp, response)

		c.Logger.Warn().
			Str("url", req.URL.Path).
			Dur("retry_after", rateLimit.RetryAfter).
			Bool("global", rateLimit.Global).
			Msg("Hit rate limit")

		return response, rateLimit
	default:
		return response, discord.NewRestError(req, resp, response)
	}

	return response, nil
}

// FetchBJ sends a raw body and decodes the json response into response, if not nil.
func (c *Client) FetchBJ(ctx context.Context, method, endpoint, contentType string, body []byte, headers http.Header, response interface{}) error {
	resp, err := c.Fetch(ctx, method, endpoint, contentType, body, headers)
	if err != nil {
		return err
	}

	if response != nil && len(resp) > 0 {
		err = swyftjson.Unmarshal(resp, response)
		if err != nil {
			return fmt.Errorf("failed to unmarshal response: %w", err)
		}
	}

	return nil
}

// FetchJJ sends payload as json and decodes the json response into response, if not nil.
func (c *Client) FetchJJ(ctx context.Context, method, endpoint string, payload interface{}, headers http.Header, response interface{}) error {
	var body []byte
	var err error

	if payload != nil {
		body, err = swyftjson.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal payload: %w", err)
		}
	}

	return c.FetchBJ(ctx, method, endpoint, "application/json", body, headers, response)
}

// FetchMultipart sends payload as the payload_json part followed by every file as files[n].
func (c *Client) FetchMultipart(ctx context.Context, method, endpoint string, payload interface{}, files []discord.File, headers http.Header, response interface{}) error {
	payloadJSON, err := swyftjson.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreatePart(textproto.MIMEHeader{
		"Content-Disposition": {`form-data; name="payload_json"`},
		"Content-Type":        {"application/json"},
	})
	if err != nil {
		return fmt.Errorf("failed to create payload part: %w", err)
	}

	if _, err = part.Write(payloadJSON); err != nil {
		return fmt.Errorf("failed to write payload part: %w", err)
	}

	for i, file := range files {
		if err = writeFilePart(writer, "files["+strconv.Itoa(i)+"]", file); err != nil {
			return err
		}
	}

	if err = writer.Close(); err != nil {
		return fmt.Errorf("failed to close multipart writer: %w", err)
	}

	return c.FetchBJ(ctx, method, endpoint, writer.FormDataContentType(), body.Bytes(), headers, response)
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func writeFilePart(writer *multipart.Writer, field string, file discord.File) error {
	if file.Reader == nil {
		return discord.NewArgumentError("files", "file "+file.Name+" has no reader")
	}

	contentType := file.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	part, err := writer.CreatePart(textproto.MIMEHeader{
		"Content-Disposition": {fmt.Sprintf(`form-data; name="%s"; filename="%s"`, field, quoteEscaper.Replace(file.Name))},
		"Content-Type":        {contentType},
	})
	if err != nil {
		return fmt.Errorf("failed to create file part: %w", err)
	}

	if _, err = io.Copy(part, file.Reader); err != nil {
		return fmt.Errorf("failed to write file part: %w", err)
	}

	return nil
}

// withReason sets the audit log reason of a request.
func withReason(reason string) http.Header {
	if reason == "" {
		return nil
	}

	return http.Header{"X-Audit-Log-Reason": {url.PathEscape(reason)}}
}

// ApplicationID returns the application used by the application command routes.
func (c *Client) ApplicationID(ctx context.Context) (discord.Snowflake, error) {
	if id := c.applicationID.Load(); id != 0 {
		return discord.Snowflake(id), nil
	}

	user, err := c.GetCurrentUser(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to resolve application id: %w", err)
	}

	c.applicationID.Store(int64(user.ID))

	return user.ID, nil
}

// SetApplicationID replaces the cached application id, for example with the one
// received in READY.
func (c *Client) SetApplicationID(applicationID discord.Snowflake) {
	c.applicationID.Store(int64(applicationID))
}
