package postmark_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/blockmail/core/email"
	"github.com/dmitrymomot/blockmail/integration/email/postmark"
)

func validConfig() postmark.Config {
	return postmark.Config{
		PostmarkServerToken:  "server-token",
		PostmarkAccountToken: "account-token",
		MessageStream:        "outbound",
		SenderEmail:          "sender@example.com",
		SupportEmail:         "support@example.com",
	}
}

func TestNew_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*postmark.Config)
		errMsg string
	}{
		{name: "valid", mutate: func(*postmark.Config) {}},
		{name: "no server token", mutate: func(c *postmark.Config) { c.PostmarkServerToken = "" }, errMsg: "PostmarkServerToken is required"},
		{name: "no account token", mutate: func(c *postmark.Config) { c.PostmarkAccountToken = "" }, errMsg: "PostmarkAccountToken is required"},
		{name: "bad sender", mutate: func(c *postmark.Config) { c.SenderEmail = "nope" }, errMsg: "SenderEmail must be a valid email address"},
		{name: "bad support", mutate: func(c *postmark.Config) { c.SupportEmail = "" }, errMsg: "SupportEmail must be a valid email address"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			tt.mutate(&cfg)

			client, err := postmark.New(cfg)
			if tt.errMsg == "" {
				require.NoError(t, err)
				assert.NotNil(t, client)
				return
			}
			assert.Nil(t, client)
			assert.ErrorIs(t, err, email.ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}

	assert.Panics(t, func() { postmark.MustNewClient(postmark.Config{}) })
}

type recordedEmail struct {
	From          string
	To            string
	ReplyTo       string
	Subject       string
	Tag           string
	HTMLBody      string
	TrackOpens    bool
	TrackLinks    string
	MessageStream string
}

func TestClient_SendEmail(t *testing.T) {
	t.Parallel()

	var (
		mu       sync.Mutex
		received recordedEmail
		token    string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		token = r.Header.Get("X-Postmark-Server-Token")
		_ = json.NewDecoder(r.Body).Decode(&received)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"To":"user@example.com","MessageID":"abc","ErrorCode":0,"Message":"OK"}`))
	}))
	t.Cleanup(srv.Close)

	client, err := postmark.New(validConfig(), postmark.WithBaseURL(srv.URL), postmark.WithHTTPClient(srv.Client()))
	require.NoError(t, err)

	err = client.SendEmail(context.Background(), email.SendEmailParams{
		SendTo:   "user@example.com",
		Subject:  "Monthly digest",
		BodyHTML: "<p>digest</p>",
		Tag:      "digest",
	})
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, "server-token", token)
	assert.Equal(t, "sender@example.com", received.From)
	assert.Equal(t, "support@example.com", received.ReplyTo)
	assert.Equal(t, "user@example.com", received.To)
	assert.Equal(t, "digest", received.Tag)
	assert.Equal(t, "<p>digest</p>", received.HTMLBody)
	assert.True(t, received.TrackOpens)
	assert.Equal(t, "HtmlOnly", received.TrackLinks)
	assert.Equal(t, "outbound", received.MessageStream)
}

func TestClient_SendEmail_Errors(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"ErrorCode":300,"Message":"Invalid email request"}`))
	}))
	t.Cleanup(srv.Close)

	client, err := postmark.New(validConfig(), postmark.WithBaseURL(srv.URL))
	require.NoError(t, err)

	t.Run("invalid params", func(t *testing.T) {
		t.Parallel()
		err := client.SendEmail(context.Background(), email.SendEmailParams{SendTo: "invalid"})
		assert.ErrorIs(t, err, email.ErrInvalidParams)
	})

	t.Run("api error", func(t *testing.T) {
		t.Parallel()
		err := client.SendEmail(context.Background(), email.SendEmailParams{
			SendTo:   "user@example.com",
			Subject:  "Hello",
			BodyHTML: "<p>x</p>",
		})
		assert.ErrorIs(t, err, email.ErrFailedToSendEmail)
	})
}
