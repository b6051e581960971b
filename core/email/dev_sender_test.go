package email_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/blockmail/core/email"
)

func TestDevSender_SendEmail(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "outbox")
	fixed := time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)
	sender := email.NewDevSender(dir, email.WithClock(func() time.Time { return fixed }))

	params := email.SendEmailParams{
		SendTo:   "user@example.com",
		Subject:  "Monthly digest",
		BodyHTML: "<html><body>digest</body></html>",
		Tag:      "Digest March",
	}
	require.NoError(t, sender.SendEmail(context.Background(), params))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	var htmlFile, jsonFile string
	for _, e := range entries {
		switch filepath.Ext(e.Name()) {
		case ".html":
			htmlFile = e.Name()
		case ".json":
			jsonFile = e.Name()
		}
	}
	require.NotEmpty(t, htmlFile)
	require.NotEmpty(t, jsonFile)
	assert.True(t, strings.HasPrefix(htmlFile, "2025_03_14_150926_digest_march_"), htmlFile)
	assert.Equal(t, strings.TrimSuffix(htmlFile, ".html"), strings.TrimSuffix(jsonFile, ".json"))

	body, err := os.ReadFile(filepath.Join(dir, htmlFile))
	require.NoError(t, err)
	assert.Equal(t, params.BodyHTML, string(body))

	raw, err := os.ReadFile(filepath.Join(dir, jsonFile))
	require.NoError(t, err)
	var env email.Envelope
	require.NoError(t, json.Unmarshal(raw, &env))
	assert.Equal(t, "user@example.com", env.SendTo)
	assert.Equal(t, "Monthly digest", env.Subject)
	assert.Equal(t, "Digest March", env.Tag)
	assert.Equal(t, htmlFile, env.BodyFile)
	assert.Equal(t, len(params.BodyHTML), env.BodyBytes)
	assert.True(t, fixed.Equal(env.SentAt))
	assert.Len(t, env.MessageID, 36)
}

func TestDevSender_SubjectFallback(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	sender := email.NewDevSender(dir)

	require.NoError(t, sender.SendEmail(context.Background(), email.SendEmailParams{
		SendTo:   "user@example.com",
		Subject:  "Welcome, friend!",
		BodyHTML: "<p>hi</p>",
	}))

	matches, err := filepath.Glob(filepath.Join(dir, "*_welcome_friend_*.html"))
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}

func TestDevSender_Errors(t *testing.T) {
	t.Parallel()

	t.Run("invalid params", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		err := email.NewDevSender(dir).SendEmail(context.Background(), email.SendEmailParams{})
		assert.ErrorIs(t, err, email.ErrInvalidParams)

		entries, _ := os.ReadDir(dir)
		assert.Empty(t, entries)
	})

	t.Run("canceled context", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := email.NewDevSender(t.TempDir()).SendEmail(ctx, email.SendEmailParams{
			SendTo: "user@example.com", Subject: "s", BodyHTML: "b",
		})
		assert.ErrorIs(t, err, email.ErrFailedToSendEmail)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("directory is a file", func(t *testing.T) {
		t.Parallel()
		file := filepath.Join(t.TempDir(), "occupied")
		require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

		err := email.NewDevSender(file).SendEmail(context.Background(), email.SendEmailParams{
			SendTo: "user@example.com", Subject: "s", BodyHTML: "b",
		})
		assert.ErrorIs(t, err, email.ErrFailedToSendEmail)
	})
}
