package blocks_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/blockmail/core/blocks"
)

func TestComponent(t *testing.T) {
	t.Parallel()

	doc := blocks.Document{
		Blocks:   []blocks.Block{paragraph("from templ")},
		Settings: baseSettings(),
	}

	var buf bytes.Buffer
	require.NoError(t, blocks.Component(doc).Render(context.Background(), &buf))
	assert.Equal(t, doc.Render(), buf.String())
}

func TestComponent_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	err := blocks.Component(blocks.Document{}).Render(ctx, &buf)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, buf.Len())
}
