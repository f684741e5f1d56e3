package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/groovehire/backend/internal/service/chat"
	"github.com/groovehire/backend/internal/service/simulator"
)

func TestRunChatPlainTranscript(t *testing.T) {
	svc := chat.NewService(chat.Options{})
	conv, err := svc.Create(context.Background())
	require.NoError(t, err)

	var out bytes.Buffer
	in := strings.NewReader("1\n\nbanana\nquit\nignored after quit\n")

	require.NoError(t, runChat(context.Background(), in, &out, conv, false))

	transcript := out.String()
	assert.Contains(t, transcript, "GrooveHire: "+simulator.Greeting)
	assert.Contains(t, transcript, "Quick replies: [1] Plumbing")
	assert.Contains(t, transcript, "You: Plumbing")
	assert.Contains(t, transcript, "You: banana")
	assert.Contains(t, transcript, "GrooveHire: "+simulator.Fallback)
	assert.NotContains(t, transcript, "ignored after quit")

	var userTexts []string
	for _, entry := range conv.Entries() {
		if !entry.IsBot() {
			userTexts = append(userTexts, entry.Text)
		}
	}
	assert.Equal(t, []string{"Plumbing", "banana"}, userTexts)
	assert.Equal(t, 5, conv.Len())
}

func TestLoadSimulatorDefault(t *testing.T) {
	sim, err := loadSimulator("")
	require.NoError(t, err)
	assert.Equal(t, simulator.Fallback, sim.FallbackReply())
}
