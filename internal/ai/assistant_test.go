package ai

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlankTopicShortCircuits(t *testing.T) {
	var a *Assistant // nil assistant: the topic check must still run first

	_, err := a.GenerateIdeaText(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrEmptyTopic)

	_, err = a.GenerateIdeaStructured(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmptyTopic)
}

func TestNilAssistantReportsNotConfigured(t *testing.T) {
	var a *Assistant

	_, err := a.GenerateIdeaText(context.Background(), "smart agriculture")
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = a.GenerateIdeaStructured(context.Background(), "smart agriculture")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestNewAssistantRequiresAPIKey(t *testing.T) {
	_, err := NewAssistant(context.Background(), "", "")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestFallbackStringsDistinguishFailureModes(t *testing.T) {
	assert.Equal(t, MsgEmptyTopic, FallbackFor(ErrEmptyTopic))
	assert.Equal(t, MsgNotConfigured, FallbackFor(ErrNotConfigured))
	assert.Equal(t, MsgGenerationFailed, FallbackFor(errors.New("connection reset")))
}

func TestPromptsEmbedTopic(t *testing.T) {
	assert.True(t, strings.Contains(ideaPrompt("drone swarm"), "drone swarm"))
	assert.True(t, strings.Contains(structuredPrompt("drone swarm"), "drone swarm"))
	assert.True(t, strings.Contains(structuredPrompt("x"), `"title"`))
}
