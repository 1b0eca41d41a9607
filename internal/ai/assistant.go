package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const defaultModel = "gemini-2.0-flash"

var (
	// ErrNotConfigured means no API key was provided; callers degrade to a
	// "misconfigured" message instead of a generic failure.
	ErrNotConfigured = errors.New("idea assistant is not configured")
	ErrEmptyTopic    = errors.New("topic is empty")
)

// User-safe fallback strings. Handlers return these instead of raw errors so
// a model outage never reaches the storefront as an exception.
const (
	MsgEmptyTopic       = "Please enter a topic to generate project ideas."
	MsgNotConfigured    = "The idea assistant is not set up right now. Please contact us directly for project suggestions."
	MsgGenerationFailed = "Could not generate an idea right now. Please try again in a moment."
)

// Idea is the structured output shape used by the guided idea flow.
type Idea struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Assistant wraps the hosted Gemini model behind two prompt templates. A nil
// Assistant is valid and reports ErrNotConfigured from every call.
type Assistant struct {
	client *genai.Client
	model  string
}

func NewAssistant(ctx context.Context, apiKey, model string) (*Assistant, error) {
	if apiKey == "" {
		return nil, ErrNotConfigured
	}
	if model == "" {
		model = defaultModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return &Assistant{client: client, model: model}, nil
}

// GenerateIdeaText returns a prose idea for the topic. A blank topic
// short-circuits before any model call.
func (a *Assistant) GenerateIdeaText(ctx context.Context, topic string) (string, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return "", ErrEmptyTopic
	}
	if a == nil || a.client == nil {
		return "", ErrNotConfigured
	}

	resp, err := a.client.Models.GenerateContent(ctx, a.model, genai.Text(ideaPrompt(topic)), nil)
	if err != nil {
		return "", fmt.Errorf("generate idea: %w", err)
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", errors.New("model returned an empty response")
	}
	return text, nil
}

// GenerateIdeaStructured returns a {title, description} pair for the topic,
// using the model's JSON response mode.
func (a *Assistant) GenerateIdeaStructured(ctx context.Context, topic string) (Idea, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return Idea{}, ErrEmptyTopic
	}
	if a == nil || a.client == nil {
		return Idea{}, ErrNotConfigured
	}

	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	}
	resp, err := a.client.Models.GenerateContent(ctx, a.model, genai.Text(structuredPrompt(topic)), cfg)
	if err != nil {
		return Idea{}, fmt.Errorf("generate structured idea: %w", err)
	}

	var idea Idea
	if err := json.Unmarshal([]byte(resp.Text()), &idea); err != nil {
		return Idea{}, fmt.Errorf("parse structured idea: %w", err)
	}
	if idea.Title == "" && idea.Description == "" {
		return Idea{}, errors.New("model returned an empty idea")
	}
	return idea, nil
}

// FallbackFor maps an assistant error to the string shown to the user,
// distinguishing a misconfigured service from a generic failure.
func FallbackFor(err error) string {
	switch {
	case errors.Is(err, ErrEmptyTopic):
		return MsgEmptyTopic
	case errors.Is(err, ErrNotConfigured):
		return MsgNotConfigured
	default:
		return MsgGenerationFailed
	}
}

func ideaPrompt(topic string) string {
	return fmt.Sprintf(
		"You advise engineering students on final-year projects. Suggest one original, buildable project idea about %q. "+
			"Describe the concept, the main components or technologies, and what makes it stand out in a review. "+
			"Keep it under 150 words of plain prose.", topic)
}

func structuredPrompt(topic string) string {
	return fmt.Sprintf(
		"You advise engineering students on final-year projects. Suggest one original, buildable project idea about %q. "+
			`Respond with JSON only, in the shape {"title": string, "description": string}. `+
			"The title is at most 10 words; the description is 2-4 sentences.", topic)
}
