package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"vehicleagent/internal/config"
)

// systemInstruction frames the fallback conversation; specialist requests
// never reach this path because the keyword router handles them first.
const systemInstruction = "You are the main interface for the Vehicle Agent System. " +
	"You help users with car related queries and tasks. If the user greets you, " +
	"greet them back and ask how you can help."

// GeminiClient handles conversational fallback via Google's Gemini models
type GeminiClient struct {
	config *config.GeminiConfig
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiClient creates a new Gemini-backed chat client
func NewGeminiClient(ctx context.Context, cfg *config.GeminiConfig) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(cfg.Model)
	model.SetTemperature(float32(cfg.Temperature))
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemInstruction)},
	}

	return &GeminiClient{
		config: cfg,
		client: client,
		model:  model,
	}, nil
}

// Close cleans up the underlying client resources
func (c *GeminiClient) Close() {
	c.client.Close()
}

// IsEnabled returns whether the client is configured and ready
func (c *GeminiClient) IsEnabled() bool {
	return c.config.Enabled
}

// Chat sends the message with prior history and returns the model's reply
func (c *GeminiClient) Chat(ctx context.Context, history []ChatTurn, message string) (string, error) {
	session := c.model.StartChat()
	for _, turn := range history {
		session.History = append(session.History, &genai.Content{
			Role:  turn.Role,
			Parts: []genai.Part{genai.Text(turn.Text)},
		})
	}

	resp, err := session.SendMessage(ctx, genai.Text(message))
	if err != nil {
		return "", fmt.Errorf("gemini generation error: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("no response candidates from Gemini")
	}

	var reply strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			reply.WriteString(string(txt))
		}
	}
	return reply.String(), nil
}
