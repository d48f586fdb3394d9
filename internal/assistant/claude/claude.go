// Package claude implements the assistant provider on the Anthropic
// Messages API.
package claude

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	anthropic "github.com/liushuangls/go-anthropic/v2"

	"github.com/sergiogarciaj/bartulos/internal/assistant"
)

// 1024 tokens is well above a one-object description or a short grounded
// answer over a personal inventory.
const maxTokens = 1024

type Client struct {
	client *anthropic.Client
	model  anthropic.Model
}

func New(apiKey, model string) *Client {
	return &Client{
		client: anthropic.NewClient(apiKey),
		model:  anthropic.Model(model),
	}
}

// ExtractMetadata sends one normalized photo and parses the structured
// JSON description the model returns. imageData is the embedded data
// string produced by the normalizer; a bare base64 payload is accepted too.
func (c *Client) ExtractMetadata(ctx context.Context, imageData string) (*assistant.Metadata, error) {
	payload := imageData
	if idx := strings.IndexByte(imageData, ','); idx >= 0 {
		payload = imageData[idx+1:]
	}

	resp, err := c.client.CreateMessages(ctx, anthropic.MessagesRequest{
		Model:     c.model,
		MaxTokens: maxTokens,
		System:    assistant.ImageSystemPrompt,
		Messages: []anthropic.Message{{
			Role: anthropic.RoleUser,
			Content: []anthropic.MessageContent{
				anthropic.NewImageMessageContent(anthropic.NewMessageContentSource(
					anthropic.MessagesContentSourceTypeBase64, "image/jpeg", payload)),
				anthropic.NewTextMessageContent(assistant.AnalyzePrompt),
			},
		}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to call model: %w", err)
	}

	var md assistant.Metadata
	if err := json.Unmarshal([]byte(extractJSON(firstText(resp))), &md); err != nil {
		return nil, fmt.Errorf("failed to parse metadata response: %w", err)
	}
	if md.Name == "" {
		return nil, fmt.Errorf("model returned no object name")
	}
	return &md, nil
}

const placePrompt = `Busca la dirección postal y un enlace de mapa para: %s.
Responde SOLO con un objeto JSON con las claves "address" y "mapLinkUri".
Si no conoces un enlace de mapa, usa una cadena vacía.`

// ResolvePlace asks the model for an address and map link for the query.
func (c *Client) ResolvePlace(ctx context.Context, query string) (*assistant.Place, error) {
	resp, err := c.client.CreateMessages(ctx, anthropic.MessagesRequest{
		Model:     c.model,
		MaxTokens: maxTokens,
		Messages: []anthropic.Message{
			anthropic.NewUserTextMessage(fmt.Sprintf(placePrompt, query)),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to call model: %w", err)
	}

	var place assistant.Place
	if err := json.Unmarshal([]byte(extractJSON(firstText(resp))), &place); err != nil {
		return nil, fmt.Errorf("failed to parse place response: %w", err)
	}
	if place.Address == "" {
		place.Address = query
	}
	return &place, nil
}

// AnswerQuestion sends the message with the prior turns and the freshly
// built grounding context. Every call is stateless; the full conversation
// is resent each time.
func (c *Client) AnswerQuestion(ctx context.Context, message string, turns []assistant.Turn, groundingContext string) (string, error) {
	messages := make([]anthropic.Message, 0, len(turns)+1)
	for _, turn := range turns {
		if turn.Role == assistant.RoleUser {
			messages = append(messages, anthropic.NewUserTextMessage(turn.Text))
		} else {
			messages = append(messages, anthropic.NewAssistantTextMessage(turn.Text))
		}
	}
	messages = append(messages, anthropic.NewUserTextMessage(message))

	resp, err := c.client.CreateMessages(ctx, anthropic.MessagesRequest{
		Model:     c.model,
		MaxTokens: maxTokens,
		System:    assistant.ChatSystemPrompt + "\n\nDATOS DE CONTEXTO:\n" + groundingContext,
		Messages:  messages,
	})
	if err != nil {
		return "", fmt.Errorf("failed to call model: %w", err)
	}
	return firstText(resp), nil
}

func firstText(resp anthropic.MessagesResponse) string {
	for _, block := range resp.Content {
		if text := block.GetText(); text != "" {
			return text
		}
	}
	return ""
}
