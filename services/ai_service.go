package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog"

	"lab-dashboard-backend/config"
	"lab-dashboard-backend/models"
)

const systemPrompt = `You are a lab assistant specialized in helping with medical lab orders.
Your goal is to understand user intent and provide relevant responses.

When the user expresses intent to order or purchase tests:
1. If they mention a specific patient, include the patient name in the metadata
2. Set metadata with action="create_order" and autoTrigger=true
3. Respond with "I'll help you create a new order. Opening the order form."
4. Keep responses concise and professional

IMPORTANT: Never include metadata information in the response text. Only include it in the metadata field.`

// AIService proxies chat conversations to an OpenAI-compatible completion
// API. When no API key is configured the caller is expected to use the
// rule-based assistant instead.
type AIService struct {
	apiKey     string
	apiURL     string
	model      string
	maxTokens  int
	httpClient *http.Client
	logger     zerolog.Logger
}

func NewAIService(cfg config.AIConfig, logger zerolog.Logger) *AIService {
	return &AIService{
		apiKey:    cfg.APIKey,
		apiURL:    "https://api.openai.com/v1/chat/completions",
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

// Configured reports whether an API key is present.
func (s *AIService) Configured() bool {
	return s.apiKey != ""
}

// GenerateChatResponse sends the conversation, prefixed with the lab
// assistant system prompt, and returns the model's reply text.
func (s *AIService) GenerateChatResponse(ctx context.Context, messages []models.ChatMessage) (string, error) {
	if !s.Configured() {
		return "", fmt.Errorf("ai service not configured")
	}

	conversation := make([]map[string]string, 0, len(messages)+1)
	conversation = append(conversation, map[string]string{
		"role":    "system",
		"content": systemPrompt,
	})
	for _, m := range messages {
		conversation = append(conversation, map[string]string{
			"role":    m.Role,
			"content": m.Content,
		})
	}

	payload := map[string]interface{}{
		"model":       s.model,
		"messages":    conversation,
		"temperature": 0.7,
		"max_tokens":  s.maxTokens,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		s.logger.Warn().Int("status", resp.StatusCode).Msg("completion API returned an error")
		return "", fmt.Errorf("AI API error: %s", string(body))
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", err
	}
	if len(result.Choices) == 0 || result.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("no response generated")
	}
	return result.Choices[0].Message.Content, nil
}
