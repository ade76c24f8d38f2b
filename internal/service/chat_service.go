package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/Ajeet990/myfacebook/internal/config"
)

// ChatService proxies prompts to the Gemini generateContent endpoint.
type ChatService struct {
	cfg    config.GeminiConfig
	client *http.Client
	logger *zap.Logger
}

// NewChatService builds the service.
func NewChatService(cfg config.GeminiConfig, logger *zap.Logger) *ChatService {
	return &ChatService{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout()},
		logger: logger,
	}
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Chat forwards the prompt and returns the model's reply text.
func (s *ChatService) Chat(ctx context.Context, prompt string) (string, error) {
	if s.cfg.APIKey == "" {
		return "", errors.New("GEMINI_API_KEY not configured")
	}

	payload := geminiRequest{
		Contents: []geminiContent{{
			Role:  "user",
			Parts: []geminiPart{{Text: prompt}},
		}},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		s.cfg.BaseURL, s.cfg.Model, s.cfg.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var parsed geminiResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return "", fmt.Errorf("decode gemini response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		msg := "gemini request failed"
		if parsed.Error != nil && parsed.Error.Message != "" {
			msg = parsed.Error.Message
		}
		s.logger.Warn("gemini upstream error", zap.Int("status", resp.StatusCode), zap.String("message", msg))
		return "", errors.New(msg)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("empty gemini response")
	}
	return parsed.Candidates[0].Content.Parts[0].Text, nil
}
