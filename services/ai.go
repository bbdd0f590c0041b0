package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"
)

type AIClient struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

var aiClient *AIClient

const defaultAIModel = "qwen/qwen3-235b-a22b-07-25:free"

func InitAI() {
	model := os.Getenv("AI_MODEL")
	if model == "" {
		model = defaultAIModel
	}

	aiClient = NewAIClient(os.Getenv("AI_KEY"), model, os.Getenv("AI_BASE_URL"))

	if aiClient.apiKey != "" {
		log.Println("✅ AI (OpenRouter) initialized with model:", model)
	} else {
		log.Println("⚠️  AI_KEY not set — the ask-AI endpoint will report a configuration error")
	}
}

func NewAIClient(apiKey, model, baseURL string) *AIClient {
	if model == "" {
		model = defaultAIModel
	}
	if baseURL == "" {
		baseURL = "https://openrouter.ai"
	}
	return &AIClient{
		apiKey:  apiKey,
		model:   model,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

func GetAIClient() *AIClient {
	return aiClient
}

// Configured reports whether an API key was provided.
func (c *AIClient) Configured() bool {
	return c.apiKey != ""
}

// StatusError carries a non-200 upstream status so the handler can mirror it.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("AI service error (%d): %s", e.StatusCode, e.Body)
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Ask sends a travel question to the chat-completions endpoint and returns
// the raw answer text. Non-200 responses come back as *StatusError.
func (c *AIClient) Ask(question string) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("AI API key not configured")
	}

	prompt := fmt.Sprintf(`You are a travel and airline industry expert assistant.
Answer the following question about travel, flights, or airline industry trends.

Question: %s

Provide a helpful, informative response based on your knowledge of the airline industry,
travel patterns, and flight pricing. Include specific insights when possible.`, question)

	reqBody := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: "You are a travel and airline industry expert assistant."},
			{Role: "user", Content: prompt},
		},
		MaxTokens: 500,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest("POST", c.baseURL+"/api/v1/chat/completions", bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return "", &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var chatResp chatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", fmt.Errorf("failed to parse AI response: %v", err)
	}

	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("empty response from AI")
	}

	return chatResp.Choices[0].Message.Content, nil
}
