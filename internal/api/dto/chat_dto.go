package dto

// ChatRequest payload for the AI chat proxy.
type ChatRequest struct {
	Prompt string `json:"prompt"`
}

// ChatResponse carries the model reply.
type ChatResponse struct {
	Reply string `json:"reply"`
}
