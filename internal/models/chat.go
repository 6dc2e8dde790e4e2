package models

// ChatMessage is a single turn in a chat conversation
type ChatMessage struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// ChatSuggestion is a canned question offered to visitors
type ChatSuggestion struct {
	Question string `json:"question"`
	Category string `json:"category"`
}
