package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/durangezer/portfolio-api/internal/models"
	"github.com/google/uuid"
)

const (
	historyWindow = 10 // conversation turns sent upstream per request

	fallbackUnconfigured = "AI asistan şu anda yapılandırılmamış. Lütfen daha sonra tekrar deneyin."
	fallbackError        = "Üzgünüm, bir hata oluştu. Lütfen daha sonra tekrar deneyin."
)

// ChatSuggestions are the canned questions offered to visitors
var ChatSuggestions = []models.ChatSuggestion{
	{Question: "En gurur duyduğun proje hangisi?", Category: "projects"},
	{Question: "Hangi AI/ML teknolojilerinde uzmanlaştın?", Category: "skills"},
	{Question: "Problem çözme yaklaşımın nasıl?", Category: "thinking"},
	{Question: "Kariyer hedeflerin neler?", Category: "goals"},
	{Question: "What makes you different from other AI engineers?", Category: "about"},
	{Question: "Staj deneyiminden ne öğrendin?", Category: "experience"},
}

// ChatHistoryRepository persists per-session conversation history
type ChatHistoryRepository interface {
	GetHistory(ctx context.Context, sessionID string) ([]models.ChatMessage, error)
	SaveHistory(ctx context.Context, sessionID string, messages []models.ChatMessage) error
}

// ChatService proxies visitor messages to an OpenAI-compatible completions
// API, grounding answers in a knowledge-base file. Upstream failures never
// surface as request errors: the visitor gets a friendly fallback string.
type ChatService struct {
	repo       ChatHistoryRepository
	apiKey     string
	baseURL    string
	model      string
	kbPath     string
	httpClient *http.Client
	logger     *slog.Logger

	kbOnce sync.Once
	kb     string
}

// NewChatService creates a new ChatService
func NewChatService(repo ChatHistoryRepository, apiKey, baseURL, model, kbPath string, logger *slog.Logger) *ChatService {
	return &ChatService{
		repo:       repo,
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		model:      model,
		kbPath:     kbPath,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger,
	}
}

// ChatResult is the outcome of one chat exchange
type ChatResult struct {
	Response  string `json:"response"`
	SessionID string `json:"session_id"`
}

// Respond answers one visitor message within a session, creating the
// session when no id is supplied
func (s *ChatService) Respond(ctx context.Context, message, sessionID string) (*ChatResult, error) {
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	if s.apiKey == "" {
		return &ChatResult{Response: fallbackUnconfigured, SessionID: sessionID}, nil
	}

	history, err := s.repo.GetHistory(ctx, sessionID)
	if err != nil {
		s.logger.Error("failed to load chat history", slog.Any("error", err))
		history = nil
	}
	if len(history) > historyWindow {
		history = history[len(history)-historyWindow:]
	}

	answer, err := s.complete(ctx, history, message)
	if err != nil {
		s.logger.Error("chat completion failed", slog.Any("error", err))
		return &ChatResult{Response: fallbackError, SessionID: sessionID}, nil
	}

	history = append(history,
		models.ChatMessage{Role: "user", Content: message},
		models.ChatMessage{Role: "assistant", Content: answer},
	)
	if err := s.repo.SaveHistory(ctx, sessionID, history); err != nil {
		s.logger.Error("failed to save chat history", slog.Any("error", err))
	}

	return &ChatResult{Response: answer, SessionID: sessionID}, nil
}

type completionMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model       string              `json:"model"`
	Messages    []completionMessage `json:"messages"`
	MaxTokens   int                 `json:"max_tokens,omitempty"`
	Temperature float64             `json:"temperature,omitempty"`
}

type completionResponse struct {
	Choices []struct {
		Message completionMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (s *ChatService) complete(ctx context.Context, history []models.ChatMessage, message string) (string, error) {
	messages := make([]completionMessage, 0, len(history)+2)
	messages = append(messages, completionMessage{Role: "system", Content: s.systemPrompt()})
	for _, msg := range history {
		messages = append(messages, completionMessage{Role: msg.Role, Content: msg.Content})
	}
	messages = append(messages, completionMessage{Role: "user", Content: message})

	body, err := json.Marshal(completionRequest{
		Model:       s.model,
		Messages:    messages,
		MaxTokens:   1024,
		Temperature: 0.7,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	defer resp.Body.Close()

	var completion completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return "", fmt.Errorf("failed to decode completion response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if completion.Error != nil {
			return "", fmt.Errorf("completion API returned %d: %s", resp.StatusCode, completion.Error.Message)
		}
		return "", fmt.Errorf("completion API returned %d", resp.StatusCode)
	}

	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("completion response contained no choices")
	}

	return strings.TrimSpace(completion.Choices[0].Message.Content), nil
}

// systemPrompt renders the assistant instructions with the knowledge base
// embedded. The knowledge base file is read once per process.
func (s *ChatService) systemPrompt() string {
	s.kbOnce.Do(func() {
		data, err := os.ReadFile(s.kbPath)
		if err != nil {
			s.logger.Warn("knowledge base not found, answering without it",
				slog.String("path", s.kbPath))
			s.kb = "{}"
			return
		}

		var pretty bytes.Buffer
		if err := json.Indent(&pretty, data, "", "  "); err != nil {
			s.kb = string(data)
			return
		}
		s.kb = pretty.String()
	})

	return fmt.Sprintf(`Sen Duran Gezer'in AI asistanısın. Ziyaretçilerin Duran hakkında sorularını yanıtlıyorsun.

## Kurallar:
1. Samimi ama profesyonel ol
2. Soruyu algıladığın dilde yanıtla (Türkçe veya İngilizce)
3. Bilmediğin konularda "Bu konuda bilgim yok" de
4. Yanıtlarını kısa ve öz tut (2-3 paragraf max)
5. Teknik sorularda detaylı, genel sorularda özet bilgi ver

## Duran Hakkında Bilgiler (JSON):

%s

Şimdi ziyaretçinin sorusunu yanıtla.`, s.kb)
}
