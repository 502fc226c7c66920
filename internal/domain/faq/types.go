package faq

// Transcript roles used by the chat client.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is one transcript entry as the client sends it.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request encapsulates one incoming chat prompt. History is accepted for
// forward compatibility but never read by the service.
type Request struct {
	Prompt  string        `json:"prompt"`
	History []ChatMessage `json:"history,omitempty"`
}

// Response is returned to the HTTP transport.
type Response struct {
	Answer string `json:"answer"`
}

// Entry is one static question/answer/keyword triple in the catalog.
type Entry struct {
	Question string   `json:"question" yaml:"question"`
	Answer   string   `json:"answer" yaml:"answer"`
	Keywords []string `json:"keywords" yaml:"keywords"`
}

// TrendingPrompt represents a frequently asked prompt.
type TrendingPrompt struct {
	Prompt string `json:"prompt"`
	Count  int64  `json:"count"`
}
