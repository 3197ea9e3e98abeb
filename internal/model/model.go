package model

// Post is a single raw LinkedIn post as found in the input dataset.
type Post struct {
	Text       string `json:"text"`
	Engagement int    `json:"engagement,omitempty"`
}

// Metadata is what the LLM (or the heuristic fallback) derives from a post.
type Metadata struct {
	LineCount int      `json:"line_count"`
	Language  string   `json:"language"` // "English" or "French"
	Tags      []string `json:"tags"`     // at most two
}

// EnrichedPost is a raw post plus its extracted metadata.
type EnrichedPost struct {
	Post
	Metadata
}

// --- Groq chat completions wire types ---

type ChatRequest struct {
	Model    string        `json:"model"`
	Messages []ChatMessage `json:"messages"`
}

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatResponse struct {
	Choices []struct {
		Message ChatMessage `json:"message"`
	} `json:"choices"`
	Error *APIError `json:"error,omitempty"`
}

// APIError is the error envelope Groq returns alongside non-2xx statuses.
type APIError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}
