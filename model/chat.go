package model

// Message roles accepted on the chat endpoint.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single turn in the conversation sent by the client. Order is
// chronological; the last message must come from the user.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest carries the recent conversation. The server keeps no history of
// its own; the client resends whatever context it wants considered.
type ChatRequest struct {
	Messages []Message `json:"messages"`
}

// ChatResponse is the short grounded answer produced by the RAG pipeline.
type ChatResponse struct {
	Response string `json:"response"`
}
