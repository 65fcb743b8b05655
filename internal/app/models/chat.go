package models

// ChatSender identifies who wrote a chat message.
type ChatSender string

const (
	ChatFromUser ChatSender = "user"
	ChatFromBot  ChatSender = "bot"
)

// ChatMessage is one bubble of the chat widget transcript.
type ChatMessage struct {
	From ChatSender `json:"from"`
	Text string     `json:"text"`
}

type ChatRequest struct {
	Message string `json:"message"`
}

type ChatResponse struct {
	Reply string `json:"reply,omitempty"`
	Error string `json:"error,omitempty"`
}

// ErrorResponse is the JSON body of every 4xx/5xx API answer.
type ErrorResponse struct {
	Error string `json:"error"`
}
