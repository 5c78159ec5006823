package request

// ChatRequest carries one chatbot message. Email is optional; when present it
// lets the bot answer enrollment-status questions for that registrant.

type ChatRequest struct {
	Email   string `json:"email"`
	Message string `json:"message" binding:"required"`
}
