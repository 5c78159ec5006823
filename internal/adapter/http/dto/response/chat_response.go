package response

import "educa_taxista/internal/usecase"

type ChatResponse struct {
	Answer string `json:"answer"`
	Intent string `json:"intent"`
}

func FromChatReply(r usecase.ChatReply) ChatResponse {
	return ChatResponse{Answer: r.Answer, Intent: r.Intent}
}

// LoginResponse confirms a successful temporary-password login.

type LoginResponse struct {
	Enrollment   EnrollmentResponse `json:"enrollment"`
	CourseAccess string             `json:"course_access"`
}
