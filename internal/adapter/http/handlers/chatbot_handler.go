package handlers

import (
	"net/http"

	request "educa_taxista/internal/adapter/http/dto/request"
	response "educa_taxista/internal/adapter/http/dto/response"
	"educa_taxista/internal/usecase"
	"educa_taxista/pkg"

	"github.com/gin-gonic/gin"
)

// ChatbotHandler answers support questions about enrollment and payment.

type ChatbotHandler struct {
	usecase usecase.IChatbotUseCase
}

func NewChatbotHandler(uc usecase.IChatbotUseCase) *ChatbotHandler {
	return &ChatbotHandler{usecase: uc}
}

func (h *ChatbotHandler) Chat(c *gin.Context) {
	var payload request.ChatRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_CHAT_INPUT", "Invalid chat payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	reply, err := h.usecase.Chat(c.Request.Context(), payload.Email, payload.Message)
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromChatReply(reply))
}
