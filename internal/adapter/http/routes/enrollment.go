package routes

import (
	"educa_taxista/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathEnrollments = "/enrollments"
	PathWebhooks    = "/webhooks"
	PathAuth        = "/auth"
	PathChat        = "/chat"
)

func addEnrollmentRoutes(
	rg *gin.RouterGroup,
	registrationHandler *handlers.RegistrationHandler,
	paymentHandler *handlers.PaymentHandler,
	webhookHandler *handlers.WebhookHandler,
	authHandler *handlers.AuthHandler,
	chatbotHandler *handlers.ChatbotHandler,
) {
	enrollments := rg.Group(PathEnrollments)
	{
		enrollments.POST("", registrationHandler.Register)
		enrollments.POST("/:enrollment_id/payment", paymentHandler.CreatePaymentSession)
	}

	webhooks := rg.Group(PathWebhooks)
	{
		webhooks.POST("/payment", webhookHandler.HandlePaymentEvent)
	}

	auth := rg.Group(PathAuth)
	{
		auth.POST("/login", authHandler.Login)
	}

	rg.POST(PathChat, chatbotHandler.Chat)
}
