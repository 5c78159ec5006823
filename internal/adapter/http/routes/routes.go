package routes

import (
	"log"
	"os"
	"strconv"

	_ "educa_taxista/docs" // This will be auto-generated
	"educa_taxista/internal/adapter/http/handlers"
	repository2 "educa_taxista/internal/adapter/persistence/repository"
	"educa_taxista/internal/infrastructure/chat"
	"educa_taxista/internal/infrastructure/database"
	"educa_taxista/internal/infrastructure/notifications"
	"educa_taxista/internal/infrastructure/payments"
	"educa_taxista/internal/infrastructure/verification"
	"educa_taxista/internal/usecase"
	"educa_taxista/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	enrollmentRepo := repository2.NewEnrollmentDynamoRepository(ddb)
	paymentRepo := repository2.NewPaymentRecordDynamoRepository(ddb)

	var paymentGateway interfaces.IPaymentGateway
	asaasGateway, err := payments.NewAsaasGateway(os.Getenv("ASAAS_API_KEY"))
	if err != nil {
		log.Printf("Asaas gateway not configured: %v", err)
	} else {
		paymentGateway = asaasGateway
	}

	var emailNotifier interfaces.INotifier
	if n, err := notifications.NewEmailNotifier(os.Getenv("SENDGRID_API_KEY")); err != nil {
		log.Printf("Email notifier not configured: %v", err)
	} else {
		emailNotifier = n
	}

	var chatNotifier interfaces.INotifier
	if n, err := notifications.NewWhatsAppNotifier(os.Getenv("WHATSAPP_API_URL"), os.Getenv("WHATSAPP_API_TOKEN")); err != nil {
		log.Printf("WhatsApp notifier not configured: %v", err)
	} else {
		chatNotifier = n
	}

	var taxIDVerifier interfaces.ITaxIDVerifier
	if v, err := verification.NewCPFVerifier(os.Getenv("CPF_VERIFIER_URL"), os.Getenv("CPF_VERIFIER_TOKEN")); err != nil {
		log.Printf("CPF verifier not configured: %v", err)
	} else {
		taxIDVerifier = v
	}

	var llmClient interfaces.ILLMClient
	if c, err := chat.NewOpenAIClient(os.Getenv("OPENAI_API_KEY"), os.Getenv("OPENAI_BASE_URL"), os.Getenv("OPENAI_MODEL")); err != nil {
		log.Printf("LLM client not configured: %v", err)
	} else {
		llmClient = c
	}

	registrationUseCase := usecase.NewRegistrationUseCase(enrollmentRepo, taxIDVerifier, emailNotifier, chatNotifier)
	reconciliationUseCase := usecase.NewReconciliationUseCase(enrollmentRepo, paymentRepo, emailNotifier, chatNotifier)
	paymentSessionUseCase := usecase.NewPaymentSessionUseCase(enrollmentRepo, paymentRepo, paymentGateway)
	adminUseCase := usecase.NewAdminUseCase(enrollmentRepo, paymentRepo, emailNotifier, chatNotifier)
	authUseCase := usecase.NewAuthUseCase(enrollmentRepo)
	chatbotUseCase := usecase.NewChatbotUseCase(enrollmentRepo, llmClient)

	registrationHandler := handlers.NewRegistrationHandler(registrationUseCase)
	webhookHandler := handlers.NewWebhookHandler(reconciliationUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentSessionUseCase)
	adminHandler := handlers.NewAdminHandler(adminUseCase)
	authHandler := handlers.NewAuthHandler(authUseCase)
	chatbotHandler := handlers.NewChatbotHandler(chatbotUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addEnrollmentRoutes(v1, registrationHandler, paymentHandler, webhookHandler, authHandler, chatbotHandler)
	addAdminRoutes(v1, adminHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
