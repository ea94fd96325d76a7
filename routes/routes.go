package routes

import (
    "fmt"
    "log"

    "github.com/gin-gonic/gin"

    "swasthya-chatbot-backend/config"
    "swasthya-chatbot-backend/controllers"
    "swasthya-chatbot-backend/database"
    "swasthya-chatbot-backend/middleware"
    "swasthya-chatbot-backend/models"
    "swasthya-chatbot-backend/services"
)

func SetupRoutes(router *gin.Engine) error {
    cfg := config.Get()

    clinics, err := database.LoadClinics(cfg.Clinic.DataPath)
    if err != nil {
        return fmt.Errorf("failed to load clinic directory: %w", err)
    }
    log.Printf("Loaded %d clinics from %s", len(clinics), cfg.Clinic.DataPath)

    // Initialize services
    translator := services.NewTranslator()
    cacheStore := services.NewCacheSessionStore(cfg.Session.Timeout, cfg.Session.CleanupInterval)

    var sessionStore services.SessionStore = cacheStore
    var sessionCounter controllers.SessionCounter = cacheStore
    if cfg.Session.Store == "mongodb" && database.Connected() {
        sessionStore = services.NewMongoSessionStore(database.GetMongoDB().Collection("sessions"), cfg.Session.Timeout)
        sessionCounter = nil
    }

    var messageLogger services.MessageLogger
    var messageArchive controllers.MessageArchive
    if database.Connected() {
        repo := database.NewMessageRepository(database.GetMongoDB())
        messageLogger = repo
        messageArchive = repo
    }

    triageService := services.NewTriageService(
        translator,
        services.NewEmergencyClassifier(),
        services.NewSymptomChecker(translator),
        services.NewClinicFinder(clinics),
        services.NewImageAnalyzer(cfg.Image.MaxBytes, cfg.Image.MinWidth, cfg.Image.MinHeight, translator),
        sessionStore,
        messageLogger,
        cfg.Clinic.MaxResults,
        models.Language(cfg.DefaultLanguage),
    )
    whatsappService := services.NewWhatsAppService()

    // Initialize controllers
    chatbotController := controllers.NewChatbotController(triageService)
    wsController := controllers.NewWebSocketController(triageService)
    whatsappController := controllers.NewWhatsAppController(whatsappService, triageService, sessionCounter, messageArchive)

    // Public routes (no authentication required)
    public := router.Group("/api/v1")
    {
        public.POST("/chat", chatbotController.HandleChat)
        public.GET("/languages", chatbotController.GetSupportedLanguages)
        public.GET("/intents", chatbotController.GetSupportedIntents)

        // WebSocket for real-time chat
        public.GET("/ws", wsController.HandleWebSocket)
    }

    // WhatsApp routes
    whatsapp := router.Group("/api/whatsapp")
    {
        // Webhook endpoints (no auth required for WhatsApp to call)
        whatsapp.GET("/webhook", whatsappController.VerifyWebhook)
        whatsapp.POST("/webhook", middleware.VerifyWhatsAppSignature(), whatsappController.HandleWebhook)

        whatsapp.POST("/admin/send", whatsappController.SendMessage)
        whatsapp.GET("/admin/status", whatsappController.GetStatus)
        whatsapp.GET("/admin/messages", whatsappController.RecentMessages)
    }

    // 404 handler
    router.NoRoute(func(c *gin.Context) {
        c.JSON(404, gin.H{
            "error": "Route not found",
            "path":  c.Request.URL.Path,
        })
    })

    return nil
}
