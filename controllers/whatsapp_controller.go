// controllers/whatsapp_controller.go
package controllers

import (
    "context"
    "log"
    "net/http"
    "strconv"
    "time"

    "swasthya-chatbot-backend/models"
    "swasthya-chatbot-backend/services"

    "github.com/gin-gonic/gin"
)

// SessionCounter exposes how many conversations are currently active,
// for the status endpoint.
type SessionCounter interface {
    ActiveSessions() int
}

// MessageArchive reads back logged conversation turns for the admin
// endpoints. Nil when the database is down.
type MessageArchive interface {
    RecentMessages(ctx context.Context, senderID string, limit int64) ([]models.Message, error)
    EmergencyCount(ctx context.Context) (int64, error)
}

type WhatsAppController struct {
    whatsappService *services.WhatsAppService
    triageService   *services.TriageService
    sessionCounter  SessionCounter
    messageArchive  MessageArchive
}

func NewWhatsAppController(whatsappService *services.WhatsAppService, triageService *services.TriageService, sessionCounter SessionCounter, messageArchive MessageArchive) *WhatsAppController {
    return &WhatsAppController{
        whatsappService: whatsappService,
        triageService:   triageService,
        sessionCounter:  sessionCounter,
        messageArchive:  messageArchive,
    }
}

// VerifyWebhook handles the webhook verification request from WhatsApp
func (wc *WhatsAppController) VerifyWebhook(c *gin.Context) {
    mode := c.Query("hub.mode")
    token := c.Query("hub.verify_token")
    challenge := c.Query("hub.challenge")

    if mode == "subscribe" && token == wc.whatsappService.GetVerifyToken() {
        c.String(http.StatusOK, challenge)
        return
    }

    c.JSON(http.StatusForbidden, gin.H{"error": "Verification failed"})
}

// HandleWebhook processes incoming WhatsApp messages
func (wc *WhatsAppController) HandleWebhook(c *gin.Context) {
    var webhookData models.WhatsAppWebhookData

    if err := c.ShouldBindJSON(&webhookData); err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid webhook data"})
        return
    }

    // Process asynchronously so WhatsApp gets its ack within the window.
    // The request context dies with the response, so use a fresh one.
    go func() {
        ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
        defer cancel()
        wc.processWebhookData(ctx, webhookData)
    }()

    c.JSON(http.StatusOK, gin.H{"status": "received"})
}

func (wc *WhatsAppController) processWebhookData(ctx context.Context, webhookData models.WhatsAppWebhookData) {
    for _, entry := range webhookData.Entry {
        for _, change := range entry.Changes {
            if change.Field == "messages" {
                wc.processMessages(ctx, change.Value)
            }
        }
    }
}

func (wc *WhatsAppController) processMessages(ctx context.Context, value models.WhatsAppValue) {
    for _, message := range value.Messages {
        wc.handleIncomingMessage(ctx, message)
    }

    for _, status := range value.Statuses {
        wc.handleStatusUpdate(status)
    }
}

func (wc *WhatsAppController) handleIncomingMessage(ctx context.Context, message models.WhatsAppMessage) {
    wc.whatsappService.RecordInbound()

    if err := wc.whatsappService.MarkMessageAsRead(message.ID); err != nil {
        log.Printf("Failed to mark message %s as read: %v", message.ID, err)
    }

    var (
        response models.TriageResponse
        err      error
    )

    switch message.Type {
    case "text":
        if message.Text == nil {
            return
        }
        response, err = wc.triageService.ProcessMessage(ctx, models.InboundMessage{
            SenderID: message.From,
            Text:     message.Text.Body,
            Channel:  models.ChannelWhatsApp,
        })

    case "image":
        if message.Image == nil {
            return
        }
        data, mimeType, dlErr := wc.whatsappService.DownloadMedia(message.Image.ID)
        if dlErr != nil {
            log.Printf("Failed to download media %s: %v", message.Image.ID, dlErr)
            data = nil
        }
        response, err = wc.triageService.ProcessImage(ctx, models.InboundMessage{
            SenderID:  message.From,
            ImageData: data,
            MediaType: mimeType,
            Channel:   models.ChannelWhatsApp,
        })

    default:
        response, err = wc.triageService.ProcessMessage(ctx, models.InboundMessage{
            SenderID: message.From,
            Channel:  models.ChannelWhatsApp,
        })
    }

    if err != nil {
        log.Printf("Triage failed for %s: %v", message.From, err)
    }
    if response.Text == "" {
        return
    }

    if err := wc.whatsappService.SendTextMessage(message.From, response.Text); err != nil {
        log.Printf("Failed to send WhatsApp response to %s: %v", message.From, err)
    }
}

// handleStatusUpdate processes message status updates
func (wc *WhatsAppController) handleStatusUpdate(status models.WhatsAppStatus) {
    log.Printf("Message %s to %s: %s", status.ID, status.RecipientID, status.Status)

    for _, err := range status.Errors {
        log.Printf("WhatsApp Error: %d - %s: %s", err.Code, err.Title, err.Message)
    }
}

// SendMessage sends a message to a specific WhatsApp number (for notifications)
func (wc *WhatsAppController) SendMessage(c *gin.Context) {
    var req struct {
        To      string `json:"to" binding:"required"`
        Message string `json:"message" binding:"required"`
    }

    if err := c.ShouldBindJSON(&req); err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
        return
    }

    to := wc.whatsappService.CleanPhoneNumber(req.To)

    if err := wc.whatsappService.SendTextMessage(to, req.Message); err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{
            "error":   "Failed to send message",
            "details": err.Error(),
        })
        return
    }

    c.JSON(http.StatusOK, gin.H{
        "status": "sent",
        "to":     to,
    })
}

// GetStatus returns WhatsApp service status
func (wc *WhatsAppController) GetStatus(c *gin.Context) {
    active := 0
    if wc.sessionCounter != nil {
        active = wc.sessionCounter.ActiveSessions()
    }

    status := wc.whatsappService.GetStatus(active)
    if wc.messageArchive != nil {
        count, err := wc.messageArchive.EmergencyCount(c.Request.Context())
        if err != nil {
            log.Printf("Failed to count emergency messages: %v", err)
        } else {
            status.EmergencyCount = count
        }
    }
    c.JSON(http.StatusOK, status)
}

// RecentMessages returns the latest logged turns for one sender, for
// admin review.
func (wc *WhatsAppController) RecentMessages(c *gin.Context) {
    if wc.messageArchive == nil {
        c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Conversation logging is disabled"})
        return
    }

    senderID := c.Query("sender")
    if senderID == "" {
        c.JSON(http.StatusBadRequest, gin.H{"error": "Missing sender parameter"})
        return
    }

    limit, err := strconv.ParseInt(c.DefaultQuery("limit", "20"), 10, 64)
    if err != nil || limit <= 0 {
        limit = 20
    }

    messages, err := wc.messageArchive.RecentMessages(c.Request.Context(), senderID, limit)
    if err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load messages"})
        return
    }

    c.JSON(http.StatusOK, gin.H{
        "sender":   senderID,
        "messages": messages,
    })
}
