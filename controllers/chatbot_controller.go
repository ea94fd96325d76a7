package controllers

import (
    "net/http"

    "github.com/gin-gonic/gin"

    "swasthya-chatbot-backend/models"
    "swasthya-chatbot-backend/services"
)

type ChatbotController struct {
    triageService *services.TriageService
}

func NewChatbotController(triageService *services.TriageService) *ChatbotController {
    return &ChatbotController{
        triageService: triageService,
    }
}

// HandleChat processes chat messages
func (cc *ChatbotController) HandleChat(c *gin.Context) {
    var req models.ChatRequest

    if err := c.ShouldBindJSON(&req); err != nil {
        c.JSON(http.StatusBadRequest, gin.H{
            "error":   "Invalid request format",
            "details": err.Error(),
        })
        return
    }

    channel := req.Channel
    if channel == "" {
        channel = models.ChannelWeb
    }

    response, err := cc.triageService.ProcessMessage(c.Request.Context(), models.InboundMessage{
        SenderID: req.SessionID,
        Text:     req.Message,
        Channel:  channel,
    })
    if err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{
            "error":   "Failed to process message",
            "details": err.Error(),
        })
        return
    }

    c.JSON(http.StatusOK, models.ChatResponse{
        Response: response.Text,
        Language: response.Language,
        Intent:   response.Intent,
        State:    response.State,
    })
}

// GetSupportedLanguages lists the languages the triage engine understands
func (cc *ChatbotController) GetSupportedLanguages(c *gin.Context) {
    languages := make([]gin.H, 0, len(models.SupportedLanguages))
    for _, lang := range models.SupportedLanguages {
        languages = append(languages, gin.H{
            "code": string(lang),
            "name": lang.DisplayName(),
        })
    }

    c.JSON(http.StatusOK, gin.H{
        "languages": languages,
    })
}

// GetSupportedIntents returns list of supported intents
func (cc *ChatbotController) GetSupportedIntents(c *gin.Context) {
    intents := []map[string]interface{}{
        {
            "intent":      "emergency",
            "description": "Critical symptoms needing immediate care",
            "examples": []string{
                "Severe chest pain",
                "Can't breathe properly",
                "Heavy bleeding",
            },
        },
        {
            "intent":      "symptom_check",
            "description": "Guided questions about a reported symptom",
            "examples": []string{
                "I have a headache",
                "mujhe bukhar hai",
                "pet dard ho raha hai",
            },
        },
        {
            "intent":      "clinic_search",
            "description": "Find clinics by area, city, or pincode",
            "examples": []string{
                "Doctor chahiye Andheri",
                "nearest clinic please",
                "400058",
            },
        },
        {
            "intent":      "image_analysis",
            "description": "Skin photo assessment",
            "examples": []string{
                "(send a photo of the affected skin)",
            },
        },
    }

    c.JSON(http.StatusOK, gin.H{
        "intents": intents,
    })
}
