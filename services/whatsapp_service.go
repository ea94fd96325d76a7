// services/whatsapp_service.go
package services

import (
    "bytes"
    "encoding/json"
    "fmt"
    "io"
    "log"
    "net/http"
    "os"
    "strings"
    "sync"
    "time"

    "swasthya-chatbot-backend/models"
)

type WhatsAppService struct {
    apiURL        string
    apiVersion    string
    accessToken   string
    phoneNumberID string
    verifyToken   string
    httpClient    *http.Client

    // Status tracking
    statusMu        sync.RWMutex
    lastMessageTime time.Time
    messageCount    int64
    dailyCount      map[string]int
}

func NewWhatsAppService() *WhatsAppService {
    return &WhatsAppService{
        apiURL:        "https://graph.facebook.com",
        apiVersion:    "v18.0",
        accessToken:   os.Getenv("WHATSAPP_ACCESS_TOKEN"),
        phoneNumberID: os.Getenv("WHATSAPP_PHONE_NUMBER_ID"),
        verifyToken:   os.Getenv("WHATSAPP_VERIFY_TOKEN"),
        httpClient: &http.Client{
            Timeout: 30 * time.Second,
        },
        dailyCount: make(map[string]int),
    }
}

// GetVerifyToken returns the webhook verification token
func (ws *WhatsAppService) GetVerifyToken() string {
    return ws.verifyToken
}

// Enabled reports whether the service has credentials to send messages.
func (ws *WhatsAppService) Enabled() bool {
    return ws.accessToken != "" && ws.phoneNumberID != ""
}

// SendTextMessage sends a simple text message
func (ws *WhatsAppService) SendTextMessage(to string, message string) error {
    to = ws.CleanPhoneNumber(to)

    payload := models.WhatsAppSendMessage{
        MessagingProduct: "whatsapp",
        RecipientType:    "individual",
        To:               to,
        Type:             "text",
        Text: &models.WhatsAppText{
            Body: message,
        },
    }

    return ws.sendRequest(payload)
}

// RecordInbound updates tracking for a received message.
func (ws *WhatsAppService) RecordInbound() {
    ws.statusMu.Lock()
    defer ws.statusMu.Unlock()

    ws.lastMessageTime = time.Now()
    ws.messageCount++

    today := time.Now().Format("2006-01-02")
    ws.dailyCount[today]++
}

// sendRequest sends HTTP request to WhatsApp API
func (ws *WhatsAppService) sendRequest(payload interface{}) error {
    url := fmt.Sprintf("%s/%s/%s/messages", ws.apiURL, ws.apiVersion, ws.phoneNumberID)

    jsonPayload, err := json.Marshal(payload)
    if err != nil {
        return fmt.Errorf("failed to marshal payload: %w", err)
    }

    req, err := http.NewRequest("POST", url, bytes.NewBuffer(jsonPayload))
    if err != nil {
        return fmt.Errorf("failed to create request: %w", err)
    }

    req.Header.Set("Authorization", "Bearer "+ws.accessToken)
    req.Header.Set("Content-Type", "application/json")

    resp, err := ws.httpClient.Do(req)
    if err != nil {
        return fmt.Errorf("failed to send request: %w", err)
    }
    defer resp.Body.Close()

    body, err := io.ReadAll(resp.Body)
    if err != nil {
        return fmt.Errorf("failed to read response: %w", err)
    }

    if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
        var errorResp map[string]interface{}
        if err := json.Unmarshal(body, &errorResp); err == nil {
            log.Printf("WhatsApp API error details: %+v", errorResp)
            return fmt.Errorf("WhatsApp API error: %v", errorResp)
        }
        return fmt.Errorf("WhatsApp API error: %s", string(body))
    }

    return nil
}

// DownloadMedia fetches the binary content of an uploaded media object.
// The Graph API needs two round trips: one to resolve the media id to a
// short-lived URL, a second to fetch the bytes with the same token.
func (ws *WhatsAppService) DownloadMedia(mediaID string) ([]byte, string, error) {
    url := fmt.Sprintf("%s/%s/%s", ws.apiURL, ws.apiVersion, mediaID)

    req, err := http.NewRequest("GET", url, nil)
    if err != nil {
        return nil, "", fmt.Errorf("failed to create media request: %w", err)
    }
    req.Header.Set("Authorization", "Bearer "+ws.accessToken)

    resp, err := ws.httpClient.Do(req)
    if err != nil {
        return nil, "", fmt.Errorf("failed to resolve media id: %w", err)
    }
    defer resp.Body.Close()

    if resp.StatusCode != http.StatusOK {
        body, _ := io.ReadAll(resp.Body)
        return nil, "", fmt.Errorf("media lookup failed: %s", string(body))
    }

    var meta struct {
        URL      string `json:"url"`
        MimeType string `json:"mime_type"`
    }
    if err := json.NewDecoder(resp.Body).Decode(&meta); err != nil {
        return nil, "", fmt.Errorf("failed to decode media metadata: %w", err)
    }

    dlReq, err := http.NewRequest("GET", meta.URL, nil)
    if err != nil {
        return nil, "", fmt.Errorf("failed to create download request: %w", err)
    }
    dlReq.Header.Set("Authorization", "Bearer "+ws.accessToken)

    dlResp, err := ws.httpClient.Do(dlReq)
    if err != nil {
        return nil, "", fmt.Errorf("failed to download media: %w", err)
    }
    defer dlResp.Body.Close()

    if dlResp.StatusCode != http.StatusOK {
        return nil, "", fmt.Errorf("media download failed with status %d", dlResp.StatusCode)
    }

    data, err := io.ReadAll(dlResp.Body)
    if err != nil {
        return nil, "", fmt.Errorf("failed to read media body: %w", err)
    }
    return data, meta.MimeType, nil
}

// CleanPhoneNumber cleans and validates phone number
func (ws *WhatsAppService) CleanPhoneNumber(phone string) string {
    cleaned := strings.Map(func(r rune) rune {
        if r >= '0' && r <= '9' {
            return r
        }
        return -1
    }, phone)

    // Add country code if missing
    if len(cleaned) == 10 {
        cleaned = "91" + cleaned
    }

    return cleaned
}

// GetStatus returns the service status
func (ws *WhatsAppService) GetStatus(activeSessions int) models.WhatsAppServiceStatus {
    ws.statusMu.RLock()
    defer ws.statusMu.RUnlock()

    today := time.Now().Format("2006-01-02")

    return models.WhatsAppServiceStatus{
        Enabled:             ws.Enabled(),
        WebhookVerified:     ws.verifyToken != "",
        LastMessageReceived: ws.lastMessageTime,
        MessageCountToday:   ws.dailyCount[today],
        ActiveSessions:      activeSessions,
    }
}

// MarkMessageAsRead marks a message as read
func (ws *WhatsAppService) MarkMessageAsRead(messageID string) error {
    payload := map[string]interface{}{
        "messaging_product": "whatsapp",
        "status":            "read",
        "message_id":        messageID,
    }

    return ws.sendRequest(payload)
}
