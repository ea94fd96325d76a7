package models

import (
    "time"

    "go.mongodb.org/mongo-driver/bson/primitive"
)

// MessageChannel represents the communication channel
type MessageChannel string

const (
    ChannelWeb      MessageChannel = "web"
    ChannelWhatsApp MessageChannel = "whatsapp"
)

// Message is one logged conversation turn.
type Message struct {
    ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
    SenderID     string             `bson:"sender_id" json:"sender_id"`
    UserMessage  string             `bson:"user_message" json:"user_message"`
    BotResponse  string             `bson:"bot_response" json:"bot_response"`
    Intent       MessageIntent      `bson:"intent" json:"intent"`
    Language     Language           `bson:"language" json:"language"`
    MessageType  string             `bson:"message_type" json:"message_type"` // "text" or "image"
    IsEmergency  bool               `bson:"is_emergency" json:"is_emergency"`
    Channel      MessageChannel     `bson:"channel,omitempty" json:"channel,omitempty"`
    Timestamp    time.Time          `bson:"timestamp" json:"timestamp"`
}

// ChatRequest is the REST/websocket chat payload.
type ChatRequest struct {
    Message   string         `json:"message" binding:"required"`
    SessionID string         `json:"session_id" binding:"required"`
    Channel   MessageChannel `json:"channel,omitempty"`
}

// ChatResponse is returned to REST/websocket chat clients.
type ChatResponse struct {
    Response string        `json:"response"`
    Language Language      `json:"language"`
    Intent   MessageIntent `json:"intent"`
    State    SessionState  `json:"state,omitempty"`
}

// InboundMessage is the transport-neutral shape the orchestrator consumes.
// Exactly one of Text/ImageData is populated per call.
type InboundMessage struct {
    SenderID  string
    Text      string
    ImageData []byte
    MediaType string
    Channel   MessageChannel
}

// WhatsApp Webhook Models
type WhatsAppWebhookData struct {
    Object string          `json:"object"`
    Entry  []WhatsAppEntry `json:"entry"`
}

type WhatsAppEntry struct {
    ID      string           `json:"id"`
    Changes []WhatsAppChange `json:"changes"`
}

type WhatsAppChange struct {
    Field string        `json:"field"`
    Value WhatsAppValue `json:"value"`
}

type WhatsAppValue struct {
    MessagingProduct string            `json:"messaging_product"`
    Metadata         WhatsAppMetadata  `json:"metadata"`
    Messages         []WhatsAppMessage `json:"messages,omitempty"`
    Statuses         []WhatsAppStatus  `json:"statuses,omitempty"`
    Contacts         []WhatsAppContact `json:"contacts,omitempty"`
}

type WhatsAppMetadata struct {
    DisplayPhoneNumber string `json:"display_phone_number"`
    PhoneNumberID      string `json:"phone_number_id"`
}

type WhatsAppMessage struct {
    From      string             `json:"from"`
    ID        string             `json:"id"`
    Timestamp string             `json:"timestamp"`
    Type      string             `json:"type"`
    Text      *WhatsAppText      `json:"text,omitempty"`
    Image     *WhatsAppMediaInfo `json:"image,omitempty"`
}

type WhatsAppText struct {
    Body string `json:"body"`
}

// WhatsAppMediaInfo references an uploaded media object; the binary is
// fetched separately through the Graph API.
type WhatsAppMediaInfo struct {
    ID       string `json:"id"`
    MimeType string `json:"mime_type"`
    SHA256   string `json:"sha256"`
    Caption  string `json:"caption,omitempty"`
}

type WhatsAppContact struct {
    Profile WhatsAppProfile `json:"profile"`
    WaID    string          `json:"wa_id"`
}

type WhatsAppProfile struct {
    Name string `json:"name"`
}

type WhatsAppStatus struct {
    ID          string  `json:"id"`
    RecipientID string  `json:"recipient_id"`
    Status      string  `json:"status"`
    Timestamp   string  `json:"timestamp"`
    Errors      []Error `json:"errors,omitempty"`
}

type Error struct {
    Code    int    `json:"code"`
    Title   string `json:"title"`
    Message string `json:"message"`
}

// WhatsApp Send Message Models
type WhatsAppSendMessage struct {
    MessagingProduct string        `json:"messaging_product"`
    RecipientType    string        `json:"recipient_type"`
    To               string        `json:"to"`
    Type             string        `json:"type"`
    Text             *WhatsAppText `json:"text,omitempty"`
}

// Service Status Model
type WhatsAppServiceStatus struct {
    Enabled             bool      `json:"enabled"`
    WebhookVerified     bool      `json:"webhook_verified"`
    LastMessageReceived time.Time `json:"last_message_received"`
    MessageCountToday   int       `json:"message_count_today"`
    ActiveSessions      int       `json:"active_sessions"`
    EmergencyCount      int64     `json:"emergency_count"`
}
