package services

import (
    "context"
    "errors"
    "fmt"
    "log"
    "strings"
    "sync"
    "time"

    "swasthya-chatbot-backend/models"
    "swasthya-chatbot-backend/utils"
)

var greetingKeywords = []string{
    "hi", "hello", "hey", "namaste", "namaskar", "namaskaram",
    "vanakkam", "sat sri akal", "kem cho", "good morning", "good afternoon",
    "good evening", "नमस्ते", "नमस्कार", "নমস্কার", "வணக்கம்", "నమస్కారం",
    "ਸਤ ਸ੍ਰੀ ਅਕਾਲ", "કેમ છો",
}

var imageRequestKeywords = []string{
    "send photo", "send a photo", "send image", "photo kaise",
    "photo bhejna", "photo bhejni", "image bhejna", "skin photo",
    "photo se check", "picture bhejna", "tasveer",
}

var skinKeywords = []string{
    "skin", "rash", "daad", "khujli", "kharish", "twacha", "itching",
    "fungal", "pimple", "acne", "allergy on skin",
    "त्वचा", "खुजली", "दाद", "पुरळ", "চর্মরোগ", "চুলকানি",
    "தோல்", "அரிப்பு", "చర్మం", "దురద", "ਖਾਰਸ਼", "ચામડી", "ખંજવાળ",
}

// MessageLogger records conversation turns for later review. Logging is
// best effort; a logger failure never blocks the reply.
type MessageLogger interface {
    LogMessage(ctx context.Context, msg *models.Message) error
}

// TriageService is the orchestrator behind every inbound message. It
// resolves the language, walks the intent priority order (emergency
// first, general fallback last), advances the conversation session and
// hands back a ready-to-send localized reply.
type TriageService struct {
    translator  *Translator
    emergencies *EmergencyClassifier
    symptoms    *SymptomChecker
    clinics     *ClinicFinder
    analyzer    *ImageAnalyzer
    sessions    SessionStore
    logger      MessageLogger
    maxClinics  int
    defaultLang models.Language
    now         func() time.Time

    // one mutex per sender, so concurrent deliveries for the same
    // number never interleave a session read-modify-write
    senderLocks sync.Map
}

func NewTriageService(
    translator *Translator,
    emergencies *EmergencyClassifier,
    symptoms *SymptomChecker,
    clinics *ClinicFinder,
    analyzer *ImageAnalyzer,
    sessions SessionStore,
    logger MessageLogger,
    maxClinics int,
    defaultLang models.Language,
) *TriageService {
    if !defaultLang.IsSupported() {
        defaultLang = models.LangEnglish
    }
    return &TriageService{
        translator:  translator,
        emergencies: emergencies,
        symptoms:    symptoms,
        clinics:     clinics,
        analyzer:    analyzer,
        sessions:    sessions,
        logger:      logger,
        maxClinics:  maxClinics,
        defaultLang: defaultLang,
        now:         time.Now,
    }
}

func (ts *TriageService) lockSender(senderID string) func() {
    value, _ := ts.senderLocks.LoadOrStore(senderID, &sync.Mutex{})
    mu := value.(*sync.Mutex)
    mu.Lock()
    return mu.Unlock
}

// ProcessMessage triages one inbound text message and returns the reply.
// Turns for the same sender run one at a time.
func (ts *TriageService) ProcessMessage(ctx context.Context, msg models.InboundMessage) (models.TriageResponse, error) {
    defer ts.lockSender(msg.SenderID)()

    session, err := ts.sessions.Get(ctx, msg.SenderID)
    if err != nil {
        log.Printf("Failed to load session for %s, starting fresh: %v", msg.SenderID, err)
        session = models.NewSession(msg.SenderID)
    }

    prior := session.Language
    if prior == "" {
        prior = ts.defaultLang
    }
    session.Language = utils.DetectLanguage(msg.Text, prior)
    response := ts.respond(msg.Text, session)
    response.State = session.State

    session.LastActivity = ts.now()
    if err := ts.sessions.Put(ctx, session); err != nil {
        log.Printf("Failed to save session for %s: %v", msg.SenderID, err)
    }
    ts.logTurn(ctx, msg, response, "text")

    return response, nil
}

// respond walks the intent priority order and mutates the session
// accordingly. Emergency always wins; everything else only runs when
// the tiers above it declined the message.
func (ts *TriageService) respond(text string, session *models.ConversationSession) models.TriageResponse {
    lang := session.Language

    if emergency := ts.emergencies.Classify(text, lang); emergency != models.EmergencyNone {
        session.Reset()
        return models.TriageResponse{
            Text: ts.translator.Render(lang, "emergency_response", map[string]string{
                "category": ts.translator.Render(lang, "emergency_category_"+string(emergency), nil),
            }),
            Language: lang,
            Intent:   models.IntentEmergency,
        }
    }

    if session.State != models.StateIdle && ts.symptoms.IsCancel(text) {
        session.Reset()
        return models.TriageResponse{
            Text:     ts.translator.Render(lang, "cancel_ack", nil),
            Language: lang,
            Intent:   models.IntentCancelled,
        }
    }

    if session.InClarification() {
        // a different complaint mid-sequence restarts the questions
        if symptom, ok := ts.symptoms.ExtractSymptom(text); ok && symptom != session.PendingSymptom {
            return models.TriageResponse{
                Text:     ts.symptoms.Begin(session, symptom),
                Language: lang,
                Intent:   models.IntentSymptomCheck,
            }
        }
        return models.TriageResponse{
            Text:     ts.symptoms.Continue(session, text),
            Language: lang,
            Intent:   models.IntentSymptomCheck,
        }
    }

    if session.State == models.StateAwaitingLocation {
        location := ts.clinics.ExtractLocation(text)
        if location == "" {
            location = strings.TrimSpace(text)
        }
        session.Reset()
        return models.TriageResponse{
            Text:     ts.formatClinics(lang, location),
            Language: lang,
            Intent:   models.IntentClinicSearch,
        }
    }

    if symptom, ok := ts.symptoms.ExtractSymptom(text); ok {
        return models.TriageResponse{
            Text:     ts.symptoms.Begin(session, symptom),
            Language: lang,
            Intent:   models.IntentSymptomCheck,
        }
    }

    if ts.clinics.IsClinicRequest(text) {
        if location := ts.clinics.ExtractLocation(text); location != "" {
            return models.TriageResponse{
                Text:     ts.formatClinics(lang, location),
                Language: lang,
                Intent:   models.IntentClinicSearch,
            }
        }
        session.State = models.StateAwaitingLocation
        return models.TriageResponse{
            Text:     ts.translator.Render(lang, "ask_location", nil),
            Language: lang,
            Intent:   models.IntentClinicSearch,
        }
    }

    if containsAnyKeyword(text, imageRequestKeywords) {
        return models.TriageResponse{
            Text:     ts.translator.Render(lang, "image_instructions", nil),
            Language: lang,
            Intent:   models.IntentImageRequest,
        }
    }

    if containsAnyKeyword(text, skinKeywords) {
        return models.TriageResponse{
            Text:     ts.translator.Render(lang, "skin_info", nil),
            Language: lang,
            Intent:   models.IntentSkinInfo,
        }
    }

    if isGreeting(text) {
        return models.TriageResponse{
            Text: ts.translator.Render(lang, "greeting", map[string]string{
                "greeting": ts.translator.Render(lang, ts.greetingKey(), nil),
            }),
            Language: lang,
            Intent:   models.IntentGreeting,
        }
    }

    return models.TriageResponse{
        Text:     ts.translator.Render(lang, "general_tips", nil),
        Language: lang,
        Intent:   models.IntentGeneral,
    }
}

// ProcessImage runs the image pipeline for one inbound media message.
// Validation failures become localized replies, not errors; the session
// language and activity are the only state touched.
func (ts *TriageService) ProcessImage(ctx context.Context, msg models.InboundMessage) (models.TriageResponse, error) {
    defer ts.lockSender(msg.SenderID)()

    session, err := ts.sessions.Get(ctx, msg.SenderID)
    if err != nil {
        log.Printf("Failed to load session for %s, starting fresh: %v", msg.SenderID, err)
        session = models.NewSession(msg.SenderID)
    }
    lang := session.Language
    if lang == "" {
        lang = ts.defaultLang
    }

    response := models.TriageResponse{Language: lang, Intent: models.IntentImageAnalysis, State: session.State}

    result, err := ts.analyzer.Analyze(msg.ImageData, lang)
    var verr *models.ValidationError
    switch {
    case errors.As(err, &verr):
        response.Text = ts.translator.Render(lang, verr.TemplateKey(), nil)
        err = nil
    case err != nil:
        log.Printf("Image analysis failed terminally for %s: %v", msg.SenderID, err)
        response.Text = ts.translator.Render(lang, "terminal_error", nil)
    default:
        response.Text = result.Message
    }

    session.LastActivity = ts.now()
    if perr := ts.sessions.Put(ctx, session); perr != nil {
        log.Printf("Failed to save session for %s: %v", msg.SenderID, perr)
    }
    ts.logTurn(ctx, msg, response, "image")

    return response, err
}

func (ts *TriageService) formatClinics(lang models.Language, location string) string {
    results := ts.clinics.Find(location, ts.maxClinics)
    if len(results) == 0 {
        return ts.translator.Render(lang, "clinic_none", map[string]string{"location": location})
    }

    var b strings.Builder
    b.WriteString(ts.translator.Render(lang, "clinic_results_header", map[string]string{"location": location}))
    for i, clinic := range results {
        fmt.Fprintf(&b, "%d. **%s**\n", i+1, clinic.Name)
        fmt.Fprintf(&b, "%s: %s\n", ts.translator.Render(lang, "clinic_label_address", nil), clinic.Address)
        if clinic.Timing != "" {
            fmt.Fprintf(&b, "%s: %s\n", ts.translator.Render(lang, "clinic_label_timing", nil), clinic.Timing)
        }
        if clinic.Phone != "" {
            fmt.Fprintf(&b, "%s: %s\n", ts.translator.Render(lang, "clinic_label_phone", nil), clinic.Phone)
        }
        b.WriteString("\n")
    }
    b.WriteString(ts.translator.Render(lang, "clinic_footer", nil))
    return b.String()
}

func (ts *TriageService) greetingKey() string {
    hour := ts.now().Hour()
    switch {
    case hour < 12:
        return "greeting_morning"
    case hour < 17:
        return "greeting_afternoon"
    default:
        return "greeting_evening"
    }
}

func (ts *TriageService) logTurn(ctx context.Context, msg models.InboundMessage, response models.TriageResponse, messageType string) {
    if ts.logger == nil {
        return
    }
    record := &models.Message{
        SenderID:    msg.SenderID,
        UserMessage: msg.Text,
        BotResponse: response.Text,
        Intent:      response.Intent,
        Language:    response.Language,
        MessageType: messageType,
        IsEmergency: response.Intent == models.IntentEmergency,
        Channel:     msg.Channel,
        Timestamp:   ts.now(),
    }
    if err := ts.logger.LogMessage(ctx, record); err != nil {
        log.Printf("Failed to log message for %s: %v", msg.SenderID, err)
    }
}

func containsAnyKeyword(text string, keywords []string) bool {
    normalized := utils.NormalizeText(text)
    for _, kw := range keywords {
        if strings.Contains(normalized, utils.NormalizeText(kw)) {
            return true
        }
    }
    return false
}

// isGreeting matches greeting words as whole tokens so that "hi" inside
// another word does not trigger it.
func isGreeting(text string) bool {
    normalized := utils.NormalizeText(text)
    fields := strings.Fields(normalized)
    joined := strings.Join(fields, " ")
    for _, kw := range greetingKeywords {
        normalizedKw := utils.NormalizeText(kw)
        if joined == normalizedKw {
            return true
        }
        for _, field := range fields {
            if strings.Trim(field, ".,!?") == normalizedKw && !strings.Contains(normalizedKw, " ") {
                return true
            }
        }
        if strings.Contains(normalizedKw, " ") && strings.Contains(joined, normalizedKw) {
            return true
        }
    }
    return false
}
