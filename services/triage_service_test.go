package services

import (
    "context"
    "sync"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "swasthya-chatbot-backend/models"
)

type capturingLogger struct {
    mu      sync.Mutex
    records []*models.Message
}

func (l *capturingLogger) LogMessage(_ context.Context, msg *models.Message) error {
    l.mu.Lock()
    defer l.mu.Unlock()
    l.records = append(l.records, msg)
    return nil
}

func (l *capturingLogger) last() *models.Message {
    l.mu.Lock()
    defer l.mu.Unlock()
    if len(l.records) == 0 {
        return nil
    }
    return l.records[len(l.records)-1]
}

func newTestTriage() (*TriageService, *capturingLogger) {
    return newTestTriageWithDefault(models.LangEnglish)
}

func newTestTriageWithDefault(defaultLang models.Language) (*TriageService, *capturingLogger) {
    translator := NewTranslator()
    logger := &capturingLogger{}
    ts := NewTriageService(
        translator,
        NewEmergencyClassifier(),
        NewSymptomChecker(translator),
        NewClinicFinder(testClinics()),
        NewImageAnalyzer(10*1024*1024, 100, 100, translator),
        NewCacheSessionStore(10*time.Minute, time.Minute),
        logger,
        3,
        defaultLang,
    )
    return ts, logger
}

func text(sender, body string) models.InboundMessage {
    return models.InboundMessage{SenderID: sender, Text: body, Channel: models.ChannelWeb}
}

func TestSymptomClarificationFlowHindi(t *testing.T) {
    ts, _ := newTestTriage()
    ctx := context.Background()

    resp, err := ts.ProcessMessage(ctx, text("user-a", "mujhe bukhar hai"))
    require.NoError(t, err)
    assert.Equal(t, models.LangHindi, resp.Language)
    assert.Equal(t, models.IntentSymptomCheck, resp.Intent)
    assert.Contains(t, resp.Text, "kitne dino se")

    resp, err = ts.ProcessMessage(ctx, text("user-a", "2 din se"))
    require.NoError(t, err)
    assert.Contains(t, resp.Text, "kitni zyada")

    resp, err = ts.ProcessMessage(ctx, text("user-a", "halki"))
    require.NoError(t, err)
    assert.Contains(t, resp.Text, "bukhar bhi")

    resp, err = ts.ProcessMessage(ctx, text("user-a", "nahi"))
    require.NoError(t, err)
    assert.Contains(t, resp.Text, "aur lakshan")

    resp, err = ts.ProcessMessage(ctx, text("user-a", "kuch nahi"))
    require.NoError(t, err)
    assert.Equal(t, models.IntentSymptomCheck, resp.Intent)
    assert.Contains(t, resp.Text, "bukhar")
    assert.Contains(t, resp.Text, "2 din se")
}

func TestEmergencyOverridesClarification(t *testing.T) {
    ts, logger := newTestTriage()
    ctx := context.Background()

    _, err := ts.ProcessMessage(ctx, text("user-b", "I have a headache"))
    require.NoError(t, err)

    // mid-sequence emergency wins over the pending question
    resp, err := ts.ProcessMessage(ctx, text("user-b", "seene mein dard ho raha hai"))
    require.NoError(t, err)
    assert.Equal(t, models.IntentEmergency, resp.Intent)
    assert.Contains(t, resp.Text, "seene mein dard")
    assert.True(t, logger.last().IsEmergency)

    // the sequence was abandoned, a plain answer now falls through
    resp, err = ts.ProcessMessage(ctx, text("user-b", "hello"))
    require.NoError(t, err)
    assert.Equal(t, models.IntentGreeting, resp.Intent)
}

func TestEmergencyResponseNamesCategory(t *testing.T) {
    ts, _ := newTestTriage()
    ctx := context.Background()

    resp, err := ts.ProcessMessage(ctx, text("user-n", "chest pain"))
    require.NoError(t, err)
    assert.Equal(t, models.IntentEmergency, resp.Intent)
    assert.Contains(t, resp.Text, "chest pain / breathing trouble")
}

func TestEmptyMessageMidClarificationReprompts(t *testing.T) {
    ts, _ := newTestTriage()
    ctx := context.Background()

    resp, err := ts.ProcessMessage(ctx, text("user-o", "I have a headache"))
    require.NoError(t, err)
    assert.Equal(t, models.StateAwaitingDuration, resp.State)

    // an unsupported message type arrives with no text: the question
    // repeats and the sequence stays where it was
    resp, err = ts.ProcessMessage(ctx, text("user-o", ""))
    require.NoError(t, err)
    assert.Equal(t, models.StateAwaitingDuration, resp.State)
    assert.Contains(t, resp.Text, "How long")

    resp, err = ts.ProcessMessage(ctx, text("user-o", "2 days"))
    require.NoError(t, err)
    assert.Equal(t, models.StateAwaitingSeverity, resp.State)
}

func TestConcurrentMessagesSameSender(t *testing.T) {
    ts, _ := newTestTriage()
    ctx := context.Background()

    var wg sync.WaitGroup
    for i := 0; i < 8; i++ {
        wg.Add(1)
        go func() {
            defer wg.Done()
            resp, err := ts.ProcessMessage(ctx, text("user-p", "I have a headache"))
            assert.NoError(t, err)
            assert.NotEmpty(t, resp.Text)
        }()
    }
    wg.Wait()

    // the session survived the burst in a coherent state
    resp, err := ts.ProcessMessage(ctx, text("user-p", "2 days"))
    require.NoError(t, err)
    assert.Equal(t, models.IntentSymptomCheck, resp.Intent)
    assert.Equal(t, models.StateAwaitingSeverity, resp.State)
}

func TestDefaultLanguageAppliesWithoutEvidence(t *testing.T) {
    ts, _ := newTestTriageWithDefault(models.LangHindi)
    ctx := context.Background()

    // "clinic chahiye" carries no language evidence, so the configured
    // default decides the reply language
    resp, err := ts.ProcessMessage(ctx, text("user-q", "clinic chahiye"))
    require.NoError(t, err)
    assert.Equal(t, models.LangHindi, resp.Language)
    assert.Contains(t, resp.Text, "area, city, ya pincode")
}

func TestCancelMidClarification(t *testing.T) {
    ts, _ := newTestTriage()
    ctx := context.Background()

    _, err := ts.ProcessMessage(ctx, text("user-c", "I have a headache"))
    require.NoError(t, err)

    resp, err := ts.ProcessMessage(ctx, text("user-c", "stop"))
    require.NoError(t, err)
    assert.Equal(t, models.IntentCancelled, resp.Intent)
    assert.Contains(t, resp.Text, "cancelled")

    // idle again: "stop" alone no longer cancels anything
    resp, err = ts.ProcessMessage(ctx, text("user-c", "stop"))
    require.NoError(t, err)
    assert.NotEqual(t, models.IntentCancelled, resp.Intent)
}

func TestNewSymptomRestartsClarification(t *testing.T) {
    ts, _ := newTestTriage()
    ctx := context.Background()

    _, err := ts.ProcessMessage(ctx, text("user-d", "I have a headache"))
    require.NoError(t, err)

    resp, err := ts.ProcessMessage(ctx, text("user-d", "actually it is stomach pain"))
    require.NoError(t, err)
    assert.Equal(t, models.IntentSymptomCheck, resp.Intent)
    assert.Contains(t, resp.Text, "stomach pain")
    assert.Contains(t, resp.Text, "How long")
}

func TestClinicRequestWithLocation(t *testing.T) {
    ts, _ := newTestTriage()
    ctx := context.Background()

    resp, err := ts.ProcessMessage(ctx, text("user-e", "Doctor chahiye Andheri"))
    require.NoError(t, err)
    assert.Equal(t, models.IntentClinicSearch, resp.Intent)
    assert.Contains(t, resp.Text, "Andheri Health Centre")
}

func TestClinicRequestWithoutLocationAsksForIt(t *testing.T) {
    ts, _ := newTestTriage()
    ctx := context.Background()

    resp, err := ts.ProcessMessage(ctx, text("user-f", "clinic chahiye"))
    require.NoError(t, err)
    assert.Equal(t, models.IntentClinicSearch, resp.Intent)
    assert.Contains(t, resp.Text, "area, city, or pincode")

    // the next message is treated as the location
    resp, err = ts.ProcessMessage(ctx, text("user-f", "Andheri"))
    require.NoError(t, err)
    assert.Equal(t, models.IntentClinicSearch, resp.Intent)
    assert.Contains(t, resp.Text, "Andheri Health Centre")
}

func TestClinicNoMatch(t *testing.T) {
    ts, _ := newTestTriage()
    ctx := context.Background()

    resp, err := ts.ProcessMessage(ctx, text("user-g", "clinic in Pune please"))
    require.NoError(t, err)
    assert.Equal(t, models.IntentClinicSearch, resp.Intent)
    assert.Contains(t, resp.Text, "Pune")
    assert.Contains(t, resp.Text, "Google Maps")
}

func TestGreetingAndFallback(t *testing.T) {
    ts, _ := newTestTriage()
    ts.now = func() time.Time {
        return time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
    }
    ctx := context.Background()

    resp, err := ts.ProcessMessage(ctx, text("user-h", "hello"))
    require.NoError(t, err)
    assert.Equal(t, models.IntentGreeting, resp.Intent)
    assert.Contains(t, resp.Text, "Good morning")
    assert.Contains(t, resp.Text, "SwasthyaGuide")

    resp, err = ts.ProcessMessage(ctx, text("user-h", "what is the weather"))
    require.NoError(t, err)
    assert.Equal(t, models.IntentGeneral, resp.Intent)
    assert.Contains(t, resp.Text, "health tips")
}

func TestSkinInfoAndImageInstructions(t *testing.T) {
    ts, _ := newTestTriage()
    ctx := context.Background()

    resp, err := ts.ProcessMessage(ctx, text("user-i", "I have a rash on my arm"))
    require.NoError(t, err)
    assert.Equal(t, models.IntentSkinInfo, resp.Intent)

    resp, err = ts.ProcessMessage(ctx, text("user-i", "how do I send a photo"))
    require.NoError(t, err)
    assert.Equal(t, models.IntentImageRequest, resp.Intent)
}

func TestLanguageStickinessAcrossTurns(t *testing.T) {
    ts, _ := newTestTriage()
    ctx := context.Background()

    resp, err := ts.ProcessMessage(ctx, text("user-j", "মাথা ব্যথা করছে"))
    require.NoError(t, err)
    assert.Equal(t, models.LangBengali, resp.Language)

    // a numeric answer keeps the session language
    resp, err = ts.ProcessMessage(ctx, text("user-j", "2"))
    require.NoError(t, err)
    assert.Equal(t, models.LangBengali, resp.Language)
}

func TestProcessImageValidationReply(t *testing.T) {
    ts, _ := newTestTriage()
    ctx := context.Background()

    resp, err := ts.ProcessImage(ctx, models.InboundMessage{SenderID: "user-k", Channel: models.ChannelWhatsApp})
    require.NoError(t, err)
    assert.Equal(t, models.IntentImageAnalysis, resp.Intent)
    assert.Contains(t, resp.Text, "empty")
}

func TestProcessImageUsesSessionLanguage(t *testing.T) {
    ts, _ := newTestTriage()
    ctx := context.Background()

    _, err := ts.ProcessMessage(ctx, text("user-l", "mujhe bukhar hai"))
    require.NoError(t, err)

    resp, err := ts.ProcessImage(ctx, models.InboundMessage{SenderID: "user-l"})
    require.NoError(t, err)
    assert.Equal(t, models.LangHindi, resp.Language)
    assert.Contains(t, resp.Text, "khaali")
}

func TestConversationLogging(t *testing.T) {
    ts, logger := newTestTriage()
    ctx := context.Background()

    _, err := ts.ProcessMessage(ctx, text("user-m", "mujhe bukhar hai"))
    require.NoError(t, err)

    record := logger.last()
    require.NotNil(t, record)
    assert.Equal(t, "user-m", record.SenderID)
    assert.Equal(t, "mujhe bukhar hai", record.UserMessage)
    assert.Equal(t, models.IntentSymptomCheck, record.Intent)
    assert.Equal(t, "text", record.MessageType)
    assert.False(t, record.IsEmergency)
}
