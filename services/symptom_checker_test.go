package services

import (
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "swasthya-chatbot-backend/models"
)

func newTestChecker() *SymptomChecker {
    return NewSymptomChecker(NewTranslator())
}

func TestExtractSymptom(t *testing.T) {
    sc := newTestChecker()

    tests := []struct {
        text string
        want models.SymptomID
    }{
        {"I have a headache since morning", models.SymptomHeadache},
        {"mujhe bukhar hai", models.SymptomFever},
        {"मुझे बुखार है", models.SymptomFever},
        {"सिर दर्द हो रहा है", models.SymptomHeadache},
        {"पेट में दर्द है", models.SymptomStomachPain},
        {"khansi ho rahi hai", models.SymptomCough},
        {"pet dard se pareshan hoon", models.SymptomStomachPain},
        {"I have a cold", models.SymptomCold},
        {"எனக்கு தலைவலி", models.SymptomHeadache},
        {"মাথা ব্যথা করছে", models.SymptomHeadache},
        {"kamzori lag rahi hai", models.SymptomWeakness},
    }
    for _, tt := range tests {
        got, ok := sc.ExtractSymptom(tt.text)
        require.True(t, ok, tt.text)
        assert.Equal(t, tt.want, got, tt.text)
    }

    _, ok := sc.ExtractSymptom("where is your clinic")
    assert.False(t, ok)
}

func TestClarificationSequenceOrder(t *testing.T) {
    sc := newTestChecker()
    session := models.NewSession("tester")
    session.Language = models.LangEnglish

    prompt := sc.Begin(session, models.SymptomHeadache)
    assert.Contains(t, prompt, "How long")
    assert.Equal(t, models.StateAwaitingDuration, session.State)
    assert.Equal(t, models.SymptomHeadache, session.PendingSymptom)

    prompt = sc.Continue(session, "2 days")
    assert.Contains(t, prompt, "severe")
    assert.Equal(t, models.StateAwaitingSeverity, session.State)

    prompt = sc.Continue(session, "mild")
    assert.Contains(t, prompt, "fever")
    assert.Equal(t, models.StateAwaitingFever, session.State)

    prompt = sc.Continue(session, "no")
    assert.Contains(t, prompt, "other symptoms")
    assert.Equal(t, models.StateAwaitingAdditionalSymptoms, session.State)

    guidance := sc.Continue(session, "none")
    assert.Contains(t, guidance, "headache")
    assert.Contains(t, guidance, "2 days")
    assert.Contains(t, guidance, "mild")

    // sequence completes only after exactly four answers
    assert.Equal(t, models.StateIdle, session.State)
    assert.Empty(t, session.PendingSymptom)
    assert.Empty(t, session.Answers)
}

func TestContinueEmptyAnswerDoesNotAdvance(t *testing.T) {
    sc := newTestChecker()
    session := models.NewSession("tester")
    session.Language = models.LangEnglish

    sc.Begin(session, models.SymptomHeadache)

    prompt := sc.Continue(session, "   ")
    assert.Contains(t, prompt, "How long")
    assert.Equal(t, models.StateAwaitingDuration, session.State)
    assert.Empty(t, session.Answers)

    sc.Continue(session, "2 days")
    prompt = sc.Continue(session, "")
    assert.Contains(t, prompt, "severe")
    assert.Equal(t, models.StateAwaitingSeverity, session.State)
    assert.Len(t, session.Answers, 1)
}

func TestGuidanceWithoutRedFlag(t *testing.T) {
    sc := newTestChecker()
    session := models.NewSession("tester")
    session.Language = models.LangEnglish

    sc.Begin(session, models.SymptomHeadache)
    sc.Continue(session, "2 days")
    sc.Continue(session, "mild")
    sc.Continue(session, "no")
    guidance := sc.Continue(session, "none")

    assert.NotContains(t, guidance, "see a doctor soon")
}

func TestGuidanceRedFlags(t *testing.T) {
    tests := []struct {
        name     string
        duration string
        severity string
        fever    string
    }{
        {"long duration", "many days now", "mild", "no"},
        {"severe pain", "1 day", "severe", "no"},
        {"fever positive", "1 day", "mild", "yes"},
        {"fever positive hindi", "1 day", "mild", "haan"},
    }
    for _, tt := range tests {
        t.Run(tt.name, func(t *testing.T) {
            sc := newTestChecker()
            session := models.NewSession("tester")
            session.Language = models.LangEnglish

            sc.Begin(session, models.SymptomFever)
            sc.Continue(session, tt.duration)
            sc.Continue(session, tt.severity)
            sc.Continue(session, tt.fever)
            guidance := sc.Continue(session, "none")

            assert.Contains(t, guidance, "see a doctor soon")
        })
    }
}

func TestFeverNegationIsNotRedFlag(t *testing.T) {
    assert.False(t, answeredPositive("nahi hai"))
    assert.False(t, answeredPositive("no fever"))
    assert.True(t, answeredPositive("yes, since yesterday"))
}

func TestIsCancel(t *testing.T) {
    sc := newTestChecker()
    assert.True(t, sc.IsCancel("stop"))
    assert.True(t, sc.IsCancel("Cancel"))
    assert.True(t, sc.IsCancel("band karo"))
    assert.False(t, sc.IsCancel("please stop the pain"))
}

func TestBeginRestartsOnNewSymptom(t *testing.T) {
    sc := newTestChecker()
    session := models.NewSession("tester")
    session.Language = models.LangEnglish

    sc.Begin(session, models.SymptomHeadache)
    sc.Continue(session, "2 days")

    // a different complaint mid-sequence restarts from the first question
    prompt := sc.Begin(session, models.SymptomStomachPain)
    assert.Contains(t, prompt, "stomach pain")
    assert.Equal(t, models.StateAwaitingDuration, session.State)
    assert.Equal(t, models.SymptomStomachPain, session.PendingSymptom)
    assert.Empty(t, session.Answers)
}
