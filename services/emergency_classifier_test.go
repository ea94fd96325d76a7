package services

import (
    "testing"

    "github.com/stretchr/testify/assert"

    "swasthya-chatbot-backend/models"
)

func TestClassifyEmergencyEnglishOverlay(t *testing.T) {
    ec := NewEmergencyClassifier()

    tests := []struct {
        text string
        lang models.Language
        want models.EmergencyType
    }{
        {"I have chest pain", models.LangEnglish, models.EmergencyCardiac},
        {"chest pain", models.LangTamil, models.EmergencyCardiac}, // overlay applies to every language
        {"heavy bleeding from the wound", models.LangEnglish, models.EmergencyBleeding},
        {"he fainted suddenly", models.LangEnglish, models.EmergencyFainting},
        {"there was an accident", models.LangEnglish, models.EmergencyAccident},
        {"mild headache since morning", models.LangEnglish, models.EmergencyNone},
        {"", models.LangEnglish, models.EmergencyNone},
    }
    for _, tt := range tests {
        assert.Equal(t, tt.want, ec.Classify(tt.text, tt.lang), tt.text)
    }
}

func TestClassifyEmergencyCaseInsensitive(t *testing.T) {
    ec := NewEmergencyClassifier()
    assert.Equal(t, models.EmergencyCardiac, ec.Classify("CHEST PAIN and sweating", models.LangEnglish))
}

func TestClassifyEmergencyHindi(t *testing.T) {
    ec := NewEmergencyClassifier()
    assert.Equal(t, models.EmergencyCardiac, ec.Classify("seene mein dard ho raha hai", models.LangHindi))
    assert.Equal(t, models.EmergencyFainting, ec.Classify("woh behosh ho gaya", models.LangHindi))
}

func TestClassifyEmergencyDevanagari(t *testing.T) {
    ec := NewEmergencyClassifier()
    assert.Equal(t, models.EmergencyCardiac, ec.Classify("सीने में दर्द हो रहा है", models.LangHindi))
    assert.Equal(t, models.EmergencyCardiac, ec.Classify("साँस नहीं आ रही", models.LangHindi))
    assert.Equal(t, models.EmergencyBleeding, ec.Classify("खून बह रहा है", models.LangHindi))
    assert.Equal(t, models.EmergencyFainting, ec.Classify("वह बेहोश हो गया", models.LangHindi))
}

func TestClassifyEmergencySeverityOrdering(t *testing.T) {
    ec := NewEmergencyClassifier()

    // cardiac outranks bleeding regardless of keyword position
    got := ec.Classify("heavy bleeding and chest pain", models.LangEnglish)
    assert.Equal(t, models.EmergencyCardiac, got)

    got = ec.Classify("accident, he is unconscious", models.LangEnglish)
    assert.Equal(t, models.EmergencyFainting, got)
}
