package models

import "fmt"

// SymptomID is a canonical symptom category extracted from user text.
type SymptomID string

const (
    SymptomHeadache    SymptomID = "headache"
    SymptomFever       SymptomID = "fever"
    SymptomCough       SymptomID = "cough"
    SymptomCold        SymptomID = "cold"
    SymptomStomachPain SymptomID = "stomach_pain"
    SymptomVomiting    SymptomID = "vomiting"
    SymptomDiarrhea    SymptomID = "diarrhea"
    SymptomBodyPain    SymptomID = "body_pain"
    SymptomWeakness    SymptomID = "weakness"
)

// EmergencyType is a critical-symptom category. The zero value means no
// emergency was detected.
type EmergencyType string

const (
    EmergencyNone     EmergencyType = ""
    EmergencyCardiac  EmergencyType = "cardiac_breathing"
    EmergencyBleeding EmergencyType = "bleeding"
    EmergencyFainting EmergencyType = "fainting"
    EmergencyAccident EmergencyType = "accident"
)

// Severity ranks emergency categories so that co-occurring keywords
// resolve deterministically. Higher wins.
func (e EmergencyType) Severity() int {
    switch e {
    case EmergencyCardiac:
        return 4
    case EmergencyBleeding:
        return 3
    case EmergencyFainting:
        return 2
    case EmergencyAccident:
        return 1
    }
    return 0
}

// MessageIntent labels the triage outcome of one inbound message.
type MessageIntent string

const (
    IntentEmergency     MessageIntent = "emergency"
    IntentSymptomCheck  MessageIntent = "symptom_check"
    IntentClinicSearch  MessageIntent = "clinic_search"
    IntentImageAnalysis MessageIntent = "image_analysis"
    IntentImageRequest  MessageIntent = "image_request"
    IntentSkinInfo      MessageIntent = "skin_info"
    IntentGreeting      MessageIntent = "greeting"
    IntentCancelled     MessageIntent = "cancelled"
    IntentGeneral       MessageIntent = "general"
)

// TriageResponse is what the orchestrator hands back to the transport
// layer for delivery. It is always populated, even on failure paths.
type TriageResponse struct {
    Text     string        `json:"text"`
    Language Language      `json:"language"`
    Intent   MessageIntent `json:"intent"`
    State    SessionState  `json:"state,omitempty"`
}

// AnalysisMode tags which tier of the image pipeline produced a result.
type AnalysisMode string

const (
    AnalysisModeFull       AnalysisMode = "full"
    AnalysisModeSimplified AnalysisMode = "simplified"
)

// AnalysisResult is the outcome of the image analysis pipeline.
type AnalysisResult struct {
    Success bool         `json:"success"`
    Message string       `json:"message"`
    Mode    AnalysisMode `json:"mode"`
}

// ValidationKind distinguishes the image validation failures so each can
// carry its own localized message.
type ValidationKind string

const (
    ValidationEmpty     ValidationKind = "empty"
    ValidationTooLarge  ValidationKind = "too_large"
    ValidationTooSmall  ValidationKind = "too_small"
    ValidationBadFormat ValidationKind = "bad_format"
)

// ValidationError rejects malformed image input before any analysis runs.
// It is always recoverable and maps to a specific response template.
type ValidationError struct {
    Kind ValidationKind
}

func (e *ValidationError) Error() string {
    return fmt.Sprintf("image validation failed: %s", e.Kind)
}

// TemplateKey returns the response template that localizes this failure.
func (e *ValidationError) TemplateKey() string {
    return "image_error_" + string(e.Kind)
}

// TerminalProcessingError means both analysis tiers failed, or a required
// dependency was unavailable. The session is left untouched so the user
// can retry the same turn.
type TerminalProcessingError struct {
    Cause error
}

func (e *TerminalProcessingError) Error() string {
    return fmt.Sprintf("terminal processing error: %v", e.Cause)
}

func (e *TerminalProcessingError) Unwrap() error {
    return e.Cause
}
