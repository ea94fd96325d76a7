package models

import "time"

// SessionState tracks where a conversation is in the symptom
// clarification sequence.
type SessionState string

const (
    StateIdle                       SessionState = "idle"
    StateAwaitingDuration           SessionState = "awaiting_duration"
    StateAwaitingSeverity           SessionState = "awaiting_severity"
    StateAwaitingFever              SessionState = "awaiting_fever"
    StateAwaitingAdditionalSymptoms SessionState = "awaiting_additional_symptoms"
    StateAwaitingLocation           SessionState = "awaiting_location"
)

// QuestionKind identifies which clarification question an answer belongs to.
type QuestionKind string

const (
    QuestionDuration           QuestionKind = "duration"
    QuestionSeverity           QuestionKind = "severity"
    QuestionFever              QuestionKind = "fever"
    QuestionAdditionalSymptoms QuestionKind = "additional_symptoms"
)

// CollectedAnswer is one answer gathered during the clarification sequence.
// Answers keep their arrival order so the final guidance can replay them.
type CollectedAnswer struct {
    Question QuestionKind `bson:"question" json:"question"`
    Answer   string       `bson:"answer" json:"answer"`
}

// ConversationSession is the per-user state persisted between inbound
// messages, keyed by the sender identifier (WhatsApp phone number or a
// generated web session id).
type ConversationSession struct {
    SenderID       string            `bson:"sender_id" json:"sender_id"`
    Language       Language          `bson:"language" json:"language"`
    State          SessionState      `bson:"state" json:"state"`
    PendingSymptom SymptomID         `bson:"pending_symptom,omitempty" json:"pending_symptom,omitempty"`
    Answers        []CollectedAnswer `bson:"answers,omitempty" json:"answers,omitempty"`
    LastActivity   time.Time         `bson:"last_activity" json:"last_activity"`
    CreatedAt      time.Time         `bson:"created_at" json:"created_at"`
}

// NewSession returns a fresh idle session for a sender.
func NewSession(senderID string) *ConversationSession {
    now := time.Now()
    return &ConversationSession{
        SenderID:     senderID,
        State:        StateIdle,
        LastActivity: now,
        CreatedAt:    now,
    }
}

// Reset returns the session to idle and discards any clarification
// progress. The detected language survives the reset.
func (s *ConversationSession) Reset() {
    s.State = StateIdle
    s.PendingSymptom = ""
    s.Answers = nil
}

// Clone returns an independent copy of the session, including the
// answers slice, so callers can mutate it without aliasing stored state.
func (s *ConversationSession) Clone() *ConversationSession {
    out := *s
    if len(s.Answers) > 0 {
        out.Answers = append([]CollectedAnswer(nil), s.Answers...)
    }
    return &out
}

// Record appends an answer for the given question.
func (s *ConversationSession) Record(q QuestionKind, answer string) {
    s.Answers = append(s.Answers, CollectedAnswer{Question: q, Answer: answer})
}

// AnswerFor returns the stored answer for a question kind, if any.
func (s *ConversationSession) AnswerFor(q QuestionKind) (string, bool) {
    for _, a := range s.Answers {
        if a.Question == q {
            return a.Answer, true
        }
    }
    return "", false
}

// InClarification reports whether a symptom clarification is in progress.
func (s *ConversationSession) InClarification() bool {
    switch s.State {
    case StateAwaitingDuration, StateAwaitingSeverity, StateAwaitingFever, StateAwaitingAdditionalSymptoms:
        return true
    }
    return false
}

// Expired reports whether the session passed its inactivity window.
func (s *ConversationSession) Expired(timeout time.Duration, now time.Time) bool {
    return now.Sub(s.LastActivity) > timeout
}
