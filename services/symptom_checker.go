package services

import (
    "strings"

    "swasthya-chatbot-backend/models"
    "swasthya-chatbot-backend/utils"
)

// fixed scan order so that multi-symptom text resolves deterministically
var symptomOrder = []models.SymptomID{
    models.SymptomHeadache,
    models.SymptomFever,
    models.SymptomCough,
    models.SymptomCold,
    models.SymptomStomachPain,
    models.SymptomVomiting,
    models.SymptomDiarrhea,
    models.SymptomBodyPain,
    models.SymptomWeakness,
}

// symptom trigger keywords across all eight languages and their
// Romanized forms
var symptomKeywords = map[models.SymptomID][]string{
    models.SymptomHeadache: {
        "sir dard", "headache", "head pain", "sar dard",
        "सिर दर्द", "सिरदर्द",
        "डोकेदुखी", "dokedhukhi",
        "মাথা ব্যথা", "matha byatha",
        "தலைவலி", "thalaivirai",
        "తలనొప్పి", "thalanoppi",
        "ਸਿਰ ਦਰਦ", "sir darad",
        "માથાનો દુખાવો", "mathano dukhavo",
    },
    models.SymptomFever: {
        "bukhar", "fever", "badan garam", "बुखार",
        "ताप", "taap",
        "জ্বর", "jvar",
        "காய்ச்சல்", "kaychhal",
        "జ్వరం", "jvaram",
        "ਬੁਖ਼ਾਰ",
        "તાવ", "tav",
    },
    models.SymptomCough: {
        "khansi", "cough", "khaansi", "खांसी", "खाँसी",
        "खोकला", "khokala",
        "কাশি", "kashi",
        "இருமல்", "irumal",
        "దగ్గు", "daggu",
        "ਖੰਘ", "khangh",
        "ઉધરસ", "udharas",
    },
    models.SymptomCold: {
        "sardi", "zukam", "nazla", "runny nose", "cold", "जुकाम",
        "सर्दी", "sardhi",
        "সর্দি",
        "சளி", "chazhi",
        "జలుబు", "jalabu",
        "ਜ਼ੁਕਾਮ",
        "શરદી", "shardi",
    },
    models.SymptomStomachPain: {
        "pet dard", "stomach pain", "pet mein dard", "paet dard",
        "पेट दर्द", "पेट में दर्द",
        "पोटदुखी", "potdukhi",
        "পেট ব্যথা", "pet byatha",
        "வயிற்று வலி", "vayitru vali",
        "కడుపు నొప్పి", "kadapu noppi",
        "ਪੇਟ ਦਰਦ", "pet darad",
        "પેટમાં દુખાવો", "petman dukhavo",
    },
    models.SymptomVomiting: {
        "ulti", "vomit", "vomiting", "qai", "उल्टी",
        "उलटी", "oolti",
        "বমি", "bomi",
        "வாந்தி", "vanthi",
        "వాంతులు", "vantulu",
        "ਉਲਟੀ",
        "ઉલટી",
    },
    models.SymptomDiarrhea: {
        "dast", "loose motion", "diarrhea", "patla pakhana", "दस्त",
        "जुलाब", "julab",
        "ডায়রিয়া",
        "வயிற்றுப்போக்கு", "vairuppokku",
        "విరేచనాలు", "virechanalu",
        "ਦਸਤ",
        "ઝાડા", "jhada",
    },
    models.SymptomBodyPain: {
        "badan dard", "body pain", "body ache", "sharir dard",
        "बदन दर्द", "शरीर दर्द",
        "शरीर दुखणे", "sharir dukhane",
        "শরীর ব্যথা", "shorir byatha",
        "உடல் வலி", "udal vali",
        "శరీర నొప్పి", "sharira noppi",
        "ਸਰੀਰ ਦਰਦ", "sharir darad",
        "શરીરમાં દુખાવો", "sharirman dukhavo",
    },
    models.SymptomWeakness: {
        "kamzori", "weakness", "thakan", "fatigue", "कमजोरी", "थकान",
        "अशक्तपणा", "ashaktapana",
        "দুর্বলতা", "durbalata",
        "பலவீனம்", "palaveenam",
        "బలహీనత", "balaheenatha",
        "ਕਮਜ਼ੋਰੀ",
        "નબળાઈ", "nablai",
    },
}

var cancelKeywords = []string{
    "stop", "cancel", "quit", "band karo", "rehne do", "ruko",
    "रद्द", "बंद करो", "थांबा", "বাতিল", "நிறுத்து", "ఆపు", "ਰੋਕੋ", "બંધ કરો",
}

// red-flag markers inside collected answers that trigger the
// see-a-doctor escalation in the final guidance
var (
    redFlagDuration = []string{
        "many days", "week", "weeks", "hafta", "hafte", "mahina",
        "bahut din", "kai din", "4 din", "5 din", "6 din", "7 din",
        "4 days", "5 days", "6 days", "7 days", "10 days",
    }
    redFlagSeverity = []string{
        "severe", "very bad", "unbearable", "bahut zyada", "bahut tez",
        "asahniya", "bardasht nahi",
    }
    redFlagFever = []string{
        "yes", "haan", "han", "हाँ", "होय", "হ্যাঁ",
        "ஆம்", "అవును", "ਹਾਂ", "હા",
    }
    feverNegations = []string{"no", "nahi", "nahin", "नाही", "না", "இல்லை", "లేదు", "ਨਹੀਂ", "ના"}
)

// SymptomChecker runs the multi-turn clarification sequence: once a
// symptom keyword is recognized it asks four fixed questions (duration,
// severity, fever, other symptoms) before composing guidance. All
// session mutation happens here; persistence is the caller's concern.
type SymptomChecker struct {
    keywords   map[models.SymptomID][]string
    translator *Translator
}

func NewSymptomChecker(translator *Translator) *SymptomChecker {
    normalized := make(map[models.SymptomID][]string, len(symptomKeywords))
    for id, words := range symptomKeywords {
        list := make([]string, len(words))
        for i, w := range words {
            list[i] = utils.NormalizeText(w)
        }
        normalized[id] = list
    }
    return &SymptomChecker{keywords: normalized, translator: translator}
}

// ExtractSymptom returns the first symptom category whose keywords
// appear in the text.
func (sc *SymptomChecker) ExtractSymptom(text string) (models.SymptomID, bool) {
    normalized := utils.NormalizeText(text)
    for _, id := range symptomOrder {
        for _, kw := range sc.keywords[id] {
            if strings.Contains(normalized, kw) {
                return id, true
            }
        }
    }
    return "", false
}

// IsCancel reports whether the text is an explicit cancellation.
func (sc *SymptomChecker) IsCancel(text string) bool {
    normalized := strings.TrimSpace(utils.NormalizeText(text))
    for _, kw := range cancelKeywords {
        if normalized == utils.NormalizeText(kw) {
            return true
        }
    }
    return false
}

// Begin starts the clarification sequence for a newly detected symptom
// and returns the first prompt. Any prior progress is discarded, which
// also covers the restart-on-new-topic policy.
func (sc *SymptomChecker) Begin(session *models.ConversationSession, symptom models.SymptomID) string {
    session.Reset()
    session.PendingSymptom = symptom
    session.State = models.StateAwaitingDuration
    return sc.translator.Render(session.Language, "ask_duration", map[string]string{
        "symptom": sc.translator.SymptomName(session.Language, symptom),
    })
}

// Continue feeds the user's answer into the in-progress sequence and
// returns the next prompt, or the final guidance once all four answers
// are in. The four questions always run in the same order; there is no
// skip path.
func (sc *SymptomChecker) Continue(session *models.ConversationSession, answer string) string {
    answer = strings.TrimSpace(answer)
    if answer == "" {
        // a blank answer repeats the pending question, it never advances
        return sc.reprompt(session)
    }

    switch session.State {
    case models.StateAwaitingDuration:
        session.Record(models.QuestionDuration, answer)
        session.State = models.StateAwaitingSeverity
        return sc.translator.Render(session.Language, "ask_severity", nil)

    case models.StateAwaitingSeverity:
        // answers are passed through verbatim, never scored
        session.Record(models.QuestionSeverity, answer)
        session.State = models.StateAwaitingFever
        return sc.translator.Render(session.Language, "ask_fever", nil)

    case models.StateAwaitingFever:
        session.Record(models.QuestionFever, answer)
        session.State = models.StateAwaitingAdditionalSymptoms
        return sc.translator.Render(session.Language, "ask_additional", nil)

    case models.StateAwaitingAdditionalSymptoms:
        session.Record(models.QuestionAdditionalSymptoms, answer)
        guidance := sc.composeGuidance(session)
        session.Reset()
        return guidance
    }

    return ""
}

func (sc *SymptomChecker) reprompt(session *models.ConversationSession) string {
    switch session.State {
    case models.StateAwaitingDuration:
        return sc.translator.Render(session.Language, "ask_duration", map[string]string{
            "symptom": sc.translator.SymptomName(session.Language, session.PendingSymptom),
        })
    case models.StateAwaitingSeverity:
        return sc.translator.Render(session.Language, "ask_severity", nil)
    case models.StateAwaitingFever:
        return sc.translator.Render(session.Language, "ask_fever", nil)
    case models.StateAwaitingAdditionalSymptoms:
        return sc.translator.Render(session.Language, "ask_additional", nil)
    }
    return ""
}

func (sc *SymptomChecker) composeGuidance(session *models.ConversationSession) string {
    lang := session.Language
    duration, _ := session.AnswerFor(models.QuestionDuration)
    severity, _ := session.AnswerFor(models.QuestionSeverity)
    fever, _ := session.AnswerFor(models.QuestionFever)
    additional, _ := session.AnswerFor(models.QuestionAdditionalSymptoms)

    guidance := sc.translator.Render(lang, "symptom_guidance", map[string]string{
        "symptom":    sc.translator.SymptomName(lang, session.PendingSymptom),
        "duration":   duration,
        "severity":   severity,
        "fever":      fever,
        "additional": additional,
        "care":       sc.translator.Render(lang, "care_"+string(session.PendingSymptom), nil),
    })

    if hasRedFlag(duration, severity, fever) {
        guidance += sc.translator.Render(lang, "red_flag", nil)
    }
    return guidance
}

func hasRedFlag(duration, severity, fever string) bool {
    return containsAny(duration, redFlagDuration) ||
        containsAny(severity, redFlagSeverity) ||
        answeredPositive(fever)
}

func containsAny(answer string, markers []string) bool {
    normalized := utils.NormalizeText(answer)
    for _, m := range markers {
        if strings.Contains(normalized, utils.NormalizeText(m)) {
            return true
        }
    }
    return false
}

// answeredPositive matches the fever answer against affirmative words
// only as whole tokens. A negation anywhere in the answer ("nahi hai",
// "no fever") keeps it negative.
func answeredPositive(answer string) bool {
    normalized := utils.NormalizeText(answer)
    fields := strings.Fields(normalized)
    for _, field := range fields {
        token := strings.Trim(field, ".,!?")
        for _, no := range feverNegations {
            if token == utils.NormalizeText(no) {
                return false
            }
        }
    }
    for _, field := range fields {
        token := strings.Trim(field, ".,!?")
        for _, yes := range redFlagFever {
            if token == utils.NormalizeText(yes) {
                return true
            }
        }
    }
    return false
}
