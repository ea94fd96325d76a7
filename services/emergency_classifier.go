package services

import (
    "strings"

    "swasthya-chatbot-backend/models"
    "swasthya-chatbot-backend/utils"
)

// EmergencyClassifier scans text for critical-symptom keywords. It sits
// at the top of the triage priority order: any match preempts whatever
// else the message might contain, including an in-progress clarification.
type EmergencyClassifier struct {
    // per-language keyword tables, normalized at construction
    keywords map[models.Language]map[models.EmergencyType][]string
    // urgent terms are often typed in English or Hinglish regardless of
    // the detected language, so this overlay applies to every message
    overlay map[models.EmergencyType][]string
}

func NewEmergencyClassifier() *EmergencyClassifier {
    raw := map[models.Language]map[models.EmergencyType][]string{
        models.LangHindi: {
            models.EmergencyCardiac: {
                "seene mein dard", "dil ka dard", "saans nahi aa rahi", "lakwa",
                "सीने में दर्द", "दिल का दौरा", "साँस नहीं आ रही", "सांस नहीं आ रही", "लकवा",
            },
            models.EmergencyBleeding: {"bahut bleeding", "khoon bah raha", "खून बह रहा", "बहुत खून"},
            models.EmergencyFainting: {"behosh", "बेहोश"},
            models.EmergencyAccident: {"durghatna", "दुर्घटना"},
        },
        models.LangMarathi: {
            models.EmergencyCardiac:  {"छातीत दुखत", "श्वास घेता येत नाही", "हृदयविकार"},
            models.EmergencyBleeding: {"रक्तस्त्राव"},
            models.EmergencyFainting: {"बेशुद्ध"},
            models.EmergencyAccident: {"अपघात"},
        },
        models.LangBengali: {
            models.EmergencyCardiac:  {"বুকে ব্যথা", "শ্বাস নিতে পারছি না", "হার্ট অ্যাটাক"},
            models.EmergencyBleeding: {"রক্তপাত"},
            models.EmergencyFainting: {"অজ্ঞান"},
            models.EmergencyAccident: {"দুর্ঘটনা"},
        },
        models.LangTamil: {
            models.EmergencyCardiac:  {"மார்பு வலி", "மூச்சுத் திணறல்", "மாரடைப்பு"},
            models.EmergencyBleeding: {"இரத்தப்போக்கு"},
            models.EmergencyFainting: {"மயக்கம்"},
            models.EmergencyAccident: {"விபத்து"},
        },
        models.LangTelugu: {
            models.EmergencyCardiac:  {"ఛాతీ నొప్పి", "గుండెపోటు", "ఊపిరి ఆడటం లేదు"},
            models.EmergencyBleeding: {"రక్తస్రావం"},
            models.EmergencyFainting: {"స్పృహ తప్పింది"},
            models.EmergencyAccident: {"ప్రమాదం"},
        },
        models.LangPunjabi: {
            models.EmergencyCardiac:  {"ਛਾਤੀ ਵਿੱਚ ਦਰਦ", "ਸਾਹ ਨਹੀਂ ਆ ਰਿਹਾ", "ਦਿਲ ਦਾ ਦੌਰਾ"},
            models.EmergencyBleeding: {"ਖੂਨ ਵਗ ਰਿਹਾ"},
            models.EmergencyFainting: {"ਬੇਹੋਸ਼"},
            models.EmergencyAccident: {"ਹਾਦਸਾ"},
        },
        models.LangGujarati: {
            models.EmergencyCardiac:  {"છાતીમાં દુખાવો", "શ્વાસ લેવામાં તકલીફ", "હાર્ટ એટેક"},
            models.EmergencyBleeding: {"લોહી વહે છે"},
            models.EmergencyFainting: {"બેભાન"},
            models.EmergencyAccident: {"અકસ્માત"},
        },
    }

    rawOverlay := map[models.EmergencyType][]string{
        models.EmergencyCardiac: {
            "chest pain", "heart attack", "can't breathe", "cant breathe",
            "breathing difficulty", "stroke", "paralysis",
        },
        models.EmergencyBleeding: {"heavy bleeding", "bleeding heavily"},
        models.EmergencyFainting: {"fainting", "fainted", "unconscious"},
        models.EmergencyAccident: {"severe accident", "accident"},
    }

    ec := &EmergencyClassifier{
        keywords: make(map[models.Language]map[models.EmergencyType][]string, len(raw)),
        overlay:  normalizeSet(rawOverlay),
    }
    for lang, set := range raw {
        ec.keywords[lang] = normalizeSet(set)
    }
    return ec
}

func normalizeSet(set map[models.EmergencyType][]string) map[models.EmergencyType][]string {
    out := make(map[models.EmergencyType][]string, len(set))
    for category, words := range set {
        normalized := make([]string, len(words))
        for i, w := range words {
            normalized[i] = utils.NormalizeText(w)
        }
        out[category] = normalized
    }
    return out
}

// Classify returns the highest-severity emergency category matched in
// the text, or EmergencyNone. Matching is case-insensitive, diacritic
// normalized substring containment; when several categories co-occur
// the fixed severity ranking decides, not scan order.
func (ec *EmergencyClassifier) Classify(text string, language models.Language) models.EmergencyType {
    normalized := utils.NormalizeText(text)
    if strings.TrimSpace(normalized) == "" {
        return models.EmergencyNone
    }

    best := models.EmergencyNone
    match := func(set map[models.EmergencyType][]string) {
        for category, words := range set {
            if category.Severity() <= best.Severity() {
                continue
            }
            for _, w := range words {
                if strings.Contains(normalized, w) {
                    best = category
                    break
                }
            }
        }
    }

    if set, ok := ec.keywords[language]; ok {
        match(set)
    }
    match(ec.overlay)

    return best
}
