package utils

import (
    "strings"

    "swasthya-chatbot-backend/models"
)

// script buckets for Unicode range classification
type script int

const (
    scriptNone script = iota
    scriptDevanagari
    scriptBengali
    scriptGurmukhi
    scriptGujarati
    scriptTamil
    scriptTelugu
    scriptLatin
)

var scriptLanguages = map[script]models.Language{
    scriptBengali:  models.LangBengali,
    scriptGurmukhi: models.LangPunjabi,
    scriptGujarati: models.LangGujarati,
    scriptTamil:    models.LangTamil,
    scriptTelugu:   models.LangTelugu,
    scriptLatin:    models.LangEnglish,
}

// Marathi and Hindi both write in Devanagari, so script detection alone
// cannot separate them. These are tokens that occur in one language but
// not the other (verb forms, pronouns, particles).
var marathiMarkers = []string{
    "आहे", "आहेत", "होते", "होती", "मी", "तुम्ही", "तुमचा", "माझा",
    "नाही", "काय", "कसे", "कुठे", "aahe", "aahes", "mi", "tumhi",
}

var hindiMarkers = []string{
    "है", "हैं", "था", "थी", "मैं", "आप", "आपका", "मेरा",
    "नहीं", "क्या", "कैसे", "कहाँ", "hain", "main", "aap",
}

// Romanized keyword lists for script-ambiguous (Latin) text. Regional
// languages carry a small weight boost because their Romanized markers
// are rarer and therefore stronger signals.
var keywordPatterns = map[models.Language]struct {
    tokens []string
    weight float64
}{
    models.LangHindi: {
        tokens: []string{
            "hai", "hain", "mujhe", "kya", "aap", "ko", "se", "mein",
            "ka", "ki", "ho", "thi", "tha", "main", "aapko", "mere",
            "tumhe", "usko", "yeh", "woh", "kaise", "kahan", "kab",
            "bukhar", "dard", "sir", "pet",
        },
        weight: 1,
    },
    models.LangEnglish: {
        tokens: []string{
            "the", "is", "are", "was", "were", "what", "how", "can",
            "have", "has", "with", "for", "from", "this", "that",
            "my", "your", "his", "her", "their", "pain", "fever",
            "headache", "stomach", "need", "help",
        },
        weight: 1,
    },
    models.LangMarathi: {
        tokens: []string{
            "aahe", "aahes", "aahot", "mi", "tumhi", "tyala",
            "mala", "tula", "kay", "kase", "kuthe", "kev", "asa",
        },
        weight: 1.2,
    },
    models.LangBengali: {
        tokens: []string{
            "ami", "tumi", "apni", "amar", "tomar", "apnar",
            "keno", "kothay", "kivabe", "ache", "chhilo",
        },
        weight: 1.2,
    },
    models.LangTamil: {
        tokens: []string{
            "nan", "nee", "neenga", "enna", "eppadi", "enga",
            "ennoda", "ungala", "iruku", "irundu",
        },
        weight: 1.2,
    },
    models.LangTelugu: {
        tokens: []string{
            "nenu", "nuvvu", "meeru", "naa", "nee", "mee",
            "enti", "ela", "ekkada", "undi", "unnadi",
        },
        weight: 1.2,
    },
    models.LangPunjabi: {
        tokens: []string{
            "tusi", "mera", "tera", "tusada",
            "kivein", "kithe", "si",
        },
        weight: 1.2,
    },
    models.LangGujarati: {
        tokens: []string{
            "hu", "tame", "maru", "taru", "tamaru",
            "shu", "kem", "kyaa", "chhe", "hato", "hati",
        },
        weight: 1.2,
    },
}

// supermajority of classifiable characters a single script must hold
// before script detection decides on its own
const scriptDominance = 0.6

// minimum characters in the winning script
const minScriptChars = 3

// DetectLanguage classifies text into one of the supported languages.
// Script detection runs first; Latin or inconclusive text falls back to
// Romanized keyword scoring. Empty or purely numeric/symbolic input
// returns the session's previously detected language, or English.
func DetectLanguage(text string, prior models.Language) models.Language {
    if strings.TrimSpace(text) == "" {
        return priorOrEnglish(prior)
    }

    counts := make(map[script]int)
    total := 0
    for _, r := range text {
        s := classifyRune(r)
        if s == scriptNone {
            continue
        }
        counts[s]++
        total++
    }

    if total == 0 {
        // numeric or symbolic input only
        return priorOrEnglish(prior)
    }

    dominant, dominantCount := scriptNone, 0
    for s, c := range counts {
        if c > dominantCount {
            dominant, dominantCount = s, c
        }
    }

    if dominant != scriptLatin && dominantCount >= minScriptChars &&
        float64(dominantCount) >= scriptDominance*float64(total) {
        if dominant == scriptDevanagari {
            return splitHindiMarathi(text)
        }
        return scriptLanguages[dominant]
    }

    return detectByKeywords(text, prior)
}

func priorOrEnglish(prior models.Language) models.Language {
    if prior.IsSupported() {
        return prior
    }
    return models.LangEnglish
}

func classifyRune(r rune) script {
    switch {
    case r >= 0x0900 && r <= 0x097F:
        return scriptDevanagari
    case r >= 0x0980 && r <= 0x09FF:
        return scriptBengali
    case r >= 0x0A00 && r <= 0x0A7F:
        return scriptGurmukhi
    case r >= 0x0A80 && r <= 0x0AFF:
        return scriptGujarati
    case r >= 0x0B80 && r <= 0x0BFF:
        return scriptTamil
    case r >= 0x0C00 && r <= 0x0C7F:
        return scriptTelugu
    case (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z'):
        return scriptLatin
    }
    return scriptNone
}

func splitHindiMarathi(text string) models.Language {
    lower := strings.ToLower(text)

    marathiCount := 0
    for _, marker := range marathiMarkers {
        if strings.Contains(lower, marker) {
            marathiCount++
        }
    }
    hindiCount := 0
    for _, marker := range hindiMarkers {
        if strings.Contains(lower, marker) {
            hindiCount++
        }
    }

    if marathiCount > hindiCount {
        return models.LangMarathi
    }
    return models.LangHindi
}

func detectByKeywords(text string, prior models.Language) models.Language {
    tokens := tokenize(text)

    best := models.LangEnglish
    bestScore := 0.0
    for _, lang := range models.SupportedLanguages {
        pattern, ok := keywordPatterns[lang]
        if !ok {
            continue
        }
        matched := 0
        for _, kw := range pattern.tokens {
            if _, ok := tokens[kw]; ok {
                matched++
            }
        }
        score := float64(matched) * pattern.weight
        // Ties resolve to English. Romanized Hindi often scores level
        // with English here; that ambiguity is documented and accepted
        // since the response content overlaps.
        if score > bestScore && lang != models.LangEnglish {
            best, bestScore = lang, score
        } else if score >= bestScore && lang == models.LangEnglish {
            best, bestScore = lang, score
        }
    }

    if bestScore == 0 {
        // no evidence either way, keep whatever the session already had
        return priorOrEnglish(prior)
    }
    return best
}

func tokenize(text string) map[string]struct{} {
    fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
        return !(r >= 'a' && r <= 'z') && !(r >= '0' && r <= '9')
    })
    tokens := make(map[string]struct{}, len(fields))
    for _, f := range fields {
        tokens[f] = struct{}{}
    }
    return tokens
}
