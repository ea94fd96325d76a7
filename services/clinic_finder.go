package services

import (
    "strings"

    "swasthya-chatbot-backend/models"
    "swasthya-chatbot-backend/utils"
)

// clinic request triggers across languages, including Romanized forms
var clinicKeywords = []string{
    "clinic", "hospital", "doctor", "clinic chahiye", "doctor dikhaana",
    "najdeeki", "nearby", "paas mein", "clinic dhundo", "hospital kahan",
    "pharmacy", "medical", "chemist", "dispensary",
    "दवाखाना", "क्लिनिक", "डॉक्टर", "রুগ্ণালয়", "ডাক্তার", "மருத்துவர்",
    "డాక్టర్", "ਡਾਕਟਰ", "ડૉક્ટર",
}

// filler words dropped while extracting a location from free text
var locationSkipWords = map[string]struct{}{
    "mein": {}, "ka": {}, "ki": {}, "hai": {}, "hain": {}, "the": {},
    "in": {}, "at": {}, "me": {}, "please": {}, "kripya": {}, "se": {},
    "batayen": {}, "batao": {}, "bataye": {}, "tell": {}, "my": {},
    "is": {}, "area": {}, "location": {}, "jagah": {}, "city": {},
    "shahar": {}, "clinic": {}, "hospital": {}, "doctor": {}, "chahiye": {},
    "najdeeki": {}, "nearby": {}, "paas": {}, "dhundo": {}, "kahan": {},
    "pharmacy": {}, "medical": {}, "chemist": {}, "dispensary": {}, "need": {},
    "want": {}, "find": {}, "near": {}, "dikhaana": {}, "dikhana": {},
}

// match ranks, best first
const (
    rankArea = iota
    rankCity
    rankPincode
    rankNone
)

// ClinicFinder answers free-text location queries against the static
// clinic directory. The list is loaded once at startup and shared
// read-only across requests; matching is pure substring work, no fuzzy
// distance, so results are fully deterministic.
type ClinicFinder struct {
    clinics []models.ClinicRecord
}

func NewClinicFinder(clinics []models.ClinicRecord) *ClinicFinder {
    return &ClinicFinder{clinics: clinics}
}

// Count returns the number of indexed clinics.
func (cf *ClinicFinder) Count() int {
    return len(cf.clinics)
}

// IsClinicRequest reports whether the text asks for clinic information.
func (cf *ClinicFinder) IsClinicRequest(text string) bool {
    normalized := utils.NormalizeText(text)
    for _, kw := range clinicKeywords {
        if strings.Contains(normalized, utils.NormalizeText(kw)) {
            return true
        }
    }
    return false
}

// ExtractLocation pulls a probable location string out of free text.
// A bare 6-digit pincode passes through unchanged; otherwise filler
// words are dropped and up to three remaining words form the location.
// Returns "" when nothing usable is left.
func (cf *ClinicFinder) ExtractLocation(text string) string {
    trimmed := strings.TrimSpace(text)

    if len(trimmed) == 6 && isDigits(trimmed) {
        return trimmed
    }

    var words []string
    for _, word := range strings.Fields(trimmed) {
        cleaned := strings.Trim(word, ".,!?;:")
        if len([]rune(cleaned)) <= 2 {
            continue
        }
        if _, skip := locationSkipWords[strings.ToLower(cleaned)]; skip {
            continue
        }
        words = append(words, cleaned)
        if len(words) == 3 {
            break
        }
    }

    return strings.Join(words, " ")
}

// Find matches the location against area, city, and pincode of every
// clinic using substring containment in either direction, so partial
// names like "Andheri" match "Andheri West". Results are ranked area >
// city > pincode and keep the directory's original order within a rank.
// No match is an empty, non-error result.
func (cf *ClinicFinder) Find(location string, maxResults int) []models.ClinicRecord {
    query := normalizeLocation(location)
    if query == "" || maxResults <= 0 {
        return nil
    }

    buckets := [rankNone][]models.ClinicRecord{}
    for _, clinic := range cf.clinics {
        switch rankMatch(query, clinic) {
        case rankArea:
            buckets[rankArea] = append(buckets[rankArea], clinic)
        case rankCity:
            buckets[rankCity] = append(buckets[rankCity], clinic)
        case rankPincode:
            buckets[rankPincode] = append(buckets[rankPincode], clinic)
        }
    }

    results := make([]models.ClinicRecord, 0, maxResults)
    for _, bucket := range buckets {
        for _, clinic := range bucket {
            if len(results) == maxResults {
                return results
            }
            results = append(results, clinic)
        }
    }
    return results
}

func rankMatch(query string, clinic models.ClinicRecord) int {
    if fieldMatches(query, clinic.Area) {
        return rankArea
    }
    if fieldMatches(query, clinic.City) {
        return rankCity
    }
    if fieldMatches(query, clinic.Pincode) {
        return rankPincode
    }
    return rankNone
}

func fieldMatches(query, field string) bool {
    normalized := normalizeLocation(field)
    if normalized == "" {
        return false
    }
    return strings.Contains(normalized, query) || strings.Contains(query, normalized)
}

func normalizeLocation(s string) string {
    normalized := utils.NormalizeText(s)
    var b strings.Builder
    for _, r := range normalized {
        switch {
        case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == ' ':
            b.WriteRune(r)
        default:
            // punctuation and other scripts: treat as separators
            b.WriteRune(' ')
        }
    }
    return strings.Join(strings.Fields(b.String()), " ")
}

func isDigits(s string) bool {
    for _, r := range s {
        if r < '0' || r > '9' {
            return false
        }
    }
    return len(s) > 0
}
