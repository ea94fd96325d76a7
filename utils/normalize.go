package utils

import (
    "strings"
    "unicode"

    "golang.org/x/text/runes"
    "golang.org/x/text/transform"
    "golang.org/x/text/unicode/norm"
)

// NormalizeText lowercases the input and strips combining diacritic
// marks so keyword matching tolerates accented or decomposed input.
// Indic scripts keep their vowel signs intact only in precomposed form;
// matching keyword tables are normalized the same way, so comparisons
// stay consistent.
//
// The transform chain is built per call: x/text Transformers carry
// internal buffers and must not be shared across goroutines.
func NormalizeText(s string) string {
    stripper := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
    lowered := strings.ToLower(s)
    stripped, _, err := transform.String(stripper, lowered)
    if err != nil {
        return lowered
    }
    return stripped
}
