package models

// Language is a supported language code.
type Language string

const (
    LangHindi    Language = "hindi"
    LangEnglish  Language = "english"
    LangMarathi  Language = "marathi"
    LangBengali  Language = "bengali"
    LangTamil    Language = "tamil"
    LangTelugu   Language = "telugu"
    LangPunjabi  Language = "punjabi"
    LangGujarati Language = "gujarati"
)

// SupportedLanguages lists every language the triage engine understands,
// in a fixed order used for deterministic iteration.
var SupportedLanguages = []Language{
    LangHindi,
    LangEnglish,
    LangMarathi,
    LangBengali,
    LangTamil,
    LangTelugu,
    LangPunjabi,
    LangGujarati,
}

var languageNames = map[Language]string{
    LangHindi:    "Hindi (हिंदी)",
    LangEnglish:  "English",
    LangMarathi:  "Marathi (मराठी)",
    LangBengali:  "Bengali (বাংলা)",
    LangTamil:    "Tamil (தமிழ்)",
    LangTelugu:   "Telugu (తెలుగు)",
    LangPunjabi:  "Punjabi (ਪੰਜਾਬੀ)",
    LangGujarati: "Gujarati (ગુજરાતી)",
}

// DisplayName returns the human-readable name of the language.
func (l Language) DisplayName() string {
    if name, ok := languageNames[l]; ok {
        return name
    }
    return languageNames[LangHindi]
}

// IsSupported reports whether l is one of the supported language codes.
func (l Language) IsSupported() bool {
    _, ok := languageNames[l]
    return ok
}
