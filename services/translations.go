package services

import (
    "strings"

    "swasthya-chatbot-backend/models"
)

// Translator maps (language, template key) to a format string with named
// slots like {location}. The triage core never hardcodes user-facing
// text; it picks a key and fills slots. Lookup falls back to Hindi and
// then English when a language is missing a key, mirroring how the
// response content was originally authored.
type Translator struct {
    tables       map[models.Language]map[string]string
    symptomNames map[models.Language]map[models.SymptomID]string
}

// Render localizes a template key and substitutes the given slots.
func (t *Translator) Render(lang models.Language, key string, slots map[string]string) string {
    tmpl := t.lookup(lang, key)
    if tmpl == "" {
        return ""
    }
    if len(slots) == 0 {
        return tmpl
    }
    pairs := make([]string, 0, len(slots)*2)
    for name, value := range slots {
        pairs = append(pairs, "{"+name+"}", value)
    }
    return strings.NewReplacer(pairs...).Replace(tmpl)
}

func (t *Translator) lookup(lang models.Language, key string) string {
    if table, ok := t.tables[lang]; ok {
        if tmpl, ok := table[key]; ok {
            return tmpl
        }
    }
    if tmpl, ok := t.tables[models.LangHindi][key]; ok {
        return tmpl
    }
    return t.tables[models.LangEnglish][key]
}

// SymptomName returns the localized display name for a symptom id.
func (t *Translator) SymptomName(lang models.Language, id models.SymptomID) string {
    if names, ok := t.symptomNames[lang]; ok {
        if name, ok := names[id]; ok {
            return name
        }
    }
    if name, ok := t.symptomNames[models.LangEnglish][id]; ok {
        return name
    }
    return string(id)
}

func NewTranslator() *Translator {
    return &Translator{
        tables:       templateTables,
        symptomNames: symptomNameTables,
    }
}

var symptomNameTables = map[models.Language]map[models.SymptomID]string{
    models.LangEnglish: {
        models.SymptomHeadache:    "headache",
        models.SymptomFever:       "fever",
        models.SymptomCough:       "cough",
        models.SymptomCold:        "cold",
        models.SymptomStomachPain: "stomach pain",
        models.SymptomVomiting:    "vomiting",
        models.SymptomDiarrhea:    "loose motions",
        models.SymptomBodyPain:    "body pain",
        models.SymptomWeakness:    "weakness",
    },
    models.LangHindi: {
        models.SymptomHeadache:    "sir dard",
        models.SymptomFever:       "bukhar",
        models.SymptomCough:       "khansi",
        models.SymptomCold:        "sardi-zukam",
        models.SymptomStomachPain: "pet dard",
        models.SymptomVomiting:    "ulti",
        models.SymptomDiarrhea:    "dast",
        models.SymptomBodyPain:    "badan dard",
        models.SymptomWeakness:    "kamzori",
    },
}

var templateTables = map[models.Language]map[string]string{
    models.LangEnglish: {
        "emergency_response": `🚨 THIS SEEMS LIKE AN EMERGENCY!
Warning signs of: {category}

PLEASE IMMEDIATELY:
✅ Contact your nearest hospital or emergency service
✅ Call 108 (Ambulance)
✅ Have someone stay with you

If possible, go to the hospital right away. Don't delay!`,

        "emergency_category_cardiac_breathing": "chest pain / breathing trouble",
        "emergency_category_bleeding":          "heavy bleeding",
        "emergency_category_fainting":          "fainting / unconsciousness",
        "emergency_category_accident":          "serious accident",

        "ask_duration":   "I understand you have {symptom}. How long have you had this?",
        "ask_severity":   "How severe is the pain or discomfort? (mild / moderate / severe)",
        "ask_fever":      "Do you also have fever? (yes / no)",
        "ask_additional": "Any other symptoms you have noticed?",

        "symptom_guidance": `Here is a summary of what you told me about your {symptom}:

• Duration: {duration}
• Severity: {severity}
• Fever: {fever}
• Other symptoms: {additional}

{care}

**Disclaimer:** This is not a medical diagnosis. If the condition seems serious, please consult a doctor immediately.`,

        "red_flag": "\n⚠️ Based on your answers, please see a doctor soon. If you share your area, city, or pincode I can suggest nearby clinics.",

        "cancel_ack": "Okay, I have cancelled the current questions. You can tell me about a symptom anytime, or ask for nearby clinics.",

        "care_headache": `**Home care you can try:**
• Rest in a quiet, dark room
• Drink plenty of water (8-10 glasses daily)
• Apply a cool compress to your forehead
• Reduce screen time and get proper sleep (7-8 hours)`,

        "care_fever": `**Home care you can try:**
• Get plenty of rest
• Drink lots of fluids (water, juice, ORS, coconut water)
• Eat light, nutritious food (lentils, khichdi, soup)
• Apply a cool compress to the forehead`,

        "care_cough": `**Home care you can try:**
• Drink warm water, honey with ginger helps
• Gargle with warm salt water
• Avoid cold drinks and dusty places`,

        "care_cold": `**Home care you can try:**
• Take steam inhalation twice a day
• Drink warm fluids (soup, herbal tea)
• Rest well and keep yourself warm`,

        "care_stomach_pain": `**Home care you can try:**
• Eat light food (khichdi, curd rice, banana)
• Sip warm water through the day
• Avoid oily, spicy and outside food`,

        "care_vomiting": `**Home care you can try:**
• Take small sips of ORS or lemon water
• Avoid solid food for a few hours
• Rest and avoid strong smells`,

        "care_diarrhea": `**Home care you can try:**
• Drink ORS after every loose motion
• Eat banana, curd rice, khichdi
• Avoid milk, oily and spicy food`,

        "care_body_pain": `**Home care you can try:**
• Take rest and light stretching
• A warm bath can relax the muscles
• Drink enough water and sleep well`,

        "care_weakness": `**Home care you can try:**
• Eat regular, nutritious meals
• Drink plenty of fluids
• Sleep 7-8 hours and avoid overexertion`,

        "ask_location": "Please share your area, city, or pincode so I can suggest nearby clinics.",

        "clinic_results_header": "**Nearby clinics in {location}:**\n\n",
        "clinic_label_address":  "📍 Address",
        "clinic_label_timing":   "🕐 Timing",
        "clinic_label_phone":    "📞 Phone",
        "clinic_footer":         "**Remember:** Please call before visiting.",

        "clinic_none": `Sorry, I don't have clinic information for "{location}".

**You can try:**
• Search "clinic near me" on Google Maps
• Call local hospital helpline
• Try a different nearby area name

If urgent doctor visit needed:
• Visit nearest government hospital
• Dial 108 (Ambulance/Health helpline)

Would you like to try a different area?`,

        "greeting": `{greeting}! Welcome to SwasthyaGuide. I can help you with:

• 🩺 Symptom guidance (fever, headache, cough...)
• 🏥 Finding nearby clinics
• 📷 Skin photo assessment
• 🚨 Emergency guidance

How can I assist you today?`,

        "greeting_morning":   "Good morning",
        "greeting_afternoon": "Good afternoon",
        "greeting_evening":   "Good evening",

        "general_tips": `Here are some general health tips:

• Drink 8-10 glasses of water daily
• Sleep 7-8 hours every night
• Eat fresh fruits and vegetables
• Wash hands before eating

**You can ask me about:** fever, headache, cough, cold, stomach pain, or nearby clinics.`,

        "image_instructions": `📷 To assess a skin condition, send me a photo:

• Take the photo in good lighting
• Keep the affected area in focus
• Send images smaller than 10MB (JPG, PNG or WebP)

I will share general guidance — not a diagnosis.`,

        "skin_info": `Common skin conditions and simple care:

• **Rash/irritation** — keep the area clean and dry, avoid scratching
• **Fungal infection** — keep skin dry, change clothes daily
• **Allergy/hives** — avoid the trigger, use a cold compress

If it spreads, blisters, or lasts more than a few days, see a doctor. You can also send me a photo for assessment.`,

        "image_error_empty":      "❌ The image appears to be empty. Please send the photo again.",
        "image_error_too_large":  "❌ Image too large. Please send an image smaller than 10MB.",
        "image_error_too_small":  "❌ Image resolution too low. Please send a clearer photo (at least 100x100).",
        "image_error_bad_format": "❌ Unsupported image format. Please send a JPG, PNG or WebP photo.",

        "image_full_result": `✅ Image analysis complete!

**What I observed:**
{findings}

**Recommended next steps:**
{recommendations}

**Disclaimer:** This is a visual assessment only, not a medical diagnosis. Please consult a doctor for confirmation.`,

        "image_finding_redness_strong": "Strong redness across the area, which can indicate active irritation or inflammation",
        "image_reco_redness_strong":    "Apply a clean cold compress and avoid rubbing the area",
        "image_finding_redness_mild":   "Mild redness in parts of the area",
        "image_reco_redness_mild":      "Keep the area clean and observe for a day or two",
        "image_finding_inflamed":       "A large portion of the area (about {percent}%) looks inflamed",
        "image_reco_inflamed":          "If the redness spreads or feels warm, consult a doctor soon",
        "image_finding_texture":        "Uneven skin texture, possibly raised bumps, scaling or a rash pattern",
        "image_reco_texture":           "Avoid scratching and keep the area dry",
        "image_finding_none":           "No strong signs of redness or irregular texture in this photo",
        "image_reco_none":              "Continue basic skin care and watch for any changes",
        "image_reco_doctor":            "See a doctor if you notice pain, fever, blisters or rapid spreading",

        "image_simplified_result": `✅ I received your image, but could only do a basic check.

**General skin care guidance:**
• Keep the affected area clean and dry
• Avoid scratching or applying unverified creams
• Watch for spreading, pain, or fever

**Disclaimer:** This is not a medical diagnosis. If the condition worsens, please see a doctor.`,

        "terminal_error": "⚠️ Something went wrong while processing your message. Please try again in a moment.",
    },

    models.LangHindi: {
        "emergency_response": `🚨 YEH EMERGENCY JAISA LAG RAHA HAI!
Khatre ke lakshan: {category}

KRIPYA TURANT:
✅ Apne najdeeki hospital ya emergency service se sampark karein
✅ 108 (Ambulance) dial karein
✅ Kisi ko saath mein rakhein

Agar sambhav ho toh turant hospital jayein. Der na karein!`,

        "emergency_category_cardiac_breathing": "seene mein dard / saans ki takleef",
        "emergency_category_bleeding":          "bahut zyada bleeding",
        "emergency_category_fainting":          "behoshi",
        "emergency_category_accident":          "gambhir durghatna",

        "ask_duration":   "Samajh gaya, aapko {symptom} hai. Yeh kitne dino se hai?",
        "ask_severity":   "Dard ya takleef kitni zyada hai? (halki / medium / bahut zyada)",
        "ask_fever":      "Kya aapko bukhar bhi hai? (haan / nahi)",
        "ask_additional": "Koi aur lakshan jo aapne notice kiya ho?",

        "symptom_guidance": `Aapke {symptom} ke bare mein jo aapne bataya:

• Kitne din se: {duration}
• Kitna zyada: {severity}
• Bukhar: {fever}
• Aur lakshan: {additional}

{care}

**Disclaimer:** Yeh medical diagnosis nahi hai. Agar condition serious lage toh turant doctor ko dikhaaye.`,

        "red_flag": "\n⚠️ Aapke jawab dekh kar lagta hai ki doctor ko jaldi dikhana chahiye. Apna area, city, ya pincode bataayein toh main najdeeki clinic suggest kar sakta hoon.",

        "cancel_ack": "Theek hai, maine abhi ke sawal cancel kar diye hain. Aap kabhi bhi apne lakshan bata sakte hain, ya najdeeki clinic pooch sakte hain.",

        "care_headache": `**Ghar par aap ye try kar sakte hain:**
• Shaant aur andheri jagah mein aaram karein
• Pani zyada piyein (8-10 glass daily)
• Maatha par thanda pani ka patla kapda rakhein
• Screen time kam karein aur proper neend lein (7-8 ghante)`,

        "care_fever": `**Ghar par aap ye try kar sakte hain:**
• Zyada se zyada aaram karein
• Pani, juice, ORS, coconut water piyein
• Halka aur nutritious khana khayein (dal, khichdi, soup)
• Maatha par thanda pani ka kapda rakhein`,

        "care_cough": `**Ghar par aap ye try kar sakte hain:**
• Garam pani piyein, shahad-adrak faydemand hai
• Namak ke garam pani se garare karein
• Thandi cheezein aur dhool se bachein`,

        "care_cold": `**Ghar par aap ye try kar sakte hain:**
• Din mein do baar bhaap lein
• Garam cheezein piyein (soup, kadha)
• Aaram karein aur sharir ko garam rakhein`,

        "care_stomach_pain": `**Ghar par aap ye try kar sakte hain:**
• Halka khana khayein (khichdi, dahi-chawal, kela)
• Din bhar garam pani ke ghoont lein
• Tel-masale aur bahar ka khana na khayein`,

        "care_vomiting": `**Ghar par aap ye try kar sakte hain:**
• ORS ya nimbu pani ke chhote ghoont lein
• Kuch ghante solid khana na khayein
• Aaram karein aur tez gandh se door rahein`,

        "care_diarrhea": `**Ghar par aap ye try kar sakte hain:**
• Har dast ke baad ORS piyein
• Kela, dahi-chawal, khichdi khayein
• Doodh, tel aur masale se bachein`,

        "care_body_pain": `**Ghar par aap ye try kar sakte hain:**
• Aaram karein aur halki stretching karein
• Garam pani se nahana aaram deta hai
• Pani piyein aur achhi neend lein`,

        "care_weakness": `**Ghar par aap ye try kar sakte hain:**
• Samay par poshtik khana khayein
• Zyada pani aur tarual padarth piyein
• 7-8 ghante ki neend lein, zyada mehnat se bachein`,

        "ask_location": "Kripya apna area, city, ya pincode bataayein toh main aapko najdeeki clinic suggest kar sakta hoon.",

        "clinic_results_header": "**{location} ke najdeeki clinics:**\n\n",
        "clinic_label_address":  "📍 Address",
        "clinic_label_timing":   "🕐 Timing",
        "clinic_label_phone":    "📞 Phone",
        "clinic_footer":         "**Yaad rakhein:** Jaane se pehle ek baar phone kar lein.",

        "clinic_none": `Maaf kijiye, mere paas "{location}" ke liye clinic information nahi hai.

**Aap ye kar sakte hain:**
• Google Maps par "clinic near me" search karein
• Local hospital ka helpline number call karein
• Kisi aur najdeeki area ka naam try karein

Ya fir doctor ko urgent dekhna hai toh:
• Najdeeki government hospital jayein
• 108 (Ambulance/Health helpline) dial karein

Koi aur area ka naam bataana chahenge?`,

        "greeting": `{greeting}! SwasthyaGuide mein aapka swagat hai. Main madad kar sakta hoon:

• 🩺 Lakshan ki jaankari (bukhar, sir dard, khansi...)
• 🏥 Najdeeki clinic dhundhne mein
• 📷 Skin photo ki jaanch
• 🚨 Emergency guidance

Aaj main aapki kaise madad karoon?`,

        "greeting_morning":   "Suprabhat",
        "greeting_afternoon": "Namaste",
        "greeting_evening":   "Shubh sandhya",

        "general_tips": `Kuch general health tips:

• Roz 8-10 glass pani piyein
• Har raat 7-8 ghante ki neend lein
• Taaze phal aur sabziyan khayein
• Khane se pehle haath dhoyein

**Aap mujhse pooch sakte hain:** bukhar, sir dard, khansi, sardi, pet dard, ya najdeeki clinic.`,

        "image_instructions": `📷 Skin condition ki jaanch ke liye mujhe photo bhejein:

• Achhi roshni mein photo lein
• Prabhavit jagah clear dikhni chahiye
• 10MB se chhoti image bhejein (JPG, PNG ya WebP)

Main general guidance doonga — yeh diagnosis nahi hai.`,

        "skin_info": `Aam skin problems aur unki dekhbhal:

• **Rash/khujli** — jagah saaf aur sookhi rakhein, kharochein nahi
• **Fungal infection** — skin ko sookha rakhein, roz kapde badlein
• **Allergy** — jis cheez se hui hai usse bachein, thanda kapda rakhein

Agar badh rahi ho ya kuch dino mein theek na ho, doctor ko dikhayein. Aap mujhe photo bhi bhej sakte hain.`,

        "image_error_empty":      "❌ Image khaali lag rahi hai. Kripya photo dobara bhejein.",
        "image_error_too_large":  "❌ Image bahut badi hai. Kripya 10MB se chhoti image bhejein.",
        "image_error_too_small":  "❌ Image ki quality bahut kam hai. Kripya saaf photo bhejein (kam se kam 100x100).",
        "image_error_bad_format": "❌ Yeh image format support nahi hai. Kripya JPG, PNG ya WebP photo bhejein.",

        "image_full_result": `✅ Image analysis complete!

**Jo dikha:**
{findings}

**Aage kya karein:**
{recommendations}

**Disclaimer:** Yeh sirf visual jaanch hai, medical diagnosis nahi. Pushti ke liye doctor se milein.`,

        "image_finding_redness_strong": "Puri jagah par kaafi laali hai, jo irritation ya sujan ka sanket ho sakta hai",
        "image_reco_redness_strong":    "Saaf thanda kapda rakhein aur jagah ko ragadne se bachein",
        "image_finding_redness_mild":   "Kuch hisson mein halki laali hai",
        "image_reco_redness_mild":      "Jagah saaf rakhein aur ek-do din dhyaan rakhein",
        "image_finding_inflamed":       "Jagah ka bada hissa (lagbhag {percent}%) sujan jaisa dikh raha hai",
        "image_reco_inflamed":          "Agar laali badhe ya garam lage toh jaldi doctor se milein",
        "image_finding_texture":        "Skin ki satah asamaan hai, ubhre daane, papdi ya rash jaisa pattern ho sakta hai",
        "image_reco_texture":           "Kharochein nahi aur jagah sookhi rakhein",
        "image_finding_none":           "Is photo mein laali ya asamaan texture ke koi khaas sanket nahi dikhe",
        "image_reco_none":              "Basic skin care jaari rakhein aur kisi bhi badlav par dhyaan dein",
        "image_reco_doctor":            "Dard, bukhar, chhale ya tezi se failne par doctor ko dikhayein",

        "image_simplified_result": `✅ Aapki image mil gayi, lekin sirf basic jaanch ho payi.

**General skin care:**
• Prabhavit jagah saaf aur sookhi rakhein
• Kharochein nahi, bina salaah ke cream na lagayein
• Failne, dard ya bukhar par dhyaan rakhein

**Disclaimer:** Yeh medical diagnosis nahi hai. Condition bigde toh doctor ko dikhayein.`,

        "terminal_error": "⚠️ Aapka message process karte samay kuch gadbad ho gayi. Kripya thodi der mein dobara try karein.",
    },

    // The remaining languages carry the clinic lookup set, which the
    // source content covered in all eight languages. Other keys fall
    // back to Hindi and then English.
    models.LangMarathi: {
        "clinic_results_header": "**{location} मधील जवळपासचे क्लिनिक:**\n\n",
        "clinic_label_address":  "📍 पत्ता",
        "clinic_label_timing":   "🕐 वेळ",
        "clinic_label_phone":    "📞 फोन",
        "clinic_footer":         "**लक्षात ठेवा:** जाण्यापूर्वी फोन करा.",
        "clinic_none":           "माफ करा, माझ्याकडे \"{location}\" साठी क्लिनिक माहिती नाही.\n\n**तुम्ही हे करू शकता:**\n• Google Maps वर \"clinic near me\" शोधा\n• स्थानिक रुग्णालयाच्या हेल्पलाइनवर कॉल करा\n• दुसऱ्या जवळच्या क्षेत्राचे नाव वापरून पहा\n\nजर तातडीने डॉक्टरांना भेटणे आवश्यक असल्यास:\n• जवळच्या सरकारी रुग्णालयात जा\n• 108 (रुग्णवाहिका/आरोग्य हेल्पलाइन) डायल करा\n\nदुसरे क्षेत्र सांगू इच्छिता का?",
        "ask_location":          "कृपया तुमचे क्षेत्र, शहर किंवा पिनकोड सांगा म्हणजे मी जवळचे क्लिनिक सुचवू शकेन.",
    },
    models.LangBengali: {
        "clinic_results_header": "**{location} এর কাছাকাছি ক্লিনিক:**\n\n",
        "clinic_label_address":  "📍 ঠিকানা",
        "clinic_label_timing":   "🕐 সময়",
        "clinic_label_phone":    "📞 ফোন",
        "clinic_footer":         "**মনে রাখবেন:** যাওয়ার আগে ফোন করুন।",
        "clinic_none":           "দুঃখিত, আমার কাছে \"{location}\" এর জন্য ক্লিনিক তথ্য নেই।\n\n**আপনি চেষ্টা করতে পারেন:**\n• Google Maps-এ \"clinic near me\" অনুসন্ধান করুন\n• স্থানীয় হাসপাতালের হেল্পলাইনে কল করুন\n• অন্য কাছাকাছি এলাকার নাম চেষ্টা করুন\n\nজরুরি ডাক্তারের দর্শন প্রয়োজন হলে:\n• নিকটতম সরকারি হাসপাতালে যান\n• 108 (অ্যাম্বুলেন্স/স্বাস্থ্য হেল্পলাইন) ডায়াল করুন\n\nঅন্য এলাকার নাম বলতে চান?",
        "ask_location":          "অনুগ্রহ করে আপনার এলাকা, শহর বা পিনকোড জানান, আমি কাছের ক্লিনিক সাজেস্ট করব।",
    },
    models.LangTamil: {
        "clinic_results_header": "**{location} அருகிலுள்ள கிளினிக்குகள்:**\n\n",
        "clinic_label_address":  "📍 முகவரி",
        "clinic_label_timing":   "🕐 நேரம்",
        "clinic_label_phone":    "📞 தொலைபேசி",
        "clinic_footer":         "**நினைவில் கொள்ளுங்கள்:** செல்வதற்கு முன் அழைக்கவும்.",
        "clinic_none":           "மன்னிக்கவும், \"{location}\" க்கான கிளினிக் தகவல் என்னிடம் இல்லை.\n\n**நீங்கள் முயற்சி செய்யலாம்:**\n• Google Maps இல் \"clinic near me\" தேடுங்கள்\n• உள்ளூர் மருத்துவமனை ஹெல்ப்லைனை அழைக்கவும்\n• வேறு அருகிலுள்ள பகுதி பெயரை முயற்சிக்கவும்\n\nஅவசர மருத்துவர் பார்வை தேவைப்பட்டால்:\n• அருகிலுள்ள அரசு மருத்துவமனைக்கு செல்லுங்கள்\n• 108 (ஆம்புலன்ஸ்/உடல்நலம் ஹெல்ப்லைன்) டயல் செய்யுங்கள்\n\nவேறு பகுதி பெயரை சொல்ல விரும்புகிறீர்களா?",
        "ask_location":          "உங்கள் பகுதி, நகரம் அல்லது பின்கோடை பகிருங்கள், அருகிலுள்ள கிளினிக்குகளை பரிந்துரைக்கிறேன்.",
    },
    models.LangTelugu: {
        "clinic_results_header": "**{location} సమీప క్లినిక్‌లు:**\n\n",
        "clinic_label_address":  "📍 చిరునామా",
        "clinic_label_timing":   "🕐 సమయం",
        "clinic_label_phone":    "📞 ఫోన్",
        "clinic_footer":         "**గుర్తుంచుకోండి:** వెళ్లే ముందు ఫోన్ చేయండి.",
        "clinic_none":           "క్షమించండి, నా వద్ద \"{location}\" కోసం క్లినిక్ సమాచారం లేదు.\n\n**మీరు ప్రయత్నించవచ్చు:**\n• Google Maps లో \"clinic near me\" వెతకండి\n• స్థానిక హాస్పిటల్ హెల్ప్‌లైన్‌కు కాల్ చేయండి\n• వేరొక సమీప ప్రాంతం పేరును ప్రయత్నించండి\n\nఅత్యవసర వైద్యుడు అవసరమైతే:\n• సమీప ప్రభుత్వ ఆసుపత్రికి వెళ్లండి\n• 108 (అంబులెన్స్/ఆరోగ్య హెల్ప్‌లైన్) డయల్ చేయండి\n\nవేరే ప్రాంతం పేరు చెప్పాలనుకుంటున్నారా?",
        "ask_location":          "దయచేసి మీ ప్రాంతం, నగరం లేదా పిన్‌కోడ్ చెప్పండి, సమీప క్లినిక్‌లను సూచిస్తాను.",
    },
    models.LangPunjabi: {
        "clinic_results_header": "**{location} ਦੇ ਨੇੜਲੇ ਕਲੀਨਿਕ:**\n\n",
        "clinic_label_address":  "📍 ਪਤਾ",
        "clinic_label_timing":   "🕐 ਸਮਾਂ",
        "clinic_label_phone":    "📞 ਫ਼ੋਨ",
        "clinic_footer":         "**ਯਾਦ ਰੱਖੋ:** ਜਾਣ ਤੋਂ ਪਹਿਲਾਂ ਫ਼ੋਨ ਕਰੋ।",
        "clinic_none":           "ਮਾਫ਼ ਕਰਨਾ, ਮੇਰੇ ਕੋਲ \"{location}\" ਲਈ ਕਲੀਨਿਕ ਜਾਣਕਾਰੀ ਨਹੀਂ ਹੈ।\n\n**ਤੁਸੀਂ ਕੋਸ਼ਿਸ਼ ਕਰ ਸਕਦੇ ਹੋ:**\n• Google Maps ਤੇ \"clinic near me\" ਖੋਜੋ\n• ਸਥਾਨਕ ਹਸਪਤਾਲ ਦੀ ਹੈਲਪਲਾਈਨ ਤੇ ਕਾਲ ਕਰੋ\n• ਕਿਸੇ ਹੋਰ ਨੇੜਲੇ ਖੇਤਰ ਦਾ ਨਾਮ ਵਰਤ ਕੇ ਦੇਖੋ\n\nਜੇ ਤੁਰੰਤ ਡਾਕਟਰ ਨੂੰ ਮਿਲਣ ਦੀ ਲੋੜ ਹੋਵੇ:\n• ਨੇੜਲੇ ਸਰਕਾਰੀ ਹਸਪਤਾਲ ਜਾਓ\n• 108 (ਐਂਬੂਲੈਂਸ/ਸਿਹਤ ਹੈਲਪਲਾਈਨ) ਡਾਇਲ ਕਰੋ\n\nਹੋਰ ਖੇਤਰ ਦਾ ਨਾਮ ਦੱਸਣਾ ਚਾਹੁੰਦੇ ਹੋ?",
        "ask_location":          "ਕਿਰਪਾ ਕਰਕੇ ਆਪਣਾ ਖੇਤਰ, ਸ਼ਹਿਰ ਜਾਂ ਪਿਨਕੋਡ ਦੱਸੋ, ਮੈਂ ਨੇੜਲੇ ਕਲੀਨਿਕ ਸੁਝਾਵਾਂਗਾ।",
    },
    models.LangGujarati: {
        "clinic_results_header": "**{location} નજીકની ક્લિનિક:**\n\n",
        "clinic_label_address":  "📍 સરનામું",
        "clinic_label_timing":   "🕐 સમય",
        "clinic_label_phone":    "📞 ફોન",
        "clinic_footer":         "**યાદ રાખો:** જતા પહેલા ફોન કરો.",
        "clinic_none":           "માફ કરશો, મારી પાસે \"{location}\" માટે ક્લિનિક માહિતી નથી.\n\n**તમે પ્રયાસ કરી શકો છો:**\n• Google Maps પર \"clinic near me\" શોધો\n• સ્થાનિક હોસ્પિટલની હેલ્પલાઇનને કૉલ કરો\n• બીજા નજીકના વિસ્તારનું નામ અજમાવો\n\nજો તાત્કાલિક ડૉક્ટરની મુલાકાત જરૂરી હોય:\n• નજીકની સરકારી હોસ્પિટલમાં જાઓ\n• 108 (એમ્બ્યુલન્સ/આરોગ્ય હેલ્પલાઇન) ડાયલ કરો\n\nબીજા વિસ્તારનું નામ કહેવા માંગો છો?",
        "ask_location":          "કૃપા કરીને તમારો વિસ્તાર, શહેર કે પિનકોડ જણાવો, હું નજીકની ક્લિનિક સૂચવીશ.",
    },
}
