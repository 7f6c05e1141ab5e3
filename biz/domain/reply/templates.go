package reply

import "github.com/xh-polaris/psych-honey/biz/domain/analysis"

// 各语言的兜底回复, 每类至少一条
type variants map[string][]string

var crisisReplies = variants{
	analysis.LangHindi: {
		"मैं समझ सकती हूं कि आप बहुत मुश्किल दौर से गुजर रहे हैं। आप अकेले नहीं हैं। कृपया अभी किसी professional से बात करें।",
		"आपकी जिंदगी बहुत कीमती है। यह दर्द temporary है। Please तुरंत किसी counselor या doctor से मिलें।",
	},
	analysis.LangHinglish: {
		"Yaar, main samajh sakti hun ki tum bahut tough phase se guzar rahe ho. Tum akele nahi ho. Please abhi kisi professional se baat karo.",
		"Tumhari life precious hai yaar. Yeh pain temporary hai. Please abhi ke abhi kisi counselor se contact karo.",
	},
	analysis.LangEnglish: {
		"I understand you're going through an extremely difficult time. You're not alone. Please reach out to a mental health professional right now.",
		"Your life is precious. This pain is temporary. Please contact a counselor or therapist right away.",
	},
}

var sensitiveReplies = variants{
	analysis.LangHindi: {
		"इस बारे में बात करना बहुत हिम्मत की बात है। आपकी बात यहां safe है और आपको judge नहीं किया जाएगा।",
		"मैं समझ सकती हूं कि यह आसान topic नहीं है। आप जो भी महसूस कर रहे हैं वो valid है।",
	},
	analysis.LangHinglish: {
		"Is baare mein baat karna bahut himmat ki baat hai yaar. Tumhari baat yahan safe hai, koi judge nahi karega.",
		"Main samajh sakti hun ki yeh easy topic nahi hai. Jo bhi tum feel kar rahe ho, woh valid hai.",
	},
	analysis.LangEnglish: {
		"Talking about this takes real courage. This is a safe space and nobody here will judge you.",
		"I understand this isn't an easy topic. Whatever you're feeling is valid.",
	},
}

var familyReplies = variants{
	analysis.LangHindi: {
		"परिवारिक दबाव से निपटना बहुत मुश्किल होता है। आपकी feelings valid हैं। क्या आप इस बारे में detail में बात करना चाहेंगे?",
		"मैं समझ सकती हूं कि घर वाले कभी-कभी समझ नहीं पाते। आप अपनी boundaries set कर सकते हैं।",
	},
	analysis.LangHinglish: {
		"Family pressure handle karna bahut tough hota hai yaar. Tumhari feelings bilkul valid hain.",
		"Main samajh sakti hun ki ghar wale kabhi kabhi samjhte nahi. Tum apni boundaries set kar sakte ho.",
	},
	analysis.LangEnglish: {
		"Dealing with family pressure can be incredibly challenging. Your feelings are completely valid.",
		"I understand that family members sometimes don't understand. You have the right to set healthy boundaries.",
	},
}

var careerReplies = variants{
	analysis.LangHindi: {
		"करियर की tension आजकल बहुत common है। Competition तो है, लेकिन आप अपनी pace में grow कर सकते हैं।",
		"Job market tough है, लेकिन आप हार मत मानिए। Skills develop करते रहिए और opportunities आएंगी।",
	},
	analysis.LangHinglish: {
		"Career ki tension toh aajkal sabko hoti hai yaar. Competition hai, but tum apne pace mein grow kar sakte ho.",
		"Job market tough hai, but himmat mat haaro. Skills develop karte raho, opportunities zaroor aayengi.",
	},
	analysis.LangEnglish: {
		"Career stress is very common these days. While competition exists, you can grow at your own pace.",
		"The job market is challenging, but keep going. Keep developing your skills and opportunities will come.",
	},
}

var relationshipReplies = variants{
	analysis.LangHindi: {
		"रिश्तों में problems होना normal है। Communication और understanding से बहुत कुछ solve हो सकता है।",
		"Breakup का दर्द बहुत होता है। Time लगेगा heal होने में, लेकिन आप strong हैं।",
	},
	analysis.LangHinglish: {
		"Relationships mein problems hona normal hai yaar. Communication aur understanding se bahut kuch solve ho sakta hai.",
		"Breakup ka pain bahut hota hai. Time lagega heal hone mein, but tum strong ho.",
	},
	analysis.LangEnglish: {
		"Problems in relationships are normal. Many things can be resolved through communication and understanding.",
		"Breakup pain is intense. It will take time to heal, but you are strong.",
	},
}

var socialReplies = variants{
	analysis.LangHindi: {
		"लोग क्या कहेंगे, यह सोच बहुत भारी लग सकती है। आपकी अपनी खुशी भी उतनी ही जरूरी है।",
	},
	analysis.LangHinglish: {
		"Log kya kahenge wala pressure bahut heavy lagta hai yaar. Tumhari apni khushi bhi utni hi important hai.",
	},
	analysis.LangEnglish: {
		"Worrying about what others will say can feel really heavy. Your own wellbeing matters just as much.",
	},
}

var defaultReplies = variants{
	analysis.LangHindi:    {"मैं यहां आपकी मदद के लिए हूं। आप जो भी feel कर रहे हैं, वो valid है।"},
	analysis.LangHinglish: {"Main yahan hun tumhari help ke liye. Jo bhi tum feel kar rahe ho, woh valid hai."},
	analysis.LangEnglish:  {"I'm here to help you. Whatever you're feeling is valid."},
}

// 应对建议
const (
	copingBreathing = "breathing"
	copingGrounding = "grounding"
	copingPhysical  = "physical"
)

var copingSuggestions = map[string]map[string]string{
	analysis.LangHindi: {
		copingBreathing: "गहरी सांस लेने की technique try करिए: 4 count में सांस लें, 4 count रोकें, 4 count में छोड़ें।",
		copingGrounding: "5-4-3-2-1 technique करिए: 5 चीजें देखिए, 4 सुनिए, 3 छूकर feel करिए, 2 smell करिए, 1 taste करिए।",
		copingPhysical:  "थोड़ी walk करिए या light exercise। Physical activity से mood better होता है।",
	},
	analysis.LangHinglish: {
		copingBreathing: "Deep breathing try karo: 4 count mein breathe in, 4 count hold, 4 count mein breathe out.",
		copingGrounding: "5-4-3-2-1 technique karo: 5 cheezein dekho, 4 suno, 3 touch karo, 2 smell karo, 1 taste karo.",
		copingPhysical:  "Thodi walk karo ya light exercise. Physical activity se mood better hota hai.",
	},
	analysis.LangEnglish: {
		copingBreathing: "Try deep breathing: breathe in for 4 counts, hold for 4, breathe out for 4.",
		copingGrounding: "Use the 5-4-3-2-1 technique: see 5 things, hear 4, touch 3, smell 2, taste 1.",
		copingPhysical:  "Take a short walk or do light exercise. Physical activity improves mood.",
	},
}

// 地区问候, 只覆盖部分地区
var regionalSupport = map[string]string{
	"punjabi":  "Yaar, tension na le. Sab theek ho jayega. Main hun na tere saath.",
	"gujarati": "Bhai, fikar na kar. Sab saras thase. Hu chu tara saath mein.",
	"marathi":  "Arre, tension gheun nako. Sarvakahi bara hoil. Mi aahe tujhya sobat.",
}

// 追问, 按情绪优先级排列
var followUpOrder = []string{"family_stress", "career_anxiety", "relationship_issues", "social_pressure"}

var followUps = map[string]map[string]string{
	analysis.LangHindi: {
		"family_stress":       "क्या आप बताना चाहेंगे कि परिवार की तरफ से कैसा pressure आ रहा है?",
		"career_anxiety":      "आपको career में सबसे ज्यादा कौन सी चीज worry कर रही है?",
		"relationship_issues": "क्या आप इस relationship issue के बारे में और बताना चाहेंगे?",
		"social_pressure":     "समाज का pressure आपको कैसे affect कर रहा है?",
	},
	analysis.LangHinglish: {
		"family_stress":       "Kya tum batana chahoge ki family ki taraf se kaisa pressure aa raha hai?",
		"career_anxiety":      "Career mein tumhe sabse zyada kya worry kar raha hai?",
		"relationship_issues": "Kya tum is relationship issue ke baare mein aur batana chahoge?",
		"social_pressure":     "Society ka pressure tumhe kaise affect kar raha hai?",
	},
	analysis.LangEnglish: {
		"family_stress":       "Would you like to share more about the family pressure you're experiencing?",
		"career_anxiety":      "What aspect of your career is worrying you the most?",
		"relationship_issues": "Would you like to talk more about this relationship issue?",
		"social_pressure":     "How is social pressure affecting you?",
	},
}

var greetings = map[string]string{
	analysis.LangHindi:    "नमस्ते! मैं Honey हूं। आज आप कैसा महसूस कर रहे हैं?",
	analysis.LangHinglish: "Hi! Main Honey hun. Aaj tum kaisa feel kar rahe ho?",
	analysis.LangEnglish:  "Hi! I'm Honey. How are you feeling today?",
}
