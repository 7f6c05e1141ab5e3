package analysis

// Default 返回内置词表的新副本
// 每次调用都重新构造, Store.Replace 会就地小写化, 不能共享底层切片
func Default() *Taxonomy {
	return &Taxonomy{
		TieredEmotions: []TieredEntry{
			{
				Emotion: "happy",
				Low:     []string{"okay", "fine", "theek", "ठीक", "accha", "अच्छा"},
				Medium:  []string{"good", "happy", "khush", "खुश", "better", "nice"},
				High:    []string{"amazing", "awesome", "fantastic", "bahut khush", "बहुत खुश", "great"},
			},
			{
				Emotion: "sad",
				Low:     []string{"little sad", "thoda udaas", "थोड़ा उदास", "not good"},
				Medium:  []string{"sad", "udaas", "उदास", "dukhi", "दुखी", "down"},
				High:    []string{"very sad", "bahut udaas", "बहुत उदास", "depressed", "hopeless"},
			},
			{
				Emotion: "anxious",
				Low:     []string{"little worried", "thoda tension", "थोड़ी टेंशन"},
				Medium:  []string{"worried", "tension", "टेंशन", "anxiety", "nervous"},
				High:    []string{"panic", "bahut tension", "बहुत टेंशन", "very anxious", "scared"},
			},
			{
				Emotion: "angry",
				Low:     []string{"annoyed", "irritated", "thoda gussa", "थोड़ा गुस्सा"},
				Medium:  []string{"angry", "gussa", "गुस्सा", "frustrated", "mad"},
				High:    []string{"furious", "bahut gussa", "बहुत गुस्सा", "rage", "very angry"},
			},
			{
				Emotion: "stressed",
				Low:     []string{"busy", "thoda stress", "थोड़ा स्ट्रेस"},
				Medium:  []string{"stress", "स्ट्रेस", "pressure", "प्रेशर", "overwhelmed"},
				High:    []string{"burnout", "bahut stress", "बहुत स्ट्रेस", "breaking down"},
			},
			{
				Emotion: "lonely",
				Low:     []string{"alone", "akela", "अकेला"},
				Medium:  []string{"lonely", "isolated", "koi nahi", "कोई नहीं"},
				High:    []string{"very lonely", "bahut akela", "बहुत अकेला", "abandoned"},
			},
		},
		ContextualEmotions: []Entry{
			{Category: "family_stress", Patterns: []string{
				"ghar wale", "gharwale", "घर वाले",
				"ghar wale samjhte nahi", "family pressure", "parents force kar rahe",
				"shaadi ka pressure", "relatives taunt karte", "gharwale pareshan karte",
				"मां-बाप समझते नहीं", "परिवार का दबाव", "रिश्तेदार ताना मारते",
			}},
			{Category: "career_anxiety", Patterns: []string{
				"job nahi mil rahi", "placement tension", "career mein confusion",
				"competition bahut hai", "salary kam hai", "boss toxic hai",
				"नौकरी नहीं मिल रही", "करियर में कन्फ्यूजन", "कंपटीशन बहुत है",
			}},
			{Category: "social_pressure", Patterns: []string{
				"log kya kahenge", "society judge karti", "reputation kharab",
				"izzat ka sawal", "social media pressure", "comparison ho rahi",
				"लोग क्या कहेंगे", "समाज जजमेंट करता", "इज्जत का सवाल",
			}},
			{Category: "relationship_issues", Patterns: []string{
				"breakup hua hai", "love life mein problem", "partner samjhta nahi",
				"arranged marriage pressure", "commitment issues", "trust issues",
				"ब्रेकअप हुआ है", "लव लाइफ में प्रॉब्लम", "पार्टनर समझता नहीं",
			}},
			{Category: "financial_stress", Patterns: []string{
				"paisa nahi hai", "financial problem", "loan repay karna hai",
				"ghar chalana mushkil", "emi bharni hai", "budget tight hai",
				"पैसा नहीं है", "फाइनेंशियल प्रॉब्लम", "घर चलाना मुश्किल",
			}},
		},
		IntensityMarkers: []Entry{
			{Category: string(IntensityExtreme), Patterns: []string{
				"bahut zyada", "बहुत ज्यादा", "extremely", "unbearable", "can't take it",
				"breaking point", "limit cross ho gayi", "हद पार हो गई",
			}},
			{Category: string(IntensityHigh), Patterns: []string{
				"bahut", "बहुत", "very", "really", "too much", "zyada", "ज्यादा", "kaafi", "काफी",
			}},
			{Category: string(IntensityMedium), Patterns: []string{
				"thoda zyada", "थोड़ा ज्यादा", "somewhat", "kinda", "little bit more",
			}},
			{Category: string(IntensityLow), Patterns: []string{
				"thoda", "थोड़ा", "little", "slightly", "kam", "कम",
			}},
		},

		SensitiveGroups: []Group{
			{Name: "sexual_health", Entries: []Entry{
				{Category: "performance_anxiety", Patterns: []string{
					"performance anxiety", "bed mein problem", "intimate problem",
					"sexual performance", "premature ejaculation", "erectile dysfunction",
					"sex mein problem", "bedroom issues", "intimacy issues",
					"पर्फॉर्मेंस एंग्जायटी", "यौन समस्या", "बिस्तर में समस्या",
				}},
				{Category: "sexual_education", Patterns: []string{
					"sex education", "sexual health", "contraception", "safe sex",
					"sexual wellness", "reproductive health", "birth control",
					"यौन शिक्षा", "यौन स्वास्थ्य", "गर्भनिरोधक",
				}},
				{Category: "relationship_intimacy", Patterns: []string{
					"intimacy problems", "sexual compatibility", "relationship intimacy",
					"physical intimacy", "emotional intimacy", "couple problems",
					"रिश्ते में अंतरंगता", "शारीरिक निकटता", "भावनात्मक निकटता",
				}},
				{Category: "sexual_identity", Patterns: []string{
					"sexual orientation", "gender identity", "lgbtq", "coming out",
					"sexual identity crisis", "homosexuality", "bisexuality",
					"यौन पहचान", "लैंगिक पहचान",
				}},
				{Category: "sexual_trauma", Patterns: []string{
					"sexual abuse", "sexual assault", "trauma", "harassment",
					"unwanted advances", "sexual violence", "molestation",
					"यौन शोषण", "यौन हिंसा", "छेड़छाड़",
				}},
			}},
			{Name: "depression", Entries: []Entry{
				{Category: "clinical_depression", Patterns: []string{
					"clinical depression", "major depression", "severe depression",
					"chronic depression", "bipolar disorder", "manic depression",
					"क्लिनिकल डिप्रेशन", "गंभीर अवसाद", "द्विध्रुवी विकार",
				}},
				{Category: "suicidal_thoughts", Patterns: []string{
					"suicide", "kill myself", "end my life", "no point living",
					"want to die", "suicidal thoughts", "self harm", "cutting",
					"आत्महत्या", "मरना चाहता हूं", "जीने का मन नहीं",
				}},
				{Category: "self_harm", Patterns: []string{
					"self harm", "cutting", "hurting myself", "self injury",
					"self mutilation", "scratching", "burning myself",
					"खुद को नुकसान", "अपने आप को काटना",
				}},
				{Category: "eating_disorders", Patterns: []string{
					"eating disorder", "anorexia", "bulimia", "binge eating",
					"food issues", "body dysmorphia", "weight obsession",
					"खाने का विकार", "भोजन संबंधी समस्या",
				}},
				{Category: "anxiety_depression", Patterns: []string{
					"anxiety depression", "panic attacks", "social anxiety",
					"generalized anxiety", "phobia", "ocd", "ptsd",
					"चिंता अवसाद", "पैनिक अटैक", "सामाजिक चिंता",
				}},
			}},
			{Name: "addiction", Entries: []Entry{
				{Category: "substance_abuse", Patterns: []string{
					"drug addiction", "alcohol addiction", "substance abuse",
					"drinking problem", "drug problem", "addiction recovery",
					"नशे की लत", "शराब की लत", "ड्रग्स की समस्या",
				}},
				{Category: "behavioral_addiction", Patterns: []string{
					"porn addiction", "sex addiction", "gambling addiction",
					"internet addiction", "gaming addiction", "social media addiction",
					"पोर्न की लत", "जुआ की लत", "इंटरनेट की लत",
				}},
			}},
			{Name: "relationship", Entries: []Entry{
				{Category: "domestic_violence", Patterns: []string{
					"domestic violence", "abusive relationship", "physical abuse",
					"emotional abuse", "toxic relationship", "violent partner",
					"घरेलू हिंसा", "अपमानजनक रिश्ता", "हिंसक साथी",
				}},
				{Category: "marital_problems", Patterns: []string{
					"marital problems", "marriage issues", "divorce thoughts",
					"unhappy marriage", "loveless marriage", "cheating spouse",
					"वैवाहिक समस्याएं", "शादी में समस्या", "तलाक के विचार",
				}},
			}},
		},
		SeverityIndicators: []Entry{
			{Category: string(LevelCrisis), Patterns: []string{
				"emergency", "urgent", "immediate help", "crisis", "right now",
				"can't take it", "breaking point", "desperate", "hopeless",
			}},
			{Category: string(LevelHigh), Patterns: []string{
				"severe", "extreme", "unbearable", "overwhelming", "intense",
				"very bad", "terrible", "awful", "worst",
			}},
			{Category: string(LevelMedium), Patterns: []string{
				"moderate", "concerning", "troubling", "difficult", "hard",
				"challenging", "problematic",
			}},
		},
		CrisisPhrases: []string{
			"suicide", "kill myself", "end it all", "no point living",
			"give up", "can't go on", "hopeless", "worthless",
		},

		CulturalFlags: []Entry{
			{Category: "family_dynamics", Patterns: []string{"family", "ghar", "parents", "mummy", "papa", "relatives", "घर", "परिवार"}},
			{Category: "social_expectations", Patterns: []string{"society", "log", "reputation", "izzat", "judge", "समाज", "लोग"}},
			{Category: "career_pressure", Patterns: []string{"job", "career", "office", "work", "salary", "boss", "नौकरी"}},
			{Category: "financial_concerns", Patterns: []string{"money", "paisa", "पैसा", "financial", "loan", "debt", "emi"}},
			{Category: "relationship_status", Patterns: []string{"girlfriend", "boyfriend", "partner", "breakup", "relationship", "shaadi", "marriage", "शादी"}},
		},
		TraditionalMarkers: []string{"family values", "arranged marriage", "traditional", "conservative"},
		ModernMarkers:      []string{"modern", "independent", "dating", "career", "western"},
		FamilyIndicators:   []string{"family", "parents", "relatives", "joint family", "ghar wale"},
		PressureIndicators: []string{"society", "log kya kahenge", "reputation", "judgment", "pressure"},
		CulturalContexts: []Entry{
			{Category: "traditional_values", Patterns: []string{
				"family values", "traditional marriage", "arranged marriage", "joint family",
				"cultural restrictions", "religious beliefs", "conservative family",
				"पारंपरिक मूल्य", "पारिवारिक मर्यादा", "धार्मिक मान्यता",
			}},
			{Category: "modern_indian_values", Patterns: []string{
				"modern relationship", "dating culture", "live-in relationship", "career first",
				"independent choice", "western influence", "urban lifestyle",
				"आधुनिक रिश्ते", "स्वतंत्र विकल्प", "शहरी जीवनशैली",
			}},
			{Category: "social_taboos", Patterns: []string{
				"society judgment", "log kya kahenge", "reputation concern", "family honor",
				"social stigma", "community pressure", "gossip fear",
				"समाज का डर", "लोग क्या कहेंगे", "इज्जत का सवाल",
			}},
			{Category: "generational_conflicts", Patterns: []string{
				"generation gap", "parents don't understand", "old vs new thinking",
				"traditional vs modern", "family expectations", "cultural clash",
				"पीढ़ियों का अंतर", "पुराने और नए विचार", "पारिवारिक अपेक्षाएं",
			}},
			{Category: "gender_specific_issues", Patterns: []string{
				"women empowerment", "male dominance", "gender roles", "patriarchal society",
				"women safety", "sexual autonomy", "consent culture",
				"महिला सशक्तिकरण", "लैंगिक भूमिकाएं", "पितृसत्तात्मक समाज",
			}},
			{Category: "regional_differences", Patterns: []string{
				"north indian culture", "south indian values", "metro vs rural",
				"urban vs village", "state specific customs", "regional traditions",
				"उत्तर भारतीय संस्कृति", "दक्षिण भारतीय मूल्य", "शहरी बनाम ग्रामीण",
			}},
		},
		CulturalChallenges: []Entry{
			{Category: "communication_barriers", Patterns: []string{
				"can't talk to parents", "family won't understand", "shame discussing sex",
				"cultural silence", "taboo topics", "conservative upbringing",
				"माता-पिता से बात नहीं कर सकते", "शर्म की बात", "वर्जित विषय",
			}},
			{Category: "marriage_pressure", Patterns: []string{
				"marriage pressure", "biological clock", "family expectations",
				"suitable boy", "suitable girl", "caste considerations", "dowry issues",
				"शादी का दबाव", "जाति की समस्या", "दहेज की समस्या",
			}},
			{Category: "sexual_education_gaps", Patterns: []string{
				"no sex education", "lack of awareness", "myths and misconceptions",
				"religious restrictions", "cultural ignorance", "taboo subjects",
				"यौन शिक्षा की कमी", "भ्रांतियां", "धार्मिक पाबंदियां",
			}},
		},

		CopingIndicators: []Entry{
			{Category: "healthy", Patterns: []string{
				"exercise kar raha", "meditation karta", "friends se baat karta",
				"music sunta", "books padhta", "walk pe jata",
			}},
			{Category: "unhealthy", Patterns: []string{
				"smoking kar raha", "drinking kar raha", "junk food khata",
				"social media scroll karta", "overthinking karta",
			}},
			{Category: "seeking_help", Patterns: []string{
				"kisi se baat karna chahta", "help chahiye", "guidance chahiye",
				"counseling lena chahiye", "therapy karna chahiye",
			}},
		},
		TemporalIndicators: []Entry{
			{Category: "immediate", Patterns: []string{"right now", "abhi", "अभी", "urgent", "emergency"}},
			{Category: "recent", Patterns: []string{"today", "aaj", "आज", "yesterday", "kal", "कल"}},
			{Category: "ongoing", Patterns: []string{"always", "hamesha", "हमेशा", "daily", "roz", "रोज"}},
			{Category: "past", Patterns: []string{"used to", "pehle", "पहले", "before", "earlier"}},
		},
		RegionalMarkers: []Entry{
			{Category: "punjabi", Patterns: []string{"yaar", "bhai", "paaji", "veer", "chak de"}},
			{Category: "gujarati", Patterns: []string{"bhai", "ben", "su che", "kem cho"}},
			{Category: "marathi", Patterns: []string{"arre", "kay re", "bhau", "tai"}},
			{Category: "bengali", Patterns: []string{"dada", "didi", "ki korbo", "bhalo nei"}},
			{Category: "tamil", Patterns: []string{"anna", "akka", "enna da", "seri"}},
			{Category: "telugu", Patterns: []string{"anna", "akka", "enti ra", "bagundi"}},
		},

		HinglishMarkers: []string{
			"yaar", "bhai", "kya", "hai", "hun", "hoon", "kar", "karo", "main", "mein", "tum", "tumhe",
			"achha", "accha", "theek", "thik", "sahi", "galat", "bahut", "bohot", "kuch", "koi",
			"batao", "samajh", "dekho", "suno", "arre", "matlab", "bilkul", "ekdum", "jyda", "zyada",
			"likhte", "kyu", "kyun", "itna", "msg", "baat", "nahi", "rahe", "raha", "hain",
		},
		EnglishMarkers: []string{
			"there", "nice", "meet", "doing", "today", "anything", "would", "like", "talk", "about",
			"here", "listen", "without", "judgment", "offer", "support", "understand", "feeling",
			"overwhelmed", "amount", "messaging", "sounds", "prefer", "shorter", "concise", "responses",
			"i", "i'm", "my", "me", "want", "feel", "the", "is", "am", "and", "to", "you", "what", "how",
		},
	}
}
