package analysis

import (
	"strings"
	"unicode"
)

// detectLanguage 判断回复语言
// 出现天城文即为印地语, 否则按整词统计Hinglish与英语标记, 英语更多时为英语, 其余默认Hinglish
func detectLanguage(t *Taxonomy, text string) string {
	for _, r := range text {
		if r >= '\u0900' && r <= '\u097f' {
			return LangHindi
		}
	}

	words := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && r != '\''
	})
	if len(words) == 0 {
		return LangHinglish
	}
	hinglish, english := 0, 0
	for _, w := range words {
		if contains(t.HinglishMarkers, w) {
			hinglish++
		}
		if contains(t.EnglishMarkers, w) {
			english++
		}
	}
	if english > hinglish {
		return LangEnglish
	}
	return LangHinglish
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
