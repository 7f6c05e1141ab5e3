package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectLanguage(t *testing.T) {
	tax := Default()
	tests := []struct {
		text string
		want string
	}{
		{"मैं ठीक हूं", LangHindi},
		{"yaar मुझे नींद नहीं आती", LangHindi},
		{"i am feeling overwhelmed today", LangEnglish},
		{"yaar kya karu, kuch samajh nahi aa raha", LangHinglish},
		{"ok", LangHinglish},
		{"", LangHinglish},
		// 整词匹配, "this" 不算作 "is"
		{"this", LangHinglish},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, detectLanguage(tax, tt.text), tt.text)
	}
}
