package reply

import (
	"fmt"
	"strings"

	"github.com/xh-polaris/psych-honey/biz/domain/analysis"
)

type Helpline struct {
	Name      string `json:"name"`
	Number    string `json:"number"`
	Available string `json:"available"`
}

// Directory 专业求助资源
type Directory struct {
	Helplines         []Helpline `json:"helplines"`
	ProfessionalTypes []string   `json:"professional_types"`
	Websites          []string   `json:"websites"`
}

// Empty 是否没有任何资源
func (d *Directory) Empty() bool {
	return len(d.Helplines) == 0 && len(d.ProfessionalTypes) == 0 && len(d.Websites) == 0
}

var (
	suicideHelpline    = Helpline{Name: "National Suicide Prevention Helpline", Number: "9152987821", Available: "24/7"}
	vandrevalaHelpline = Helpline{Name: "Vandrevala Foundation", Number: "9999666555", Available: "24/7"}
	nimhansHelpline    = Helpline{Name: "NIMHANS Helpline", Number: "080-46110007", Available: "Mon-Sat 9AM-5PM"}
)

// Resources 按敏感话题分类给出求助资源
func Resources(topics []string) Directory {
	d := Directory{
		Helplines:         make([]Helpline, 0),
		ProfessionalTypes: make([]string, 0),
		Websites:          make([]string, 0),
	}
	if anyTopic(topics, "suicidal", "self_harm") {
		d.Helplines = append(d.Helplines, suicideHelpline, vandrevalaHelpline)
	}
	if anyTopic(topics, "sexual_health") {
		d.ProfessionalTypes = append(d.ProfessionalTypes, "Sexologist", "Gynecologist", "Urologist", "Sex Therapist")
		d.Websites = append(d.Websites, "https://www.who.int/health-topics/sexual-health", "https://www.plannedparenthood.org")
	}
	if anyTopic(topics, "depression", "anxiety") {
		d.ProfessionalTypes = append(d.ProfessionalTypes, "Psychiatrist", "Clinical Psychologist", "Counselor", "Therapist")
		d.Helplines = append(d.Helplines, nimhansHelpline)
	}
	if anyTopic(topics, "addiction") {
		d.ProfessionalTypes = append(d.ProfessionalTypes, "Addiction Counselor", "Rehabilitation Specialist", "Support Groups")
	}
	if anyTopic(topics, "domestic_violence") {
		d.ProfessionalTypes = append(d.ProfessionalTypes, "Counselor", "Legal Aid")
	}
	return d
}

// CrisisResources 危机时总是包含自杀干预热线, 即使只命中了危机短语
func CrisisResources(topics []string) Directory {
	d := Resources(topics)
	if !containsHelpline(d.Helplines, suicideHelpline) {
		d.Helplines = append([]Helpline{suicideHelpline, vandrevalaHelpline}, d.Helplines...)
	}
	return d
}

func anyTopic(topics []string, keys ...string) bool {
	for _, t := range topics {
		for _, k := range keys {
			if strings.Contains(t, k) {
				return true
			}
		}
	}
	return false
}

func containsHelpline(list []Helpline, h Helpline) bool {
	for _, v := range list {
		if v.Number == h.Number {
			return true
		}
	}
	return false
}

var resourceClosing = map[string]string{
	analysis.LangHindi:    "Professional help लेना strength का sign है, weakness का नहीं।",
	analysis.LangHinglish: "Professional help lena strength ka sign hai, weakness ka nahi.",
	analysis.LangEnglish:  "Remember: seeking professional help is a sign of strength, not weakness.",
}

// Format 将资源格式化为回复文本
func (d *Directory) Format(lang string) string {
	if d.Empty() {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("Professional Help Resources:\n")
	if len(d.Helplines) > 0 {
		sb.WriteString("Helplines:\n")
		for _, h := range d.Helplines {
			sb.WriteString(fmt.Sprintf("- %s: %s (%s)\n", h.Name, h.Number, h.Available))
		}
	}
	if len(d.ProfessionalTypes) > 0 {
		sb.WriteString("Recommended Professionals: ")
		sb.WriteString(strings.Join(d.ProfessionalTypes, ", "))
		sb.WriteString("\n")
	}
	if len(d.Websites) > 0 {
		sb.WriteString("Websites:\n")
		for _, w := range d.Websites {
			sb.WriteString("- " + w + "\n")
		}
	}
	closing, ok := resourceClosing[lang]
	if !ok {
		closing = resourceClosing[analysis.LangEnglish]
	}
	sb.WriteString(closing)
	return sb.String()
}
