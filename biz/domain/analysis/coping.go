package analysis

const (
	copingUnhealthy   = "unhealthy"
	copingSeekingHelp = "seeking_help"
)

// detectCoping 识别用户当前的应对方式, 不健康的应对需要引导
func detectCoping(t *Taxonomy, text string) CopingSignals {
	s := CopingSignals{CurrentCoping: make([]string, 0)}
	if text == "" {
		return s
	}
	s.CurrentCoping = matchedCategories(text, t.CopingIndicators)
	for _, c := range s.CurrentCoping {
		switch c {
		case copingUnhealthy:
			s.NeedsGuidance = true
		case copingSeekingHelp:
			s.SeekingHelp = true
		}
	}
	return s
}
