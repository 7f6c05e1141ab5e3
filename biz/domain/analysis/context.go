package analysis

// detectTemporal 时间语境, 取第一个命中的类别
func detectTemporal(t *Taxonomy, text string) TemporalContext {
	tc := TemporalContext{TimeContext: "general", UrgencyLevel: "normal"}
	if text == "" {
		return tc
	}
	for _, e := range t.TemporalIndicators {
		if containsAny(text, e.Patterns) {
			tc.TimeContext = e.Category
			break
		}
	}
	if tc.TimeContext == "immediate" {
		tc.UrgencyLevel = "high"
	}
	return tc
}

// detectRegional 地区用语
func detectRegional(t *Taxonomy, text string) RegionalInfo {
	info := RegionalInfo{Regions: make([]string, 0), PrimaryRegion: "general"}
	if text == "" {
		return info
	}
	info.Regions = matchedCategories(text, t.RegionalMarkers)
	if len(info.Regions) > 0 {
		info.PrimaryRegion = info.Regions[0]
	}
	return info
}

func personalizationHints(c *CulturalContext, r *RegionalInfo) PersonalizationHints {
	return PersonalizationHints{
		UseRegionalTerms:          r.PrimaryRegion,
		CulturalSensitivityNeeded: c.Any(),
		FamilyContext:             c.FamilyDynamics,
		ProfessionalContext:       c.CareerPressure,
	}
}

// historyTrend 结合调用方提供的历史摘要, 历史只读
func historyTrend(history []HistoryItem, dominant string) Trend {
	tr := Trend{Turns: len(history)}
	for _, h := range history {
		if dominant != Neutral && h.Emotion == dominant {
			tr.RecurringEmotion = true
		}
		if h.Level == LevelCrisis {
			tr.PriorCrisis = true
		}
	}
	return tr
}
