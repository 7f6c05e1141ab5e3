package analysis

import "strings"

// fixedConfidence 关键词命中时的固定置信度
const fixedConfidence = 0.8

// EmotionDetector 情绪与强度识别
type EmotionDetector struct {
	store *Store
}

func NewEmotionDetector(store *Store) *EmotionDetector {
	return &EmotionDetector{store: store}
}

// Detect 识别消息中的情绪
func (d *EmotionDetector) Detect(text string) Emotions {
	return detectEmotions(d.store.Get(), strings.ToLower(text))
}

// detectEmotions 分层情绪取命中的最高层, 语境情绪取出现的最高强度标记, 默认medium
// 主导情绪为分值最高者, 同分时先注册者胜出
func detectEmotions(t *Taxonomy, text string) Emotions {
	res := Emotions{
		Scores:   make(map[string]EmotionScore),
		Dominant: Neutral,
	}
	if text == "" {
		return res
	}

	best := 0
	record := func(emotion string, intensity Intensity) {
		res.Scores[emotion] = EmotionScore{Intensity: intensity, Confidence: fixedConfidence}
		if w := intensity.Weight(); w > best {
			best = w
			res.Dominant = emotion
		}
	}

	for _, e := range t.TieredEmotions {
		if intensity, ok := tieredIntensity(text, &e); ok {
			record(e.Emotion, intensity)
		}
	}

	var marker Intensity
	markerResolved := false
	for _, e := range t.ContextualEmotions {
		if !containsAny(text, e.Patterns) {
			continue
		}
		if !markerResolved {
			marker = intensityMarker(t, text)
			markerResolved = true
		}
		record(e.Category, marker)
	}
	return res
}

// tieredIntensity 各层独立检查, 取分值最高的一层
func tieredIntensity(text string, e *TieredEntry) (Intensity, bool) {
	switch {
	case containsAny(text, e.High):
		return IntensityHigh, true
	case containsAny(text, e.Medium):
		return IntensityMedium, true
	case containsAny(text, e.Low):
		return IntensityLow, true
	}
	return "", false
}

// intensityMarker 出现的最高强度标记, 没有标记时为medium
func intensityMarker(t *Taxonomy, text string) Intensity {
	best := IntensityMedium
	found := false
	for _, e := range t.IntensityMarkers {
		level := Intensity(e.Category)
		if containsAny(text, e.Patterns) && (!found || level.Weight() > best.Weight()) {
			best = level
			found = true
		}
	}
	return best
}
