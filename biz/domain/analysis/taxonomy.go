package analysis

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/jinzhu/copier"
	"github.com/zeromicro/go-zero/core/conf"
)

// Entry 一个分类及其触发短语
type Entry struct {
	Category string   `json:"category"`
	Patterns []string `json:"patterns"`
}

// TieredEntry 按强度分层的情绪关键词
type TieredEntry struct {
	Emotion string   `json:"emotion"`
	Low     []string `json:"low,optional"`
	Medium  []string `json:"medium,optional"`
	High    []string `json:"high,optional"`
}

// Group 一组敏感话题分类, 分类名为 Name_Category
type Group struct {
	Name    string  `json:"name"`
	Entries []Entry `json:"entries"`
}

// Taxonomy 所有检测器共享的只读词表
// 表内切片保持注册顺序, 决定了同分时的胜出顺序
type Taxonomy struct {
	TieredEmotions     []TieredEntry `json:"tiered_emotions,optional"`
	ContextualEmotions []Entry       `json:"contextual_emotions,optional"`
	IntensityMarkers   []Entry       `json:"intensity_markers,optional"`

	SensitiveGroups    []Group  `json:"sensitive_groups,optional"`
	SeverityIndicators []Entry  `json:"severity_indicators,optional"`
	CrisisPhrases      []string `json:"crisis_phrases,optional"`

	CulturalFlags      []Entry  `json:"cultural_flags,optional"`
	TraditionalMarkers []string `json:"traditional_markers,optional"`
	ModernMarkers      []string `json:"modern_markers,optional"`
	FamilyIndicators   []string `json:"family_indicators,optional"`
	PressureIndicators []string `json:"pressure_indicators,optional"`
	CulturalContexts   []Entry  `json:"cultural_contexts,optional"`
	CulturalChallenges []Entry  `json:"cultural_challenges,optional"`

	CopingIndicators   []Entry `json:"coping_indicators,optional"`
	TemporalIndicators []Entry `json:"temporal_indicators,optional"`
	RegionalMarkers    []Entry `json:"regional_markers,optional"`

	HinglishMarkers []string `json:"hinglish_markers,optional"`
	EnglishMarkers  []string `json:"english_markers,optional"`
}

// merge 用覆盖文件中非空的表整体替换默认表
func (t *Taxonomy) merge(o *Taxonomy) {
	if len(o.TieredEmotions) > 0 {
		t.TieredEmotions = o.TieredEmotions
	}
	if len(o.ContextualEmotions) > 0 {
		t.ContextualEmotions = o.ContextualEmotions
	}
	if len(o.IntensityMarkers) > 0 {
		t.IntensityMarkers = o.IntensityMarkers
	}
	if len(o.SensitiveGroups) > 0 {
		t.SensitiveGroups = o.SensitiveGroups
	}
	if len(o.SeverityIndicators) > 0 {
		t.SeverityIndicators = o.SeverityIndicators
	}
	if len(o.CrisisPhrases) > 0 {
		t.CrisisPhrases = o.CrisisPhrases
	}
	if len(o.CulturalFlags) > 0 {
		t.CulturalFlags = o.CulturalFlags
	}
	if len(o.TraditionalMarkers) > 0 {
		t.TraditionalMarkers = o.TraditionalMarkers
	}
	if len(o.ModernMarkers) > 0 {
		t.ModernMarkers = o.ModernMarkers
	}
	if len(o.FamilyIndicators) > 0 {
		t.FamilyIndicators = o.FamilyIndicators
	}
	if len(o.PressureIndicators) > 0 {
		t.PressureIndicators = o.PressureIndicators
	}
	if len(o.CulturalContexts) > 0 {
		t.CulturalContexts = o.CulturalContexts
	}
	if len(o.CulturalChallenges) > 0 {
		t.CulturalChallenges = o.CulturalChallenges
	}
	if len(o.CopingIndicators) > 0 {
		t.CopingIndicators = o.CopingIndicators
	}
	if len(o.TemporalIndicators) > 0 {
		t.TemporalIndicators = o.TemporalIndicators
	}
	if len(o.RegionalMarkers) > 0 {
		t.RegionalMarkers = o.RegionalMarkers
	}
	if len(o.HinglishMarkers) > 0 {
		t.HinglishMarkers = o.HinglishMarkers
	}
	if len(o.EnglishMarkers) > 0 {
		t.EnglishMarkers = o.EnglishMarkers
	}
}

// normalize 将所有短语转为小写, 匹配时只对消息做一次小写
func (t *Taxonomy) normalize() {
	lowerAll := func(ps []string) {
		for i := range ps {
			ps[i] = strings.ToLower(ps[i])
		}
	}
	lowerEntries := func(es []Entry) {
		for i := range es {
			lowerAll(es[i].Patterns)
		}
	}
	for i := range t.TieredEmotions {
		lowerAll(t.TieredEmotions[i].Low)
		lowerAll(t.TieredEmotions[i].Medium)
		lowerAll(t.TieredEmotions[i].High)
	}
	lowerEntries(t.ContextualEmotions)
	lowerEntries(t.IntensityMarkers)
	for i := range t.SensitiveGroups {
		lowerEntries(t.SensitiveGroups[i].Entries)
	}
	lowerEntries(t.SeverityIndicators)
	lowerAll(t.CrisisPhrases)
	lowerEntries(t.CulturalFlags)
	lowerAll(t.TraditionalMarkers)
	lowerAll(t.ModernMarkers)
	lowerAll(t.FamilyIndicators)
	lowerAll(t.PressureIndicators)
	lowerEntries(t.CulturalContexts)
	lowerEntries(t.CulturalChallenges)
	lowerEntries(t.CopingIndicators)
	lowerEntries(t.TemporalIndicators)
	lowerEntries(t.RegionalMarkers)
	lowerAll(t.HinglishMarkers)
	lowerAll(t.EnglishMarkers)
}

// Store 进程级词表, 只能整体替换
type Store struct {
	current atomic.Pointer[Taxonomy]
}

// NewStore 使用给定词表创建Store
func NewStore(t *Taxonomy) *Store {
	s := &Store{}
	s.Replace(t)
	return s
}

// LoadStore 启动时加载词表, path为空时只使用内置词表
func LoadStore(path string) (*Store, error) {
	t := Default()
	if path != "" {
		var o Taxonomy
		if err := conf.Load(path, &o); err != nil {
			return nil, fmt.Errorf("加载词表失败: %w", err)
		}
		t.merge(&o)
	}
	return NewStore(t), nil
}

// Get 获取当前词表快照, 调用方不得修改
func (s *Store) Get() *Taxonomy {
	return s.current.Load()
}

// Replace 整体替换词表, 正在进行的分析继续使用旧快照
// 存入的是t的深拷贝, 调用方之后修改t不影响Store
func (s *Store) Replace(t *Taxonomy) {
	c := t.clone()
	c.normalize()
	s.current.Store(c)
}

// clone 深拷贝词表
func (t *Taxonomy) clone() *Taxonomy {
	c := new(Taxonomy)
	// 同类型之间的拷贝不会失败
	if err := copier.CopyWithOption(c, t, copier.Option{DeepCopy: true}); err != nil {
		panic(fmt.Sprintf("clone taxonomy: %v", err))
	}
	return c
}
