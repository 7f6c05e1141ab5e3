package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectCultural(t *testing.T) {
	tax := Default()

	t.Run("empty keeps defaults", func(t *testing.T) {
		c := detectCultural(tax, "")
		assert.False(t, c.Any())
		assert.Equal(t, "balanced", c.TraditionalVsModern)
		assert.Equal(t, "low", c.FamilyInvolvementLevel)
		assert.Equal(t, "medium", c.SocialPressureLevel)
		assert.Equal(t, []string{"balanced_approach", "family_respect", "modern_solutions"}, c.RecommendedApproach)
	})

	t.Run("traditional", func(t *testing.T) {
		c := detectCultural(tax, "my conservative family wants arranged marriage")
		assert.Equal(t, "traditional", c.TraditionalVsModern)
		assert.Equal(t, "medium", c.FamilyInvolvementLevel)
		assert.True(t, c.FamilyDynamics)
		assert.True(t, c.RelationshipStatus)
		assert.Contains(t, c.Contexts, "traditional_values")
		assert.Equal(t, "respect_family_values", c.RecommendedApproach[0])
	})

	t.Run("balanced when equal", func(t *testing.T) {
		c := detectCultural(tax, "arranged marriage vs dating")
		assert.Equal(t, "balanced", c.TraditionalVsModern)
	})

	t.Run("family involvement high", func(t *testing.T) {
		c := detectCultural(tax, "family, parents and relatives")
		assert.Equal(t, "high", c.FamilyInvolvementLevel)
		assert.Contains(t, c.RecommendedApproach, "family_inclusive_approach")
	})

	t.Run("social pressure high", func(t *testing.T) {
		c := detectCultural(tax, "society and reputation")
		assert.True(t, c.SocialExpectations)
		assert.Equal(t, "high", c.SocialPressureLevel)
		assert.Contains(t, c.RecommendedApproach, "privacy_focused")
	})

	t.Run("independent flags", func(t *testing.T) {
		c := detectCultural(tax, "salary aur emi ka tension")
		assert.True(t, c.CareerPressure)
		assert.True(t, c.FinancialConcerns)
		assert.False(t, c.FamilyDynamics)
	})
}

func TestDetectCoping(t *testing.T) {
	tax := Default()

	s := detectCoping(tax, "raat bhar smoking kar raha hun, help chahiye")
	assert.Equal(t, []string{copingUnhealthy, copingSeekingHelp}, s.CurrentCoping)
	assert.True(t, s.NeedsGuidance)
	assert.True(t, s.SeekingHelp)

	s = detectCoping(tax, "roz meditation karta hun")
	assert.Equal(t, []string{"healthy"}, s.CurrentCoping)
	assert.False(t, s.NeedsGuidance)
}

func TestDetectTemporalAndRegional(t *testing.T) {
	tax := Default()

	tc := detectTemporal(tax, "abhi bahut bura lag raha hai")
	assert.Equal(t, "immediate", tc.TimeContext)
	assert.Equal(t, "high", tc.UrgencyLevel)

	tc = detectTemporal(tax, "")
	assert.Equal(t, "general", tc.TimeContext)
	assert.Equal(t, "normal", tc.UrgencyLevel)

	r := detectRegional(tax, "dada, ki korbo")
	assert.Equal(t, "bengali", r.PrimaryRegion)
	assert.Equal(t, "general", detectRegional(tax, "").PrimaryRegion)
}

func TestCulturalDetector_Detect(t *testing.T) {
	store := NewStore(Default())
	d := NewCulturalDetector(store)

	c := d.Detect("GHAR WALE bahut pressure de rahe hain")
	assert.True(t, c.FamilyDynamics)
	assert.Equal(t, detectCultural(store.Get(), "ghar wale bahut pressure de rahe hain"), c)

	empty := d.Detect("")
	assert.False(t, empty.Any())
}
