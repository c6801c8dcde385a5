package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalogFallbacks(t *testing.T) {
	assert.Equal(t, "X", PlatformInfo(PlatformTwitter).Label)
	assert.Equal(t, "/placeholder.svg", PlatformInfo("mastodon").Icon)

	assert.Equal(t, "😐", EmotionInfo("bored").Icon)
	assert.Equal(t, "bored", EmotionInfo("bored").Value)
	assert.Equal(t, "🤩", EmotionInfo(EmotionExcited).Icon)

	assert.Equal(t, "Product Feedback", CategoryInfo(CategoryProduct).Label)
	assert.Equal(t, "Sponsor", CategoryInfo("sponsor").Label)

	assert.Equal(t, "All", StatusInfo("").Label)
	assert.Equal(t, "Friendly", ToneInfo("loud").Label)
	assert.Equal(t, "Engage more", ActionBiasInfo("").Label)
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "", Capitalize(""))
	assert.Equal(t, "Youtube", Capitalize("youtube"))
	assert.Equal(t, "Émile", Capitalize("émile"))
}

func TestFilterCriteria(t *testing.T) {
	d := DefaultFilterCriteria()
	assert.True(t, d.IsDefault())
	assert.NotNil(t, d.Platforms)

	f := d.Clone()
	f.Platforms = append(f.Platforms, PlatformYouTube)
	assert.False(t, f.IsDefault())
	assert.Empty(t, d.Platforms)
}

func TestEnumValidity(t *testing.T) {
	assert.True(t, PlatformLinkedIn.IsValid())
	assert.False(t, Platform("myspace").IsValid())
	assert.True(t, EmotionSad.IsValid())
	assert.False(t, Sentiment("mixed").IsValid())
	assert.True(t, StatusAttention.IsValid())
	assert.True(t, ToneWitty.IsValid())
	assert.False(t, ActionBias("ignore").IsValid())
	assert.Equal(t, 2, StepDashboard.Rank())
	assert.Equal(t, 0, OnboardingStep("").Rank())
}
