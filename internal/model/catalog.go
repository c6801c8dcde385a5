package model

import "strings"

// CatalogEntry is the display metadata for one enumerated value.
type CatalogEntry struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	Icon        string `json:"icon,omitempty"`
	Description string `json:"description,omitempty"`
}

var platformCatalog = map[Platform]CatalogEntry{
	PlatformYouTube:   {Value: "youtube", Label: "YouTube", Icon: "/youtube.png"},
	PlatformInstagram: {Value: "instagram", Label: "Instagram", Icon: "/instagram.png"},
	PlatformTwitter:   {Value: "twitter", Label: "X", Icon: "/twitter.png"},
	PlatformTikTok:    {Value: "tiktok", Label: "TikTok", Icon: "/tiktok.png"},
	PlatformFacebook:  {Value: "facebook", Label: "Facebook", Icon: "/facebook.png"},
	PlatformLinkedIn:  {Value: "linkedin", Label: "LinkedIn", Icon: "/linkedin.png"},
}

var emotionCatalog = map[Emotion]CatalogEntry{
	EmotionExcited: {Value: "excited", Label: "Excited", Icon: "🤩"},
	EmotionAngry:   {Value: "angry", Label: "Angry", Icon: "😡"},
	EmotionCurious: {Value: "curious", Label: "Curious", Icon: "🤔"},
	EmotionHappy:   {Value: "happy", Label: "Happy", Icon: "😊"},
	EmotionSad:     {Value: "sad", Label: "Sad", Icon: "😢"},
	EmotionNeutral: {Value: "neutral", Label: "Neutral", Icon: "😐"},
}

var sentimentCatalog = map[Sentiment]CatalogEntry{
	SentimentPositive: {Value: "positive", Label: "Positive", Icon: "👍"},
	SentimentNegative: {Value: "negative", Label: "Negative", Icon: "👎"},
	SentimentNeutral:  {Value: "neutral", Label: "Neutral", Icon: "🤷"},
}

var categoryCatalog = map[Category]CatalogEntry{
	CategoryProduct: {Value: "product", Label: "Product Feedback", Icon: "💬"},
	CategoryVIP:     {Value: "vip", Label: "VIP", Icon: "⭐"},
	CategorySpam:    {Value: "spam", Label: "Spam", Icon: "🚫"},
	CategoryGeneral: {Value: "general", Label: "General", Icon: "📦"},
}

var statusCatalog = map[Status]CatalogEntry{
	StatusAll:       {Value: "all", Label: "All", Icon: "🔍"},
	StatusFlagged:   {Value: "flagged", Label: "Flagged", Icon: "🚩"},
	StatusAttention: {Value: "attention", Label: "Attention", Icon: "⚠️"},
	StatusArchived:  {Value: "archived", Label: "Archived", Icon: "📦"},
}

var toneCatalog = map[Tone]CatalogEntry{
	ToneFriendly:     {Value: "friendly", Label: "Friendly"},
	ToneProfessional: {Value: "professional", Label: "Professional"},
	ToneWitty:        {Value: "witty", Label: "Witty"},
	ToneEmpathetic:   {Value: "empathetic", Label: "Empathetic"},
}

var actionBiasCatalog = map[ActionBias]CatalogEntry{
	ActionBiasEngage:    {Value: "engage", Label: "Engage more", Description: "Focus on building relationships and encouraging conversation"},
	ActionBiasRedirect:  {Value: "redirect", Label: "Redirect to Help", Description: "Guide users to resources, documentation, or support channels"},
	ActionBiasInform:    {Value: "inform", Label: "Inform only", Description: "Provide factual information without additional engagement"},
	ActionBiasApologize: {Value: "apologize", Label: "Apologize smartly", Description: "Address concerns with empathy and offer solutions"},
}

// PlatformInfo never fails; unknown platforms get a generic entry.
func PlatformInfo(p Platform) CatalogEntry {
	if e, ok := platformCatalog[p]; ok {
		return e
	}
	return CatalogEntry{Value: string(p), Label: Capitalize(string(p)), Icon: "/placeholder.svg"}
}

// EmotionInfo falls back to neutral.
func EmotionInfo(e Emotion) CatalogEntry {
	if entry, ok := emotionCatalog[e]; ok {
		return entry
	}
	fallback := emotionCatalog[EmotionNeutral]
	fallback.Value = string(e)
	return fallback
}

func SentimentInfo(s Sentiment) CatalogEntry {
	if e, ok := sentimentCatalog[s]; ok {
		return e
	}
	fallback := sentimentCatalog[SentimentNeutral]
	fallback.Value = string(s)
	return fallback
}

// CategoryInfo labels unknown categories with their own capitalized value.
func CategoryInfo(c Category) CatalogEntry {
	if e, ok := categoryCatalog[c]; ok {
		return e
	}
	return CatalogEntry{Value: string(c), Label: Capitalize(string(c)), Icon: "🏷️"}
}

func StatusInfo(s Status) CatalogEntry {
	if e, ok := statusCatalog[s]; ok {
		return e
	}
	return statusCatalog[StatusAll]
}

func ToneInfo(t Tone) CatalogEntry {
	if e, ok := toneCatalog[t]; ok {
		return e
	}
	return toneCatalog[ToneFriendly]
}

func ActionBiasInfo(a ActionBias) CatalogEntry {
	if e, ok := actionBiasCatalog[a]; ok {
		return e
	}
	return actionBiasCatalog[ActionBiasEngage]
}

// Capitalize upper-cases the first letter.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return strings.ToUpper(string(r[0])) + string(r[1:])
}
