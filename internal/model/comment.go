package model

import "time"

// Platform is the social network a comment or post originates from.
type Platform string

const (
	PlatformYouTube   Platform = "youtube"
	PlatformInstagram Platform = "instagram"
	PlatformTwitter   Platform = "twitter"
	PlatformTikTok    Platform = "tiktok"
	PlatformFacebook  Platform = "facebook"
	PlatformLinkedIn  Platform = "linkedin"
)

// Platforms lists every supported platform in sidebar order.
var Platforms = []Platform{
	PlatformYouTube, PlatformInstagram, PlatformTwitter,
	PlatformTikTok, PlatformFacebook, PlatformLinkedIn,
}

func (p Platform) IsValid() bool {
	for _, v := range Platforms {
		if v == p {
			return true
		}
	}
	return false
}

// Emotion is the detected emotion of a comment.
type Emotion string

const (
	EmotionExcited Emotion = "excited"
	EmotionAngry   Emotion = "angry"
	EmotionCurious Emotion = "curious"
	EmotionHappy   Emotion = "happy"
	EmotionSad     Emotion = "sad"
	EmotionNeutral Emotion = "neutral"
)

var Emotions = []Emotion{
	EmotionExcited, EmotionAngry, EmotionCurious,
	EmotionHappy, EmotionSad, EmotionNeutral,
}

func (e Emotion) IsValid() bool {
	for _, v := range Emotions {
		if v == e {
			return true
		}
	}
	return false
}

// Sentiment is the polarity of a comment.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

var Sentiments = []Sentiment{SentimentPositive, SentimentNegative, SentimentNeutral}

func (s Sentiment) IsValid() bool {
	for _, v := range Sentiments {
		if v == s {
			return true
		}
	}
	return false
}

// Category is a free-form, extensible classification. The known values are listed below.
type Category string

const (
	CategoryProduct Category = "product"
	CategoryVIP     Category = "vip"
	CategorySpam    Category = "spam"
	CategoryGeneral Category = "general"
)

var Categories = []Category{CategoryProduct, CategoryVIP, CategorySpam, CategoryGeneral}

// Author is the external account that wrote a comment.
type Author struct {
	Name   string `json:"name" yaml:"name"`
	Avatar string `json:"avatar" yaml:"avatar"`
}

// Comment is a single platform comment attached to a post.
type Comment struct {
	ID        string    `json:"id" yaml:"id"`
	PostID    string    `json:"post_id" yaml:"post_id"`
	UserID    string    `json:"user_id" yaml:"-"`
	Platform  Platform  `json:"platform" yaml:"platform"`
	Author    Author    `json:"author" yaml:"author"`
	Text      string    `json:"text" yaml:"text"`
	Time      string    `json:"time" yaml:"time"`
	Emotion   Emotion   `json:"emotion" yaml:"emotion"`
	Sentiment Sentiment `json:"sentiment" yaml:"sentiment"`
	Category  Category  `json:"category" yaml:"category"`

	// Status flags are independent of each other.
	Flagged        bool `json:"flagged" yaml:"flagged"`
	NeedsAttention bool `json:"needs_attention" yaml:"needs_attention"`
	Archived       bool `json:"archived" yaml:"archived"`
	Saved          bool `json:"saved" yaml:"saved"`
	Important      bool `json:"important" yaml:"important"`

	Likes   int `json:"likes" yaml:"likes"`
	Replies int `json:"replies" yaml:"replies"`

	Position  int       `json:"position" yaml:"-"`
	CreatedAt time.Time `json:"created_at" yaml:"-"`
}

// CommentIDs returns the ids of comments in order.
func CommentIDs(comments []Comment) []string {
	ids := make([]string, 0, len(comments))
	for _, c := range comments {
		ids = append(ids, c.ID)
	}
	return ids
}
