package onboarding

import (
	"io"
	"time"

	"comment-srv/internal/model"
)

const (
	DefaultAvatarBucket = "comment-avatars"
	AvatarURLExpiry     = time.Hour
	avatarPrefix        = "avatars/"
)

// AllowedAvatarTypes maps accepted image content types to their file extension.
var AllowedAvatarTypes = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// IsAvatarObject reports whether an avatar value is a stored object rather than an external URL.
func IsAvatarObject(avatar string) bool {
	return len(avatar) > len(avatarPrefix) && avatar[:len(avatarPrefix)] == avatarPrefix
}

// AvatarObjectName is the object key for a user's avatar upload.
func AvatarObjectName(userID, id, ext string) string {
	return avatarPrefix + userID + "/" + id + ext
}

// Progress is the onboarding state of a user.
type Progress struct {
	Profile model.Profile
	// AvatarURL is a readable link for Profile.Avatar; empty when no avatar is set.
	AvatarURL string
	// Connections has one entry per supported platform, in sidebar order.
	Connections []model.PlatformConnection
	Step        model.OnboardingStep
}

// ConnectedCount is the number of connected platforms.
func (p Progress) ConnectedCount() int {
	n := 0
	for _, c := range p.Connections {
		if c.Connected {
			n++
		}
	}
	return n
}

type SaveProfileInput struct {
	Name       string
	Persona    string
	Tone       model.Tone
	Signature  string
	ActionBias model.ActionBias
}

type UploadAvatarInput struct {
	Filename    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

type TogglePlatformInput struct {
	Platform    model.Platform
	AccessToken string
}
