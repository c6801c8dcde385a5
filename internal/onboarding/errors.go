package onboarding

import "errors"

var (
	ErrNameRequired        = errors.New("onboarding: name is required")
	ErrInvalidTone         = errors.New("onboarding: invalid tone")
	ErrInvalidActionBias   = errors.New("onboarding: invalid action bias")
	ErrInvalidPlatform     = errors.New("onboarding: invalid platform")
	ErrInvalidAvatar       = errors.New("onboarding: invalid avatar")
	ErrNoPlatformConnected = errors.New("onboarding: connect at least one platform")
	ErrProfileIncomplete   = errors.New("onboarding: profile setup not completed")
	ErrStorageFailed       = errors.New("onboarding: avatar storage failed")
	ErrStoreFailed         = errors.New("onboarding: store unavailable")
)
