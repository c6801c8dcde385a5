package http

import (
	"errors"

	"comment-srv/internal/onboarding"
	pkgErrors "comment-srv/pkg/errors"
)

var (
	errWrongBody           = pkgErrors.NewHTTPError(400, "Wrong body")
	errAvatarRequired      = pkgErrors.NewHTTPError(400, "Avatar file is required")
	errNameRequired        = pkgErrors.NewHTTPError(400, "Name is required")
	errInvalidTone         = pkgErrors.NewHTTPError(400, "Invalid tone")
	errInvalidActionBias   = pkgErrors.NewHTTPError(400, "Invalid action bias")
	errInvalidPlatform     = pkgErrors.NewHTTPError(400, "Invalid platform")
	errInvalidAvatar       = pkgErrors.NewHTTPError(400, "Avatar must be a png, jpeg, gif or webp image under 10MB")
	errNoPlatformConnected = pkgErrors.NewHTTPError(409, "Connect at least one platform to continue")
	errProfileIncomplete   = pkgErrors.NewHTTPError(409, "Complete your profile first")
	errStorageFailed       = pkgErrors.NewHTTPError(503, "Avatar storage unavailable")
	errStoreFailed         = pkgErrors.NewHTTPError(503, "Profile store unavailable")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, onboarding.ErrNameRequired):
		return errNameRequired
	case errors.Is(err, onboarding.ErrInvalidTone):
		return errInvalidTone
	case errors.Is(err, onboarding.ErrInvalidActionBias):
		return errInvalidActionBias
	case errors.Is(err, onboarding.ErrInvalidPlatform):
		return errInvalidPlatform
	case errors.Is(err, onboarding.ErrInvalidAvatar):
		return errInvalidAvatar
	case errors.Is(err, onboarding.ErrNoPlatformConnected):
		return errNoPlatformConnected
	case errors.Is(err, onboarding.ErrProfileIncomplete):
		return errProfileIncomplete
	case errors.Is(err, onboarding.ErrStorageFailed):
		return errStorageFailed
	case errors.Is(err, onboarding.ErrStoreFailed):
		return errStoreFailed
	default:
		panic(err)
	}
}
