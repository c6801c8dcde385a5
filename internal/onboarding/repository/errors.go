package repository

import "errors"

var ErrNotFound = errors.New("onboarding repository: not found")
