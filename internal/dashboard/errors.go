package dashboard

import "errors"

var (
	ErrInvalidDimension = errors.New("dashboard: invalid filter dimension")
	ErrInvalidValue     = errors.New("dashboard: invalid filter value")
	ErrInvalidKey       = errors.New("dashboard: invalid navigation key")
	ErrStoreFailed      = errors.New("dashboard: session store unavailable")
)
