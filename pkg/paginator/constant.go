package paginator

const (
	DefaultPage  = 1
	DefaultLimit = 10
	// MaxLimit caps a single page.
	MaxLimit = 100
)
