package paginator

// Query is a page request. Page is 1-indexed.
type Query struct {
	Page  int `json:"page" form:"page"`
	Limit int `json:"limit" form:"limit"`
}

// Meta describes the page that was returned.
type Meta struct {
	Total       int
	Count       int
	PerPage     int
	CurrentPage int
}

// Response is Meta as rendered to clients.
type Response struct {
	Total       int  `json:"total"`
	Count       int  `json:"count"`
	PerPage     int  `json:"per_page"`
	CurrentPage int  `json:"current_page"`
	TotalPages  int  `json:"total_pages"`
	HasNext     bool `json:"has_next"`
	HasPrev     bool `json:"has_prev"`
}

// Window is an append-only feed: Loaded items are already shown, each step
// reveals at most Step more, and nothing past Cap is ever revealed.
type Window struct {
	Loaded int
	Step   int
	Cap    int
}
