package dto

// SearchFilter contains query parameters for the business listing endpoint.
// Zero values mean "no constraint"; filters combine with logical AND.
type SearchFilter struct {
	Category  string
	MinRating *float64
	Location  string
	Query     string
	Sort      string
}

// PageState is the initial filter state handed to the landing page.
type PageState struct {
	Search   string `json:"search"`
	Category string `json:"category"`
	Location string `json:"location"`
}
