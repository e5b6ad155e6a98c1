// Package scholar fetches and parses a Google Scholar profile's
// publication listing, one page at a time.
package scholar

// Publication is one entry from the profile's publication listing.
type Publication struct {
	Year  int    `json:"year"`
	Title string `json:"title"`
	Link  string `json:"link"`
	Venue string `json:"venue,omitempty"`
}
