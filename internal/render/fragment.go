// Package render builds the generated publications block and splices it
// into an existing HTML document.
package render

import (
	"fmt"
	"html"
	"sort"
	"strings"

	"github.com/algo-cancer/algo-cancer.github.io/internal/scholar"
)

// Layout controls the shape of the generated block.
type Layout struct {
	MarkerStart string // literal opening the generated block
	MarkerEnd   string // literal closing the generated block
	ChunkSize   int    // cards per row
}

// paperBoxTmpl takes escaped link, title, and venue, in that order.
const paperBoxTmpl = `      <div class="col-md-4 paperbox">
        <div class="media">
          <div class="media-body">
            <div class="smallhead media-heading">
              <a href="%s" class="off">%s</a>
            </div>
            <p class="note"><i>%s</i></p>
          </div>
        </div>
      <div class="bigspacer"></div><div class="spacer"></div>
      </div>`

// Fragment renders publications grouped by year, newest year first, as the
// marker-delimited HTML block. Within a year, cards keep their listing
// order and wrap into rows of Layout.ChunkSize. Both markers are always
// emitted, even for empty input, and the fragment ends exactly at the end
// marker so re-splicing it is byte-stable.
func Fragment(pubs []scholar.Publication, layout Layout) string {
	byYear := make(map[int][]scholar.Publication)
	for _, pub := range pubs {
		byYear[pub.Year] = append(byYear[pub.Year], pub)
	}

	years := make([]int, 0, len(byYear))
	for year := range byYear {
		years = append(years, year)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))

	parts := []string{layout.MarkerStart}
	for _, year := range years {
		parts = append(parts,
			fmt.Sprintf(`  <div class="bigtitle">%d</div>`, year),
			`  <div class="spacer"></div>`,
		)
		for _, group := range chunk(byYear[year], layout.ChunkSize) {
			parts = append(parts, `  <div class="row">`)
			for _, pub := range group {
				parts = append(parts, paperBox(pub))
			}
			parts = append(parts, `  </div>`, "")
		}
	}
	parts = append(parts, layout.MarkerEnd)

	return strings.Join(parts, "\n")
}

// paperBox renders one publication card with every text field escaped
// independently.
func paperBox(pub scholar.Publication) string {
	return fmt.Sprintf(paperBoxTmpl,
		html.EscapeString(pub.Link),
		html.EscapeString(pub.Title),
		html.EscapeString(pub.Venue))
}

// chunk splits pubs into consecutive groups of at most size elements.
func chunk(pubs []scholar.Publication, size int) [][]scholar.Publication {
	if size < 1 {
		size = 1
	}
	var groups [][]scholar.Publication
	for len(pubs) > size {
		groups = append(groups, pubs[:size])
		pubs = pubs[size:]
	}
	if len(pubs) > 0 {
		groups = append(groups, pubs)
	}
	return groups
}
