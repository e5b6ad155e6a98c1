package scholar

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ParseRows extracts publications from one listing page, in source order.
// A row without a purely numeric year or without a title link is not a
// publication and is skipped. No year filtering happens here: the crawler
// decides when to stop based on what a whole page contains.
func ParseRows(doc *goquery.Document, base string) []Publication {
	var pubs []Publication

	doc.Find("tr.gsc_a_tr").Each(func(_ int, row *goquery.Selection) {
		yearText := strings.TrimSpace(row.Find("td.gsc_a_y span").First().Text())
		year, ok := parseYear(yearText)
		if !ok {
			return
		}

		titleLink := row.Find("a.gsc_a_at").First()
		title := strings.TrimSpace(titleLink.Text())
		if title == "" {
			return
		}
		href, _ := titleLink.Attr("href")

		// The second detail line carries the venue; the first is authors.
		venue := ""
		if detail := row.Find("div.gs_gray"); detail.Length() > 1 {
			venue = strings.TrimSpace(detail.Eq(1).Text())
		}

		pubs = append(pubs, Publication{
			Year:  year,
			Title: title,
			Link:  absoluteURL(base, href),
			Venue: venue,
		})
	})

	return pubs
}

// parseYear accepts only strings made entirely of digits, matching what the
// listing puts in its year column for real publications.
func parseYear(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	year := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		year = year*10 + int(r-'0')
	}
	return year, true
}

// absoluteURL resolves href against base so relative detail links never
// leak into rendered output.
func absoluteURL(base, href string) string {
	bu, err := url.Parse(base)
	if err != nil {
		return href
	}
	hu, err := url.Parse(href)
	if err != nil {
		return href
	}
	return bu.ResolveReference(hu).String()
}
