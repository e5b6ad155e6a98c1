package scholar

import (
	"context"
	"fmt"
)

// CrawlAll walks the paginated listing from offset 0, one page at a time,
// and returns every publication encountered, in listing order.
//
// Two conditions end the walk: a page with no publications (listing
// exhausted), or a page whose last publication predates cutoffYear. The
// listing is sorted by date descending, so no later page can contribute
// once that happens. Pages are kept whole: the stop check only inspects a
// page's last row, and earlier rows on the stop page stay in the result
// even when they fall below the cutoff.
func (c *Client) CrawlAll(ctx context.Context, user string, pageSize, cutoffYear int) ([]Publication, error) {
	var all []Publication

	for cstart := 0; ; cstart += pageSize {
		doc, err := c.FetchPage(ctx, user, cstart, pageSize)
		if err != nil {
			return nil, fmt.Errorf("crawling listing: %w", err)
		}

		pubs := ParseRows(doc, c.baseURL)
		if len(pubs) == 0 {
			break
		}

		all = append(all, pubs...)
		if pubs[len(pubs)-1].Year < cutoffYear {
			break
		}
	}

	return all, nil
}
