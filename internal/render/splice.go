package render

import (
	"fmt"
	"strings"
)

// AnchorNotFoundError reports a document with no marker pair and no
// insertion anchor. The document is never modified when this occurs.
type AnchorNotFoundError struct {
	Anchor string
}

func (e *AnchorNotFoundError) Error() string {
	return fmt.Sprintf("could not find insertion anchor %q in document", e.Anchor)
}

// Targets names the places Splice may put a fragment: the marker pair
// bracketing a previously generated block, or the anchor line a first
// generated block goes in front of.
type Targets struct {
	MarkerStart string
	MarkerEnd   string
	Anchor      string
}

// Splice returns doc with fragment replacing the region from the first
// start marker through the first end marker, inclusive. When the document
// has no marker pair yet, the fragment and a blank line go immediately
// before the anchor instead. The transform is pure text to text; callers
// own all file I/O.
func Splice(doc, fragment string, targets Targets) (string, error) {
	start := strings.Index(doc, targets.MarkerStart)
	end := strings.Index(doc, targets.MarkerEnd)
	if start >= 0 && end >= 0 {
		return doc[:start] + fragment + doc[end+len(targets.MarkerEnd):], nil
	}

	idx := strings.Index(doc, targets.Anchor)
	if idx < 0 {
		return "", &AnchorNotFoundError{Anchor: targets.Anchor}
	}
	return doc[:idx] + fragment + "\n\n" + doc[idx:], nil
}
