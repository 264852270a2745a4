package notification

import "regexp"

var (
	anchorRe = regexp.MustCompile(`<a>(.*?)</a>`)
	markupRe = regexp.MustCompile(`</?(a|strong)>`)
)

// AnchorTitles extracts the inner text of every <a>...</a> placeholder in
// the rendered message, in left-to-right order. The i-th title corresponds
// to the i-th entry of the record's links.
func AnchorTitles(message string) []string {
	matches := anchorRe.FindAllStringSubmatch(message, -1)
	if len(matches) == 0 {
		return nil
	}
	titles := make([]string, 0, len(matches))
	for _, m := range matches {
		titles = append(titles, m[1])
	}
	return titles
}

// StripMarkup removes the anchor and styling markers from a rendered
// message, leaving plain text suitable for surfaces that render no markup.
func StripMarkup(message string) string {
	return markupRe.ReplaceAllString(message, "")
}
