package presenter

import (
	"github.com/flattr/adblockpluschrome/internal/notification"
)

// localPages maps "abp:" aliases to extension-internal pages. A link using
// the local scheme that is absent from this table makes the owning
// notification ineligible to display.
var localPages = map[string]string{
	"abp:day1": "/day1.html",
}

// localPagePath resolves a local link to its page path.
func localPagePath(link string) (string, bool) {
	path, ok := localPages[link]
	return path, ok
}

// linksResolvable reports whether every local link is present in the
// local-page table. External links always resolve.
func linksResolvable(links []string) bool {
	for _, link := range links {
		if !notification.IsLocalLink(link) {
			continue
		}
		if _, ok := localPages[link]; !ok {
			return false
		}
	}
	return true
}
