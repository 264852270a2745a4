package buttons

import (
	"github.com/flattr/adblockpluschrome/internal/display"
	"github.com/flattr/adblockpluschrome/internal/notification"
)

// maxButtons is the hard platform cap on button slots per notification.
const maxButtons = 2

// Fixed button titles.
const (
	yesTitle       = "Yes"
	noTitle        = "No"
	openAllTitle   = "Open all"
	configureTitle = "Configure"
)

// Build derives the button set for a notification from its type, links and
// rendered message. The returned order is significant: it is both the
// display order and the index space of platform button-click callbacks.
//
// Question notifications always get exactly two buttons, yes then no. For
// other types, each <a> placeholder in the message yields a Link button for
// the matching entry of the record's links. When the link buttons exceed
// the slots left by an optional Configure button, they collapse into a
// single OpenAll button carrying every link.
func Build(n *notification.Notification, renderedMessage string) []Button {
	if n.Type == notification.TypeQuestion {
		return []Button{
			Question{Text: yesTitle, IsYes: true},
			Question{Text: noTitle, IsYes: false},
		}
	}

	titles := notification.AnchorTitles(renderedMessage)
	built := make([]Button, 0, len(titles)+1)
	for i, title := range titles {
		if i >= len(n.Links) {
			// Placeholder/link counts are an external contract; never
			// read past the links that are actually there.
			break
		}
		built = append(built, Link{Text: title, Target: n.Links[i]})
	}

	addConfigure := display.IsOptional(n.Type)
	max := maxButtons
	if addConfigure {
		max = maxButtons - 1
	}
	if len(built) > max {
		built = []Button{OpenAll{
			Text:    openAllTitle,
			Targets: append([]string(nil), n.Links...),
		}}
	}
	if addConfigure {
		built = append(built, Configure{Text: configureTitle})
	}
	return built
}
