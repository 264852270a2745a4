// Package buttons derives the ordered, actionable button set for a
// notification under the platform's button-count constraints.
package buttons

// Button is one actionable button on a notification. It is a closed set of
// variants; dispatch sites type-switch over Link, OpenAll, Configure and
// Question.
type Button interface {
	// Title is the text displayed on the button.
	Title() string

	sealed()
}

// Link opens a single URL.
type Link struct {
	Text   string
	Target string
}

// OpenAll opens every URL in a list.
type OpenAll struct {
	Text    string
	Targets []string
}

// Configure opens the extension settings at the notifications section.
type Configure struct {
	Text string
}

// Question records a yes/no answer for a question notification.
type Question struct {
	Text  string
	IsYes bool
}

// Title returns the button text.
func (b Link) Title() string { return b.Text }

// Title returns the button text.
func (b OpenAll) Title() string { return b.Text }

// Title returns the button text.
func (b Configure) Title() string { return b.Text }

// Title returns the button text.
func (b Question) Title() string { return b.Text }

func (Link) sealed()      {}
func (OpenAll) sealed()   {}
func (Configure) sealed() {}
func (Question) sealed()  {}

// Titles returns the display titles of the given buttons in order. The
// positional index doubles as the platform button-click callback index.
func Titles(buttons []Button) []string {
	if len(buttons) == 0 {
		return nil
	}
	titles := make([]string, 0, len(buttons))
	for _, b := range buttons {
		titles = append(titles, b.Title())
	}
	return titles
}

// Links returns every URL referenced by the given buttons, flattening Link
// targets and OpenAll target lists.
func Links(buttons []Button) []string {
	var links []string
	for _, b := range buttons {
		switch b := b.(type) {
		case Link:
			links = append(links, b.Target)
		case OpenAll:
			links = append(links, b.Targets...)
		}
	}
	return links
}
