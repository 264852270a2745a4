// Package notification defines the notification record model shared between
// the queue engine and the presenter.
package notification

import (
	"fmt"
	"strings"
)

// Type classifies a notification and drives the display policy.
type Type string

// Notification types.
const (
	TypeCritical    Type = "critical"
	TypeQuestion    Type = "question"
	TypeNormal      Type = "normal"
	TypeRelentless  Type = "relentless"
	TypeInformation Type = "information"
)

// IsValid checks if the notification type is a known value.
func (t Type) IsValid() bool {
	switch t {
	case TypeCritical, TypeQuestion, TypeNormal, TypeRelentless, TypeInformation:
		return true
	default:
		return false
	}
}

// String returns the string representation of the type.
func (t Type) String() string {
	return string(t)
}

// LocalPageScheme prefixes links that point to extension-internal pages
// instead of resolvable URLs.
const LocalPageScheme = "abp:"

// Notification is a single notification record. Records are owned by the
// queue engine and read-only to the presenter.
type Notification struct {
	// ID is the opaque, stable identity of the notification instance.
	ID string
	// Type drives which surfaces are activated and which buttons are built.
	Type Type
	// Links holds the URLs referenced by the anchor placeholders of the
	// localized message, in placeholder order. Links may use the "abp:"
	// scheme to reference a local page.
	Links []string
	// URLFilters marks a context-specific variant of the notification that
	// suppresses icon animation.
	URLFilters []string
}

// LocalizedTexts is the user-visible content of a notification. The message
// may embed <a>...</a> anchor placeholders (mapped positionally to Links)
// and <strong> styling markers.
type LocalizedTexts struct {
	Title   string
	Message string
}

// IsLocalLink reports whether the link references a local page.
func IsLocalLink(link string) bool {
	return strings.HasPrefix(link, LocalPageScheme)
}

// Validate checks the structural integrity of a record.
func (n *Notification) Validate() error {
	if n.ID == "" {
		return fmt.Errorf("notification ID cannot be empty")
	}
	if !n.Type.IsValid() {
		return fmt.Errorf("invalid notification type: %s", n.Type)
	}
	return nil
}

// ParseType parses a string into a Type.
func ParseType(value string) (Type, error) {
	t := Type(value)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid notification type: %s", value)
	}
	return t, nil
}
