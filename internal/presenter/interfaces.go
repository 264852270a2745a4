package presenter

import "github.com/flattr/adblockpluschrome/internal/notification"

// Queue is the external queue engine that selects which notification to
// present next. The presenter only consumes it; eligibility and persistence
// live behind this interface.
type Queue interface {
	// LocalizedTexts returns the user-visible content of a record.
	LocalizedTexts(n *notification.Notification) notification.LocalizedTexts
	// MarkAsShown records that the notification was presented.
	MarkAsShown(id string) error
	// TriggerQuestionListeners forwards a yes/no answer for a question
	// notification.
	TriggerQuestionListeners(id string, approved bool) error
	// AddShowListener subscribes to records that should be presented.
	AddShowListener(listener func(n *notification.Notification))
	// ShowNext asks the engine to select the next eligible record,
	// optionally scoped to the given URL.
	ShowNext(currentURL string) error
}

// View is the rendered form of a notification handed to a surface.
type View struct {
	ID      string
	Title   string
	Message string
	// IconPath locates the icon asset, empty for the surface default.
	IconPath string
	// ButtonTitles are the display titles in click-callback index order.
	// Empty when the platform does not support buttons.
	ButtonTitles []string
	// RequireInteraction pins the notification until the user reacts.
	RequireInteraction bool
}

// Surface is a presentation channel capable of showing and clearing
// notifications. Both the native and the fallback in-page surface satisfy
// this contract, so the presenter is implementation-agnostic; surfaces
// report click and close events back through Events.
type Surface interface {
	// Show renders the view.
	Show(view View) error
	// Clear removes the notification from the surface.
	Clear(id string) error
}

// Events receives user and platform signals from a surface. The presenter
// implements it.
type Events interface {
	// ButtonClicked reports a click on the button at the given index.
	ButtonClicked(id string, index int)
	// Clicked reports a click on the notification body.
	Clicked(id string)
	// Closed reports that the notification left the surface. byUser is
	// false when the platform merely stashed it into the notification
	// center, where its buttons remain clickable.
	Closed(id string, byUser bool)
}

// Opener performs the side effects of button clicks.
type Opener interface {
	// OpenURL opens an external URL.
	OpenURL(url string) error
	// OpenLocalPage opens an extension-internal page by its path.
	OpenLocalPage(path string) error
	// OpenSettings opens the settings surface at the given section.
	OpenSettings(section string) error
}

// IconAnimator starts and stops the icon animation surface.
type IconAnimator interface {
	Start(t notification.Type)
	Stop()
}
