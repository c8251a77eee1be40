package window

// WindowError is returned when a widget cannot be created.
type WindowError struct {
	Message string
}

func (e WindowError) Error() string {
	return e.Message
}

var (
	ErrWindowCreationFailed = WindowError{Message: "failed to create application window"}
	ErrWebViewNotEmbeddable = WindowError{Message: "webview does not expose a GTK widget"}
)

// ErrWidgetCreationFailed creates an error for widget creation failure.
func ErrWidgetCreationFailed(name string) error {
	return WindowError{Message: "failed to create widget: " + name}
}
