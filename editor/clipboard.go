package editor

// Clipboard provides editor-level clipboard integration.
//
// Errors never reach the UI; they are logged and the action is dropped.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}
