package models

import "fmt"

// Fixed strings and geometry of the form.
const (
	WindowTitle   = "Interacción Usuario"
	ButtonLabel   = "Haz clic en mí"
	DisplayPrefix = "Ingresaste: "

	// EntryColumns is the nominal width of the text field in characters
	EntryColumns = 15

	DefaultWindowWidth  = 300
	DefaultWindowHeight = 200
)

// Lifecycle represents the window state machine
type Lifecycle int

const (
	Open   Lifecycle = iota // window visible, events processed
	Closed                  // terminal
)

func (l Lifecycle) String() string {
	switch l {
	case Open:
		return "open"
	case Closed:
		return "closed"
	default:
		return fmt.Sprintf("Lifecycle(%d)", int(l))
	}
}

// CloseBehavior is the policy applied when the user closes the window
type CloseBehavior string

const (
	CloseTerminateProcess CloseBehavior = "terminate_process"
)

// ParseCloseBehavior validates a configured close policy
func ParseCloseBehavior(s string) (CloseBehavior, error) {
	switch CloseBehavior(s) {
	case CloseTerminateProcess:
		return CloseTerminateProcess, nil
	default:
		return "", NewAppErrorWithDetails(ErrTypeValidation, "unsupported close behavior", s)
	}
}

// FormatDisplay builds the label text for the given input
func FormatDisplay(input string) string {
	return DisplayPrefix + input
}

// FormState holds the transient state of one form. It is owned by a single
// UI goroutine and is not safe for concurrent use.
type FormState struct {
	inputText   string
	displayText string
	state       Lifecycle
	activations int
}

// NewFormState creates an open form with an empty field and label
func NewFormState() *FormState {
	return &FormState{state: Open}
}

// SetInput mirrors the text field contents. It never touches the label.
func (f *FormState) SetInput(text string) {
	if f.state == Closed {
		return
	}
	f.inputText = text
}

// Input returns the mirrored text field contents
func (f *FormState) Input() string {
	return f.inputText
}

// Display returns the current label text
func (f *FormState) Display() string {
	return f.displayText
}

// State returns the lifecycle state
func (f *FormState) State() Lifecycle {
	return f.state
}

// Activations returns how many activations were applied
func (f *FormState) Activations() int {
	return f.activations
}

// Activate copies the current input into the label and returns the new
// label text. Once the form is closed the label is left untouched.
func (f *FormState) Activate() string {
	if f.state == Closed {
		return f.displayText
	}
	f.displayText = FormatDisplay(f.inputText)
	f.activations++
	return f.displayText
}

// Close moves the form to Closed. It reports whether a transition happened.
func (f *FormState) Close() bool {
	if f.state == Closed {
		return false
	}
	f.state = Closed
	return true
}
