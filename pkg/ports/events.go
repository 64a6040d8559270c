package ports

// Button identifies one of the control buttons of the window.
type Button int

const (
	ButtonFlipHorizontal Button = iota
	ButtonFlipVertical
	ButtonRotateClockwise
	ButtonRotateCounterClockwise
	ButtonInvert
)

// Buttons lists the buttons in the order they are laid out.
var Buttons = []Button{
	ButtonFlipHorizontal,
	ButtonFlipVertical,
	ButtonRotateClockwise,
	ButtonRotateCounterClockwise,
	ButtonInvert,
}

// String returns the name of the button.
func (b Button) String() string {
	switch b {
	case ButtonFlipHorizontal:
		return "flip-horizontal"
	case ButtonFlipVertical:
		return "flip-vertical"
	case ButtonRotateClockwise:
		return "rotate-clockwise"
	case ButtonRotateCounterClockwise:
		return "rotate-counter-clockwise"
	case ButtonInvert:
		return "invert"
	default:
		return "unknown"
	}
}

// PipelineError is an error reported by a running pipeline.
type PipelineError struct {
	Source string // Name of the element that failed
	Err    error
	Debug  string // Additional debugging information, may be empty
}

// UIEvents receives input from the UI host. Calls happen on the event loop.
type UIEvents interface {
	OnClick(b Button)
	OnCloseRequested()
}

// PipelineEvents receives notifications from the pipeline bus. Calls happen
// on the event loop.
type PipelineEvents interface {
	OnError(e PipelineError)
	OnEndOfStream()
}
