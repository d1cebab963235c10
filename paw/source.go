// Package paw turns cursor input into the mascot's arm geometry.
//
// A Source reports the cursor, the focused window and the desktop size. The
// Mapper remaps the cursor into mascot-local space and BuildArm derives the
// closed Bézier silhouette that the renderer fills and outlines.
package paw

// Window describes the focused top-level window.
type Window struct {
	Title  string
	X, Y   int
	Width  int
	Height int
}

// Source is the pointer and focus query surface consumed each frame. All
// methods must return promptly; they are called from the frame thread.
type Source interface {
	CursorPosition() (x, y int, ok bool)
	FocusedWindow() (Window, bool)
	DesktopResolution() (w, h int)
	IsKeyPressed(code int) bool
}

// FrameInput is a snapshot of a Source for one frame.
type FrameInput struct {
	CursorX, CursorY int
	CursorOK         bool

	Window   Window
	WindowOK bool

	DesktopW, DesktopH int
}

// Poll snapshots src for the current frame.
func Poll(src Source) FrameInput {
	var in FrameInput
	in.CursorX, in.CursorY, in.CursorOK = src.CursorPosition()
	in.Window, in.WindowOK = src.FocusedWindow()
	in.DesktopW, in.DesktopH = src.DesktopResolution()
	return in
}
