package glimpse

// Surface is a single native window together with its graphics context,
// as created by a Platform.
type Surface interface {
	MakeContextCurrent()

	// ShouldClose reports whether a close was requested, e.g. by the user
	// clicking the close button of the window.
	ShouldClose() bool
	SetShouldClose(value bool)

	// KeyDown returns the current physical state of the given key.
	KeyDown(key Key) bool

	// CursorPos returns the cursor position in screen coordinates,
	// relative to the top left corner of the window.
	CursorPos() (x, y float64)

	SwapBuffers()
	Destroy()
}

// Platform is the windowing and graphics library a Window is built on.
// Init and Terminate bracket every other call. All methods must be
// called from the thread that owns the graphics context.
type Platform interface {
	Init() error
	Terminate()

	CreateSurface(width, height int, title string, hints ContextHints) (Surface, error)

	// SwapInterval sets the number of screen updates to wait for
	// before swapping the buffers of the current context.
	SwapInterval(interval int)

	// LoadExtensions resolves the graphics api entry points for
	// the current context.
	LoadExtensions() error

	EnableDepthTest()

	// Clear clears the color and depth buffers of the current context.
	Clear()

	PollEvents()

	// Time returns the seconds elapsed since Init.
	Time() float64
}

// ContextHints describe the graphics context requested for a new Surface.
type ContextHints struct {
	VersionMajor int
	VersionMinor int

	Resizable         bool
	CoreProfile       bool
	ForwardCompatible bool
}

// contextHints is the fixed context configuration of every Window.
var contextHints = ContextHints{
	VersionMajor:      3,
	VersionMinor:      3,
	Resizable:         false,
	CoreProfile:       true,
	ForwardCompatible: true,
}
