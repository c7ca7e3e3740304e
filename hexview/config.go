package hexview

import (
	"github.com/iw2rmb/codearea/layout"
	"github.com/iw2rmb/codearea/scroll"
)

// Config configures the hexview Model.
type Config struct {
	// Initial data size in bytes. Hosts update it with SetDataSize.
	DataSize int64

	ViewMode               layout.ViewMode
	CodeType               layout.CodeType
	RowWrapping            layout.RowWrapping
	MaxBytesPerRow         int
	WrappingBytesGroupSize int

	Scroll       scroll.Config
	ScrollPolicy ScrollPolicy

	// KeyMap defaults to DefaultKeyMap when left empty.
	KeyMap KeyMap

	// OnChange is called after caret, selection, scroll position or data size
	// changed. Nil disables change events.
	OnChange func(ChangeEvent)
}

// DefaultConfig returns a dual view, hexadecimal, 16 bytes per row
// configuration with pixel scrolling and the default key bindings.
func DefaultConfig() Config {
	l := layout.DefaultConfig()
	return Config{
		ViewMode:               l.ViewMode,
		CodeType:               l.CodeType,
		RowWrapping:            l.RowWrapping,
		MaxBytesPerRow:         l.MaxBytesPerRow,
		WrappingBytesGroupSize: l.WrappingBytesGroupSize,
		Scroll:                 scroll.DefaultConfig(),
		ScrollPolicy:           ScrollAllowManual,
		KeyMap:                 DefaultKeyMap(),
	}
}
