// Package hexview provides a Bubble Tea component that drives the layout and
// scroll models of a hex code area.
//
// The package owns input handling (keys, mouse, resize), the caret and
// selection, the scroll position, and host integration hooks (change events,
// viewport state, screen/caret coordinate mapping). It does not paint: hosts
// read ViewportState and the layout Structure and render rows themselves.
package hexview
