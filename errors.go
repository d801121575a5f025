package rroguelib

import "fmt"

// FontLoadError indicates that a font byte stream could not be parsed.
// The registration that produced it failed entirely; the font is not
// available under its name.
type FontLoadError struct {
	Name string
	Err  error
}

func (e *FontLoadError) Error() string {
	return fmt.Sprintf("load font %q: %v", e.Name, e.Err)
}

func (e *FontLoadError) Unwrap() error { return e.Err }

// UnknownFontError indicates a draw call referenced a font name that
// was never registered. The draw call fails with no partial output.
type UnknownFontError struct {
	Name string
}

func (e *UnknownFontError) Error() string {
	return fmt.Sprintf("unknown font %q", e.Name)
}

// AtlasOverflowError indicates a single glyph's footprint exceeds the
// total atlas capacity. It is local to that glyph: the caller drops the
// glyph for the frame and keeps rendering the rest.
type AtlasOverflowError struct {
	Glyph rune
	W, H  int
}

func (e *AtlasOverflowError) Error() string {
	return fmt.Sprintf("glyph %q (%dx%d) exceeds atlas capacity", e.Glyph, e.W, e.H)
}

// TextureCreationError indicates the GPU surface could not allocate a
// backing texture. Fatal to the registration that requested it.
type TextureCreationError struct {
	W, H int
	Err  error
}

func (e *TextureCreationError) Error() string {
	return fmt.Sprintf("create %dx%d texture: %v", e.W, e.H, e.Err)
}

func (e *TextureCreationError) Unwrap() error { return e.Err }

// DrawSubmissionError indicates a draw or present call failed at the
// surface layer. Fatal for the frame; no partial GPU submission is left
// in an undefined state.
type DrawSubmissionError struct {
	Pass string
	Err  error
}

func (e *DrawSubmissionError) Error() string {
	return fmt.Sprintf("submit %s pass: %v", e.Pass, e.Err)
}

func (e *DrawSubmissionError) Unwrap() error { return e.Err }
