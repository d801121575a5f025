/*
Package rroguelib renders monospaced character grids over a graphics
surface, for terminal-style roguelike games.

# Overview

A linear sequence of characters is mapped onto a fixed-size cell grid:
each character occupies one cell in row-major order, wrapping falls out
of the index arithmetic. Characters resolve to rasterized glyphs via a
texture-atlas cache using a two-phase queue/pack protocol, and every
frame emits one batched quad vertex stream per draw call, plus a
parallel grid-line mesh for visual debugging.

Window creation, input polling, shader compilation and font file
parsing are collaborators, not part of the core: the GPU side is the
Surface interface (implemented by backend/opengl on go-gl), the font
side is the Rasterizer interface (implemented by the truetype package
on github.com/golang/freetype).

# Quick Start

	// Setup (see example/ for the full glfw wiring)
	surface, _ := opengl.NewSurface(window, log)
	rl := rroguelib.New(surface, truetype.New())

	fontBytes, _ := os.ReadFile("square.ttf")
	if err := rl.RegisterFont("default", fontBytes, 24); err != nil {
	    log.Fatal(err)
	}

	// Game loop
	for !window.ShouldClose() {
	    glfw.PollEvents()
	    if err := rl.DrawGridText("default", "abcdefg@■"); err != nil {
	        log.Fatal(err)
	    }
	}

# Layout Policies

DrawGridText uses grid-indexed layout: one character per cell, implicit
wrapping. The alternate advance-wrapped policy tracks a caret and
re-positions a glyph on the next line when its bounding box would cross
the viewport width:

	rl.Draw("default", longText, rroguelib.WithPolicy(rroguelib.LayoutAdvanceWrapped))

Both policies NFC-normalize their input so a combining sequence lays
out as one composed glyph per cell.

# Error Handling

Per-glyph failures (a glyph too large for the atlas) degrade to a
missing glyph for that frame. Per-font and per-surface failures are
returned to the caller: FontLoadError, UnknownFontError,
TextureCreationError, DrawSubmissionError.
*/
package rroguelib
