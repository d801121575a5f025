package rroguelib_test

import (
	"errors"
	"testing"

	"github.com/tdejager/rroguelib"
)

func newTestRoguelib(t *testing.T, surface *mockSurface) *rroguelib.Roguelib {
	t.Helper()
	rl := rroguelib.New(surface, &fakeRasterizer{})
	if err := rl.RegisterFont("default", []byte("font"), 12); err != nil {
		t.Fatalf("RegisterFont: %v", err)
	}
	return rl
}

func TestDrawGridTextPipeline(t *testing.T) {
	surface := newMockSurface(640, 480)
	rl := newTestRoguelib(t, surface)

	if err := rl.DrawGridText("default", "abc"); err != nil {
		t.Fatalf("DrawGridText: %v", err)
	}

	// New glyphs were packed, so their regions were uploaded before
	// the draw passes.
	if len(surface.writes) == 0 {
		t.Error("expected dirty-region uploads for newly packed glyphs")
	}
	if len(surface.gridDraws) != 1 {
		t.Fatalf("got %d grid draws, want 1", len(surface.gridDraws))
	}
	if len(surface.textDraws) != 1 {
		t.Fatalf("got %d text draws, want 1", len(surface.textDraws))
	}
	if got := len(surface.textDraws[0]); got != 3*6 {
		t.Errorf("text batch has %d vertices, want 18", got)
	}
	if surface.presents != 1 {
		t.Errorf("got %d presents, want 1", surface.presents)
	}
}

func TestDrawSecondFrameUploadsNothing(t *testing.T) {
	surface := newMockSurface(640, 480)
	rl := newTestRoguelib(t, surface)

	if err := rl.DrawGridText("default", "abc"); err != nil {
		t.Fatalf("first draw: %v", err)
	}
	uploads := len(surface.writes)

	if err := rl.DrawGridText("default", "abc"); err != nil {
		t.Fatalf("second draw: %v", err)
	}
	if len(surface.writes) != uploads {
		t.Errorf("second frame re-uploaded %d regions, want 0", len(surface.writes)-uploads)
	}
}

func TestDrawUnknownFont(t *testing.T) {
	surface := newMockSurface(640, 480)
	rl := rroguelib.New(surface, &fakeRasterizer{})

	err := rl.DrawGridText("missing", "abc")
	var unknown *rroguelib.UnknownFontError
	if !errors.As(err, &unknown) {
		t.Fatalf("want UnknownFontError, got %v", err)
	}
	if surface.presents != 0 {
		t.Error("failed draw should not present")
	}
}

func TestDrawRebuildsGridMeshOnResize(t *testing.T) {
	surface := newMockSurface(640, 480)
	rl := newTestRoguelib(t, surface)

	if err := rl.DrawGridText("default", "a"); err != nil {
		t.Fatalf("first draw: %v", err)
	}
	firstMesh := surface.gridDraws[0]

	// Same viewport: the cached mesh is reused.
	if err := rl.DrawGridText("default", "a"); err != nil {
		t.Fatalf("second draw: %v", err)
	}
	if len(surface.gridDraws[1]) != len(firstMesh) {
		t.Error("unchanged viewport should reuse the grid mesh")
	}

	// Resize: cell counts change per the floor-division invariant and
	// the mesh is rebuilt to match.
	surface.width, surface.height = 320, 240
	if err := rl.DrawGridText("default", "a"); err != nil {
		t.Fatalf("post-resize draw: %v", err)
	}

	grid := rroguelib.NewCellGrid(
		rroguelib.Vec2{X: 320, Y: 240},
		rroguelib.Vec2{X: 10, Y: 10},
		rroguelib.Vec2{X: 0, Y: 8},
	)
	want := 2 * int(grid.Rows()+grid.Columns())
	if got := len(surface.gridDraws[2]); got != want {
		t.Errorf("rebuilt mesh has %d vertices, want %d", got, want)
	}
}

func TestDrawWithAdvancePolicy(t *testing.T) {
	surface := newMockSurface(640, 480)
	rl := newTestRoguelib(t, surface)

	err := rl.Draw("default", "hello", rroguelib.WithPolicy(rroguelib.LayoutAdvanceWrapped))
	if err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if got := len(surface.textDraws[0]); got != 5*6 {
		t.Errorf("text batch has %d vertices, want 30", got)
	}
}

func TestDrawWithStartIndex(t *testing.T) {
	surface := newMockSurface(640, 480)
	rl := newTestRoguelib(t, surface)

	// Column count is 64 (640 wide, 10px cells): index 64 is the
	// first cell of row 1.
	if err := rl.Draw("default", "a", rroguelib.WithStartIndex(64)); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	verts := surface.textDraws[0]
	if len(verts) != 6 {
		t.Fatalf("got %d vertices, want 6", len(verts))
	}
	// Row 1 starts 18 pixels down (cell height 10 plus ascent
	// padding 8); the quad must sit below the first row boundary.
	topY := verts[0].Pos[1]
	wantBelow := 2 * (1 - float32(10)/480 - 0.5) // clip y of pixel y=10
	if topY >= wantBelow {
		t.Errorf("glyph top clip y %g, want below row boundary %g", topY, wantBelow)
	}
}

func TestDrawSubmissionErrors(t *testing.T) {
	tests := []struct {
		name string
		prep func(*mockSurface)
	}{
		{"grid pass", func(m *mockSurface) { m.gridErr = errors.New("boom") }},
		{"text pass", func(m *mockSurface) { m.textErr = errors.New("boom") }},
		{"present", func(m *mockSurface) { m.presentErr = errors.New("boom") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			surface := newMockSurface(640, 480)
			rl := newTestRoguelib(t, surface)
			tt.prep(surface)

			err := rl.DrawGridText("default", "abc")
			var submission *rroguelib.DrawSubmissionError
			if !errors.As(err, &submission) {
				t.Fatalf("want DrawSubmissionError, got %v", err)
			}
		})
	}
}

func TestDrawClearsWithConfiguredColor(t *testing.T) {
	surface := newMockSurface(640, 480)
	rl := rroguelib.New(surface, &fakeRasterizer{},
		rroguelib.WithClearColor(rroguelib.Blue),
	)
	if err := rl.RegisterFont("default", []byte("font"), 12); err != nil {
		t.Fatalf("RegisterFont: %v", err)
	}

	if err := rl.DrawGridText("default", "a"); err != nil {
		t.Fatalf("DrawGridText: %v", err)
	}
	if len(surface.clears) != 1 || surface.clears[0] != rroguelib.Blue {
		t.Errorf("clear colors %v, want one blue clear", surface.clears)
	}
}
