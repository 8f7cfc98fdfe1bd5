package simon

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/tui-simon/internal/config"
	"github.com/vovakirdan/tui-simon/internal/round"
)

func TestLayoutTileAt(t *testing.T) {
	l, ok := NewLayout(80, 24)
	if !ok {
		t.Fatal("80x24 should fit")
	}

	for i, r := range l.Tiles {
		cx, cy := r.Center()
		if got, ok := l.TileAt(cx, cy); !ok || got != i {
			t.Errorf("TileAt center of %d = %d, %v", i, got, ok)
		}
		if r.Right() > 80 || r.Bottom() > 24 || r.X < 0 || r.Y < hudHeight {
			t.Errorf("tile %d out of bounds: %+v", i, r)
		}
	}

	// Gap between the first two tiles.
	gapX := l.Tiles[0].Right()
	if _, ok := l.TileAt(gapX, l.Tiles[0].Y); ok {
		t.Error("gap should not map to a tile")
	}
	if _, ok := l.TileAt(0, 0); ok {
		t.Error("HUD should not map to a tile")
	}
}

func TestLayoutTooSmall(t *testing.T) {
	tests := []struct {
		name string
		w, h int
		ok   bool
	}{
		{"default", 80, 24, true},
		{"minimum", minWidth, MinHeight(), true},
		{"narrow", minWidth - 1, 24, false},
		{"short", 80, MinHeight() - 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := NewLayout(tt.w, tt.h); ok != tt.ok {
				t.Errorf("NewLayout(%d, %d) ok = %v, want %v", tt.w, tt.h, ok, tt.ok)
			}
		})
	}
}

func TestLighten(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"#c80000", "#ff0000"},
		{"#00b400", "#00fc00"},
		{"#dc7800", "#ffa800"},
		{"#000000", "#000000"},
	}

	for _, tt := range tests {
		c, err := colorful.Hex(tt.in)
		if err != nil {
			t.Fatal(err)
		}
		if got := Lighten(c, 1.4).Hex(); got != tt.want {
			t.Errorf("Lighten(%s) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestNewPalette(t *testing.T) {
	p, err := NewPalette(config.DefaultSimonConfig().Board)
	if err != nil {
		t.Fatalf("NewPalette: %v", err)
	}
	for i := range round.TileCount {
		if p.Base[i] == p.Lit[i] {
			t.Errorf("tile %d lit color equals base %q", i, p.Base[i])
		}
	}

	bad := config.DefaultSimonConfig().Board
	bad.Colors[3] = "orange"
	if _, err := NewPalette(bad); err == nil {
		t.Error("expected error for invalid hex")
	}
}
