package maze

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/vovakirdan/ghostmaze/internal/core"
)

var testSizes = []struct{ w, h int }{
	{5, 5},
	{7, 9},
	{11, 11},
	{21, 21},
	{31, 31},
	{40, 25},
}

func generate(t *testing.T, w, h int, seed int64) *Grid {
	t.Helper()
	g, err := Generate(Params{Width: w, Height: h}, rand.New(rand.NewSource(seed)))
	if err != nil {
		t.Fatalf("Generate(%dx%d, seed %d) failed: %v", w, h, seed, err)
	}
	return g
}

func TestGenerateSingleConnectedPatch(t *testing.T) {
	for _, size := range testSizes {
		for seed := int64(1); seed <= 25; seed++ {
			g := generate(t, size.w, size.h, seed)
			if n := len(Patches(g)); n != 1 {
				t.Errorf("%dx%d seed %d: expected 1 patch, got %d\n%s", size.w, size.h, seed, n, g)
			}
		}
	}
}

func TestGenerateConnectedWithWideSpacing(t *testing.T) {
	tests := []struct{ w, h, space int }{
		{31, 31, 100},
		{21, 21, 11},
		{40, 25, 1},
		{9, 5, 2},
	}

	for _, tt := range tests {
		for seed := int64(1); seed <= 15; seed++ {
			p := Params{Width: tt.w, Height: tt.h, EmptySpace: tt.space}
			g, err := Generate(p, rand.New(rand.NewSource(seed)))
			if err != nil {
				t.Fatalf("Generate(%+v) failed: %v", p, err)
			}
			if n := len(Patches(g)); n != 1 {
				t.Errorf("%+v seed %d: expected 1 patch, got %d\n%s", p, seed, n, g)
			}
			if n := g.Count(GhostSpawn); n != 4 {
				t.Errorf("%+v seed %d: expected 4 ghost spawns, got %d", p, seed, n)
			}
		}
	}
}

func TestGenerateSpawnCardinality(t *testing.T) {
	for _, size := range testSizes {
		for seed := int64(1); seed <= 25; seed++ {
			g := generate(t, size.w, size.h, seed)

			if n := g.Count(Spawn); n != 1 {
				t.Errorf("%dx%d seed %d: expected 1 Spawn, got %d", size.w, size.h, seed, n)
			}
			if g.At(g.Center()) != Spawn {
				t.Errorf("%dx%d seed %d: center is %v, expected Spawn", size.w, size.h, seed, g.At(g.Center()))
			}
			if n := g.Count(GhostSpawn); n != 4 {
				t.Errorf("%dx%d seed %d: expected 4 GhostSpawn, got %d", size.w, size.h, seed, n)
			}
			for _, c := range g.Corners() {
				if g.At(c) != GhostSpawn {
					t.Errorf("%dx%d seed %d: corner %v is %v, expected GhostSpawn", size.w, size.h, seed, c, g.At(c))
				}
			}
		}
	}
}

func TestGenerateWraparoundTunnels(t *testing.T) {
	g := generate(t, 21, 21, 7)
	mid := g.Center()

	tunnels := []core.Pos{
		{X: mid.X, Y: 0},
		{X: mid.X, Y: g.H - 1},
		{X: 0, Y: mid.Y},
		{X: g.W - 1, Y: mid.Y},
	}
	for _, p := range tunnels {
		if !g.At(p).Walkable() {
			t.Errorf("tunnel cell %v should be open, got %v", p, g.At(p))
		}
	}
	if g.At(core.Pos{X: 0, Y: 0}) != Wall {
		t.Error("frame corner (0,0) should be a wall")
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := generate(t, 21, 21, 42)
	b := generate(t, 21, 21, 42)
	if a.String() != b.String() {
		t.Errorf("same seed should give the same maze:\n%s\n\n%s", a, b)
	}
}

func TestGenerateTooSmall(t *testing.T) {
	tests := []struct{ w, h int }{
		{4, 10},
		{10, 4},
		{0, 0},
	}

	for _, tc := range tests {
		t.Run(fmt.Sprintf("%dx%d", tc.w, tc.h), func(t *testing.T) {
			_, err := Generate(Params{Width: tc.w, Height: tc.h}, rand.New(rand.NewSource(1)))
			if !errors.Is(err, ErrTooSmall) {
				t.Errorf("expected ErrTooSmall, got %v", err)
			}
		})
	}
}

func TestCarveRespectsNeighbourLimit(t *testing.T) {
	g := NewGrid(15, 15)
	carve(g, rand.New(rand.NewSource(3)))

	if g.Count(Wall) == 0 {
		t.Fatal("carve should place walls")
	}
	if g.At(core.Pos{X: 0, Y: 0}) != Wall {
		t.Error("carving starts at (0,0), which should be a wall")
	}
	// No wall can ever be fully surrounded: it had < 3 wall neighbours when
	// placed and at most 4 cardinal neighbours can follow it.
	for _, p := range g.Positions(Wall) {
		if n := wallNeighbours(g, p); n == 8 {
			t.Errorf("wall at %v has 8 wall neighbours", p)
		}
	}
}

func TestPatches(t *testing.T) {
	g := NewGrid(5, 3)
	// ..#..
	// ..#..
	// #####
	for y := 0; y < 3; y++ {
		g.Set(core.Pos{X: 2, Y: y}, Wall)
	}
	for x := 0; x < 5; x++ {
		g.Set(core.Pos{X: x, Y: 2}, Wall)
	}

	patches := Patches(g)
	if len(patches) != 2 {
		t.Fatalf("expected 2 patches, got %d", len(patches))
	}
	for i, p := range patches {
		if len(p) != 4 {
			t.Errorf("patch %d: expected 4 cells, got %d", i, len(p))
		}
	}
	if !patches[0].Contains(core.Pos{X: 0, Y: 0}) {
		t.Error("first patch should hold the first open cell in row-major order")
	}
}

func TestConnectKeepsLargest(t *testing.T) {
	g := NewGrid(7, 3)
	// ..#....
	// ..#....
	// #######
	for y := 0; y < 3; y++ {
		g.Set(core.Pos{X: 2, Y: y}, Wall)
	}
	for x := 0; x < 7; x++ {
		g.Set(core.Pos{X: x, Y: 2}, Wall)
	}

	connect(g)

	if g.At(core.Pos{X: 0, Y: 0}) != Wall {
		t.Error("smaller patch should be walled off")
	}
	if g.At(core.Pos{X: 5, Y: 1}) != Empty {
		t.Error("largest patch should stay open")
	}
	if n := len(Patches(g)); n != 1 {
		t.Errorf("expected 1 patch after connect, got %d", n)
	}
}

func TestGridString(t *testing.T) {
	g := NewGrid(3, 2)
	g.Set(core.Pos{X: 0, Y: 0}, Wall)
	g.Set(core.Pos{X: 1, Y: 0}, Spawn)
	g.Set(core.Pos{X: 2, Y: 1}, GhostSpawn)

	expected := "#P.\n..G"
	if got := g.String(); got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}
}
