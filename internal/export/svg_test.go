package export

import (
	"math"
	"strings"
	"testing"

	"github.com/san-kum/helix/internal/chain"
	"github.com/san-kum/helix/internal/viz"
)

func TestChainToSVG(t *testing.T) {
	points := []chain.Vec3{{}, {X: 1}, {X: 2, Y: 1}}
	svg := ChainToSVG(points, 400, 300, "#00ffff")

	if !strings.HasPrefix(svg, `<?xml`) {
		t.Error("missing XML header")
	}
	if !strings.Contains(svg, `<path`) {
		t.Error("missing path element")
	}
	if !strings.Contains(svg, "#00ffff") {
		t.Error("stroke color not applied")
	}
	if strings.Count(svg, " L") != len(points)-1 {
		t.Errorf("expected %d line segments", len(points)-1)
	}
}

func TestChainToSVGDegenerate(t *testing.T) {
	if svg := ChainToSVG([]chain.Vec3{{}}, 400, 300, "#fff"); svg != "" {
		t.Error("expected empty output for a single point")
	}
	bad := []chain.Vec3{{}, {X: math.NaN()}}
	if svg := ChainToSVG(bad, 400, 300, "#fff"); svg != "" {
		t.Error("expected empty output for non-finite points")
	}
}

func TestCanvasToSVG(t *testing.T) {
	c := viz.NewCanvas(4, 2)
	c.Set(0, 0)
	c.Set(3, 5)

	svg := CanvasToSVG(c, 4)
	if !strings.Contains(svg, "<circle") {
		t.Error("no dots emitted for lit pixels")
	}
	if got := strings.Count(svg, "<circle"); got != 2 {
		t.Errorf("emitted %d dots, want 2", got)
	}

	if CanvasToSVG(nil, 4) != "" {
		t.Error("expected empty output for nil canvas")
	}
}
