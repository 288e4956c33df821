package viz

import (
	"math"

	"github.com/san-kum/helix/internal/chain"
)

// Camera projects world-space chain points onto the canvas plane with a
// simple perspective divide.
type Camera struct {
	Distance         float64
	RotX, RotY, RotZ float64
	Zoom             float64
}

func NewCamera() *Camera {
	return &Camera{Distance: 5, Zoom: 1.0}
}

func (c *Camera) RotateX(a float64) { c.RotX += a }
func (c *Camera) RotateY(a float64) { c.RotY += a }
func (c *Camera) RotateZ(a float64) { c.RotZ += a }
func (c *Camera) ZoomIn()           { c.Zoom = math.Min(10, c.Zoom*1.2) }
func (c *Camera) ZoomOut()          { c.Zoom = math.Max(0.1, c.Zoom/1.2) }

// Reset restores the default pose.
func (c *Camera) Reset() {
	c.RotX, c.RotY, c.RotZ = 0, 0, 0
	c.Zoom = 1.0
}

// RotatePoint rotates a point around the camera axes.
func (c *Camera) RotatePoint(p chain.Vec3) chain.Vec3 {
	cx, sx := math.Cos(c.RotX), math.Sin(c.RotX)
	p.Y, p.Z = p.Y*cx-p.Z*sx, p.Y*sx+p.Z*cx
	cy, sy := math.Cos(c.RotY), math.Sin(c.RotY)
	p.X, p.Z = p.X*cy+p.Z*sy, -p.X*sy+p.Z*cy
	cz, sz := math.Cos(c.RotZ), math.Sin(c.RotZ)
	p.X, p.Y = p.X*cz-p.Y*sz, p.X*sz+p.Y*cz
	return p
}

// Project converts world coordinates to sub-pixel screen coordinates.
// The ok result is false for points behind the camera or non-finite input.
func (c *Camera) Project(p chain.Vec3, sw, sh int) (int, int, bool) {
	if !p.IsFinite() {
		return 0, 0, false
	}
	rot := c.RotatePoint(p).Scale(c.Zoom)
	if rot.Z >= c.Distance-0.1 {
		return 0, 0, false
	}
	scale := c.Distance / (c.Distance - rot.Z)
	minDim := float64(sh)
	if float64(sw) < minDim {
		minDim = float64(sw)
	}
	pScale := minDim / 3.0
	sx := int(rot.X*scale*pScale) + sw/2
	sy := int(-rot.Y*scale*pScale) + sh/2
	return sx, sy, true
}

// DrawChain renders a point sequence as a connected polyline, centered and
// scaled to fit the canvas. The previous frame's geometry must be cleared
// by the caller; every frame is drawn from scratch.
func DrawChain(c *Canvas, cam *Camera, points []chain.Vec3) {
	if c == nil || cam == nil || len(points) == 0 {
		return
	}
	sw, sh := c.PixelSize()

	centered, ok := normalizePoints(points)
	if !ok {
		return
	}

	prevX, prevY, prevOK := 0, 0, false
	for i, p := range centered {
		x, y, visible := cam.Project(p, sw, sh)
		if !visible {
			prevOK = false
			continue
		}
		if prevOK {
			c.DrawLine(prevX, prevY, x, y)
		} else {
			c.Set(x, y)
		}
		if i == 0 || i == len(centered)-1 {
			c.DrawMarker(x, y, 1)
		}
		prevX, prevY, prevOK = x, y, true
	}
}

// normalizePoints recenters the chain on its bounding-box midpoint and
// scales it into a unit-ish cube so any chain length fills the view. Chains
// containing non-finite points report !ok and draw nothing, which is the
// degenerate-output rendering of an invalid parameter domain.
func normalizePoints(points []chain.Vec3) ([]chain.Vec3, bool) {
	min := points[0]
	max := points[0]
	for _, p := range points {
		if !p.IsFinite() {
			return nil, false
		}
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		min.Z = math.Min(min.Z, p.Z)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
		max.Z = math.Max(max.Z, p.Z)
	}

	span := math.Max(max.X-min.X, math.Max(max.Y-min.Y, max.Z-min.Z))
	if span == 0 {
		span = 1
	}
	center := min.Add(max).Scale(0.5)

	out := make([]chain.Vec3, len(points))
	for i, p := range points {
		out[i] = p.Sub(center).Scale(2 / span)
	}
	return out, true
}
