// Package camera pans a fixed-size viewport over a laid out tree.
//
// The camera keeps a target point that the viewport is centered on.
// Panning moves the target by one percent of the world per step and
// keeps the viewport inside the world. When the whole world fits in
// the viewport (plus padding) the camera is off and the view simply
// centers the world.
package camera

import (
	"go.lepak.sg/bstviz/display"
)

// Direction is a set of pan directions, like a set of pressed arrow keys.
type Direction uint8

const (
	Right Direction = 1 << iota
	Left
	Up
	Down
)

func (d Direction) Has(o Direction) bool {
	return d&o != 0
}

type Config struct {
	// Width and Height are the viewport size in world units.
	Width, Height float64
	// WorldPadding is how far the world may poke out of the viewport
	// before the camera turns on.
	WorldPadding float64
}

// DefaultConfig is a 1200x700 viewport.
var DefaultConfig = Config{
	Width:        1200,
	Height:       700,
	WorldPadding: 50,
}

type Camera struct {
	cfg   Config
	world display.BoundingBox

	targetX, targetY float64
	lastX, lastY     float64
	hasMoved         bool

	on             bool
	speedX, speedY float64

	// top left of the view
	x, y float64
}

// New creates a camera aimed at the center of the viewport.
func New(cfg Config, world display.BoundingBox) *Camera {
	c := &Camera{cfg: cfg}
	c.Center()
	c.lastX, c.lastY = c.targetX, c.targetY

	c.UpdateWorld(world)
	c.Calibrate()

	return c
}

// UpdateWorld changes the world the camera moves over. It does not
// move the view, call Calibrate for that.
func (c *Camera) UpdateWorld(world display.BoundingBox) {
	pad := c.cfg.WorldPadding

	c.world = world
	c.on = world.MinX < -pad ||
		world.MaxX > c.cfg.Width+pad ||
		world.MinY < -pad ||
		world.MaxY > c.cfg.Height+pad
	c.speedX = world.MaxX / 100
	c.speedY = world.MaxY / 100
}

// Calibrate moves the view so it is centered on the target, as far as
// the world allows.
func (c *Camera) Calibrate() {
	w, h := c.cfg.Width, c.cfg.Height
	c.x = clamp(c.targetX-w/2, c.world.MinX, c.world.MaxX-w)
	c.y = clamp(c.targetY-h/2, c.world.MinY, c.world.MaxY-h)
}

// Update pans by one step in every direction in pressed, keeps the
// target inside the world and recalibrates.
func (c *Camera) Update(pressed Direction) {
	w, h := c.cfg.Width, c.cfg.Height

	if pressed.Has(Right) {
		c.targetX += c.speedX
	}
	if pressed.Has(Left) {
		c.targetX -= c.speedX
	}
	if pressed.Has(Up) {
		c.targetY -= c.speedY
	}
	if pressed.Has(Down) {
		c.targetY += c.speedY
	}

	if c.targetX-w/2 < c.world.MinX {
		c.targetX = c.world.MinX + w/2
	} else if c.targetX+w/2 > c.world.MaxX {
		c.targetX = c.world.MaxX - w/2
	}

	if c.targetY-h/2 < c.world.MinY {
		c.targetY = c.world.MinY + h/2
	} else if c.targetY+h/2 > c.world.MaxY {
		c.targetY = c.world.MaxY - h/2
	}

	c.hasMoved = c.targetX != c.lastX || c.targetY != c.lastY
	c.lastX, c.lastY = c.targetX, c.targetY

	c.Calibrate()
}

// Pan is Update for a single direction.
func (c *Camera) Pan(d Direction) {
	c.Update(d)
}

// Center aims the camera back at its home position, the center of
// the viewport.
func (c *Camera) Center() {
	c.targetX = c.cfg.Width / 2
	c.targetY = c.cfg.Height / 2
}

// CenterOn aims the camera at p and recalibrates.
func (c *Camera) CenterOn(p display.Point) {
	c.targetX, c.targetY = p.X, p.Y
	c.Calibrate()
}

// HasMoved returns true if the last Update changed the target.
func (c *Camera) HasMoved() bool {
	return c.hasMoved
}

// On returns true if the world is too big for the viewport.
func (c *Camera) On() bool {
	return c.on
}

func (c *Camera) Target() display.Point {
	return display.Point{X: c.targetX, Y: c.targetY}
}

// View returns the visible world rectangle. When the camera is off,
// the view is centered on the world.
func (c *Camera) View() display.Rect {
	w, h := c.cfg.Width, c.cfg.Height
	if !c.on {
		cx := (c.world.MinX + c.world.MaxX) / 2
		return display.Rect{X: cx - w/2, Y: c.world.MinY, W: w, H: h}
	}
	return display.Rect{X: c.x, Y: c.y, W: w, H: h}
}

// clamp limits v to [lo, hi]. If the range is empty, hi wins.
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	return v
}
