package folio

// HitShape is the bounds of an interactive region in viewport coordinates,
// the same space as pointer positions. Wrap document-space shapes in
// Scrolled. A region without a shape is driven only by explicit
// EnterRegion/LeaveRegion calls.
type HitShape interface {
	Contains(x, y float64) bool
}

// HitRect is an axis-aligned rectangular hit area.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// HitCircle is a circular hit area (round buttons, social icons).
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// HitPolygon is a convex polygon hit area.
// Points must define a convex polygon in either winding order.
type HitPolygon struct {
	Points []Vec2
}

// Contains reports whether (x, y) lies inside a convex polygon using cross-product sign test.
func (p HitPolygon) Contains(x, y float64) bool {
	n := len(p.Points)
	if n < 3 {
		return false
	}

	var positive, negative bool
	for i := 0; i < n; i++ {
		x1 := p.Points[i].X
		y1 := p.Points[i].Y
		j := (i + 1) % n
		x2 := p.Points[j].X
		y2 := p.Points[j].Y

		cross := (x2-x1)*(y-y1) - (y2-y1)*(x-x1)
		if cross > 0 {
			positive = true
		} else if cross < 0 {
			negative = true
		}
		if positive && negative {
			return false
		}
	}
	return true
}

// Scrolled wraps a shape laid out in document coordinates so it can be
// tested against viewport (client) coordinates at the current scroll.
type Scrolled struct {
	Shape   HitShape
	Metrics *ScrollMetrics
}

// Contains converts (x, y) from viewport to document space and tests Shape.
func (s Scrolled) Contains(x, y float64) bool {
	if s.Shape == nil {
		return false
	}
	var sy float64
	if s.Metrics != nil {
		sy = s.Metrics.Y()
	}
	return s.Shape.Contains(x, y+sy)
}
