package bubblepop

// HitCircle is a circular hit area.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// HitArea returns the bubble's current hit circle: its drawn radius plus the
// configured tolerance, which widens the clickable area without changing
// what is drawn.
func (b *Bubble) HitArea() HitCircle {
	return HitCircle{
		CenterX: b.X,
		CenterY: b.Y,
		Radius:  b.radius*b.Scale + b.cfg.Size.HitTolerance,
	}
}

// Contains reports whether the point (px, py) hits the bubble.
func (b *Bubble) Contains(px, py float64) bool {
	return b.HitArea().Contains(px, py)
}
