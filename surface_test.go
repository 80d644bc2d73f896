package bubblepop

import "fmt"

// drawOp is one recorded Surface call.
type drawOp struct {
	name  string
	args  []float64
	text  string
	paint Paint
	color Color
	alpha float64 // global alpha in effect
	m     affine  // transform in effect
}

// recordingSurface is a Surface that records calls instead of drawing. Its
// transform and alpha stack mirror a canvas context so tests can inspect
// the state each primitive was drawn with.
type recordingSurface struct {
	ops   []drawOp
	m     affine
	alpha float64
	stack []struct {
		m     affine
		alpha float64
	}
	// advance is the width MeasureText reports per rune, per unit of size.
	advance float64
}

func newRecordingSurface() *recordingSurface {
	return &recordingSurface{m: identityAffine, alpha: 1, advance: 0.5}
}

func (r *recordingSurface) record(op drawOp) {
	op.alpha = r.alpha
	op.m = r.m
	r.ops = append(r.ops, op)
}

func (r *recordingSurface) Save() {
	r.stack = append(r.stack, struct {
		m     affine
		alpha float64
	}{r.m, r.alpha})
	r.record(drawOp{name: "save"})
}

func (r *recordingSurface) Restore() {
	if n := len(r.stack); n > 0 {
		r.m, r.alpha = r.stack[n-1].m, r.stack[n-1].alpha
		r.stack = r.stack[:n-1]
	}
	r.record(drawOp{name: "restore"})
}

func (r *recordingSurface) Translate(x, y float64) {
	r.m = multiplyAffine(r.m, translation(x, y))
	r.record(drawOp{name: "translate", args: []float64{x, y}})
}

func (r *recordingSurface) Rotate(radians float64) {
	r.m = multiplyAffine(r.m, rotation(radians))
	r.record(drawOp{name: "rotate", args: []float64{radians}})
}

func (r *recordingSurface) Scale(sx, sy float64) {
	r.m = multiplyAffine(r.m, scaling(sx, sy))
	r.record(drawOp{name: "scale", args: []float64{sx, sy}})
}

func (r *recordingSurface) SetAlpha(a float64) {
	r.alpha = a
	r.record(drawOp{name: "alpha", args: []float64{a}})
}

func (r *recordingSurface) Clear(x, y, w, h float64) {
	r.record(drawOp{name: "clear", args: []float64{x, y, w, h}})
}

func (r *recordingSurface) FillRect(x, y, w, h float64, p Paint) {
	r.record(drawOp{name: "fillRect", args: []float64{x, y, w, h}, paint: p})
}

func (r *recordingSurface) FillCircle(cx, cy, rad float64, p Paint) {
	r.record(drawOp{name: "fillCircle", args: []float64{cx, cy, rad}, paint: p})
}

func (r *recordingSurface) StrokeCircle(cx, cy, rad, width float64, c Color) {
	r.record(drawOp{name: "strokeCircle", args: []float64{cx, cy, rad, width}, color: c})
}

func (r *recordingSurface) FillText(s string, x, y float64, style TextStyle) {
	r.record(drawOp{name: "fillText", args: []float64{x, y, style.Size}, text: s, paint: style.Fill})
}

func (r *recordingSurface) MeasureText(s string, size float64) float64 {
	return float64(len([]rune(s))) * size * r.advance
}

// names returns the recorded call names, in order.
func (r *recordingSurface) names() []string {
	out := make([]string, len(r.ops))
	for i, op := range r.ops {
		out[i] = op.name
	}
	return out
}

// find returns every recorded op with the given name.
func (r *recordingSurface) find(name string) []drawOp {
	var out []drawOp
	for _, op := range r.ops {
		if op.name == name {
			out = append(out, op)
		}
	}
	return out
}

func (r *recordingSurface) reset() {
	r.ops = r.ops[:0]
}

func (op drawOp) String() string {
	return fmt.Sprintf("%s%v", op.name, op.args)
}
