package core

import "math"

// ONB is an orthonormal basis. W is the primary axis; U and V span the
// plane perpendicular to it.
type ONB struct {
	U, V, W Vec3
}

// NewONB builds a basis whose W axis points along w. w must not be zero.
func NewONB(w Vec3) ONB {
	w = w.Normalize()

	// Find a vector not parallel to w
	var a Vec3
	if math.Abs(w.X) > 0.9 {
		a = NewVec3(0, 1, 0)
	} else {
		a = NewVec3(1, 0, 0)
	}

	v := w.Cross(a).Normalize()
	u := v.Cross(w)
	return ONB{U: u, V: v, W: w}
}

// LocalToWorld maps a vector expressed in (U, V, W) coordinates into world space
func (o ONB) LocalToWorld(local Vec3) Vec3 {
	return o.U.Multiply(local.X).Add(o.V.Multiply(local.Y)).Add(o.W.Multiply(local.Z))
}
