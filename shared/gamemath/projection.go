package gamemath

import "github.com/go-gl/mathgl/mgl64"

// ViewProjection builds the clip transform of a camera at position with the
// given rotation, looking down its local -Z.
func ViewProjection(position mgl64.Vec3, rotation mgl64.Quat, fovy, aspect, near, far float64) mgl64.Mat4 {
	view := rotation.Conjugate().Mat4().Mul4(mgl64.Translate3D(-position[0], -position[1], -position[2]))
	return mgl64.Perspective(fovy, aspect, near, far).Mul4(view)
}

// ProjectSegment maps the world segment a-b to pixel coordinates on a
// width x height target, clipping it against the near plane. ok is false when
// the whole segment is behind the camera.
func ProjectSegment(vp mgl64.Mat4, a, b mgl64.Vec3, width, height float64) (p0, p1 mgl64.Vec2, ok bool) {
	ca := vp.Mul4x1(a.Vec4(1))
	cb := vp.Mul4x1(b.Vec4(1))

	// Signed distance to the near plane in clip space (z = -w)
	da := ca[2] + ca[3]
	db := cb[2] + cb[3]
	if da < 0 && db < 0 {
		return p0, p1, false
	}
	if da < 0 {
		ca = ca.Add(cb.Sub(ca).Mul(da / (da - db)))
	} else if db < 0 {
		cb = cb.Add(ca.Sub(cb).Mul(db / (db - da)))
	}
	if ca[3] <= mgl64.Epsilon || cb[3] <= mgl64.Epsilon {
		return p0, p1, false
	}

	return toScreen(ca, width, height), toScreen(cb, width, height), true
}

func toScreen(c mgl64.Vec4, width, height float64) mgl64.Vec2 {
	x := c[0] / c[3]
	y := c[1] / c[3]
	return mgl64.Vec2{(x + 1) / 2 * width, (1 - y) / 2 * height}
}

// BoxEdges lists corner index pairs of the twelve edges of a box.
var BoxEdges = [12][2]int{
	{0, 1}, {1, 3}, {3, 2}, {2, 0},
	{4, 5}, {5, 7}, {7, 6}, {6, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// BoxCorners returns the corners of a box of full extents size centred at
// center, rotated by rotation. Corner i has bit 0 for +x, bit 1 for +y and
// bit 2 for +z.
func BoxCorners(center, size mgl64.Vec3, rotation mgl64.Quat) [8]mgl64.Vec3 {
	var corners [8]mgl64.Vec3
	half := size.Mul(0.5)
	for i := range corners {
		local := mgl64.Vec3{-half[0], -half[1], -half[2]}
		if i&1 != 0 {
			local[0] = half[0]
		}
		if i&2 != 0 {
			local[1] = half[1]
		}
		if i&4 != 0 {
			local[2] = half[2]
		}
		corners[i] = center.Add(rotation.Rotate(local))
	}
	return corners
}

// OverlayToScreen maps overlay coordinates (x in [-aspect, aspect], y in
// [-1, 1] pointing up) to pixels.
func OverlayToScreen(x, y, aspect, width, height float64) mgl64.Vec2 {
	return mgl64.Vec2{(x/aspect + 1) / 2 * width, (1 - y) / 2 * height}
}
