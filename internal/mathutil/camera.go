package mathutil

// BodyCamera looks at a Y-up body from the front, turned slightly so the
// silhouette shows depth: Rx(8°) @ Ry(-20°).
var BodyCamera = Mat3Mul(RotX(Deg2Rad(8)), RotY(Deg2Rad(-20)))

// FrontCamera is the straight-on view used for measurement previews.
var FrontCamera = Mat3Identity()
