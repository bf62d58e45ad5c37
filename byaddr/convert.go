package byaddr

// FromValue boxes y in fresh storage and wraps the resulting pointer. Every
// call allocates, so wrappers from separate calls never compare equal even
// when the contents do.
func FromValue[Y any](y Y) Ref[*Y] {
	return Of(&y)
}

// Make converts y with build and wraps the result, for pointer-like targets
// other than a plain pointer to Y:
//
//	r := byaddr.Make(newRing, 8) // Ref[*ring] from func newRing(int) *ring
//
// Make panics, like New, when build yields a value that is not pointer-like.
func Make[P, Y any](build func(Y) P, y Y) Ref[P] {
	return New(build(y))
}
