// Package display converts loader and sensing results into plain float64
// series for an external plotting surface.
//
// Nothing here draws. The package only splits complex signals into their
// parts and computes the centred spectrum of a FID, leaving rendering to the
// caller.
package display
