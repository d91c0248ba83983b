// Package fid reads Bruker-style NMR acquisition data and turns the raw
// interleaved integer stream into a complex free-induction decay.
//
// An experiment directory holds the raw acquisition in a headerless "fid"
// file of 32-bit integers (real and imaginary samples alternating). The
// vendor-processed spectrum lives next to it under pdata/<procno>/1r, one
// int32 intensity per point. Both files are read through explicit paths; the
// package never changes the working directory.
//
// # Usage
//
//	raw, err := fid.LoadRaw("/data/nmr/10")
//	sig, err := fid.ToComplex(raw, 138) // instrument-specific lead-in
//	spec, err := fid.LoadProcessedSpectrum("/data/nmr/10", 1)
//
// Or, for the common case of both files at once:
//
//	ds, err := fid.Open("/data/nmr", 10, 1, fid.WithShift(138))
//
// The shift is a calibration value for the digital filter lead-in and has no
// default other than zero; callers are expected to supply it.
package fid
