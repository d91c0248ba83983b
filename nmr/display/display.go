package display

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// ErrEmptySignal is returned when a spectrum is requested for no samples.
var ErrEmptySignal = errors.New("display: signal is empty")

// Real returns the real parts of sig.
func Real(sig []complex128) []float64 {
	out := make([]float64, len(sig))
	for i, v := range sig {
		out[i] = real(v)
	}
	return out
}

// Imag returns the imaginary parts of sig.
func Imag(sig []complex128) []float64 {
	out := make([]float64, len(sig))
	for i, v := range sig {
		out[i] = imag(v)
	}
	return out
}

// Float64s widens integer samples such as a processed spectrum.
func Float64s(x []int32) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = float64(v)
	}
	return out
}

// FFTShift returns a copy of x rotated so the zero-frequency bin is in the
// centre: index len(x)/2 for even lengths, (len(x)-1)/2 for odd ones.
func FFTShift(x []complex128) []complex128 {
	n := len(x)
	out := make([]complex128, n)
	half := (n + 1) / 2
	copy(out, x[half:])
	copy(out[n-half:], x[:half])
	return out
}

// Spectrum returns the centred discrete Fourier transform of sig. The signal
// is zero-filled to the next power of two before the transform, so the
// result may be longer than sig.
func Spectrum(sig []complex128) ([]complex128, error) {
	if len(sig) == 0 {
		return nil, ErrEmptySignal
	}

	fftSize := nextPowerOf2(len(sig))

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("display: failed to create FFT plan: %w", err)
	}

	padded := make([]complex128, fftSize)
	copy(padded, sig)

	freq := make([]complex128, fftSize)
	if err := plan.Forward(freq, padded); err != nil {
		return nil, fmt.Errorf("display: forward FFT failed: %w", err)
	}

	return FFTShift(freq), nil
}

// MagnitudeSpectrum returns |Spectrum(sig)|.
func MagnitudeSpectrum(sig []complex128) ([]float64, error) {
	spec, err := Spectrum(sig)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(spec))
	vecmath.Magnitude(out, Real(spec), Imag(spec))
	return out, nil
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p *= 2
	}

	return p
}
