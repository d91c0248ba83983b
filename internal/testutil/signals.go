package testutil

import (
	"math"
	"math/rand"
)

// DecayingFID generates an interleaved int32 stream of a single damped
// complex exponential: amplitude * exp(-i/decay) * exp(j*2*pi*freq*i), with
// freq in cycles per complex sample.
func DecayingFID(freq, decay, amplitude float64, points int) []int32 {
	out := make([]int32, 2*points)
	for i := range points {
		env := amplitude * math.Exp(-float64(i)/decay)
		phase := 2 * math.Pi * freq * float64(i)
		out[2*i] = int32(math.Round(env * math.Cos(phase)))
		out[2*i+1] = int32(math.Round(env * math.Sin(phase)))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Ramp returns the int32 sequence start, start+1, ..., start+length-1.
func Ramp(start int32, length int) []int32 {
	out := make([]int32, length)
	for i := range out {
		out[i] = start + int32(i)
	}
	return out
}
