// Package analysis provides frequency analysis of chain observable series.
package analysis

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// PowerSpectrum computes |FFT|^2 of the series up to the Nyquist bin. The
// input is zero-padded to the next power of two.
func PowerSpectrum(data []float64) []float64 {
	if len(data) == 0 {
		return nil
	}

	n := 1
	for n < len(data) {
		n *= 2
	}
	padded := make([]float64, n)
	copy(padded, data)

	spectrum := fft.FFTReal(padded)
	power := make([]float64, n/2+1)
	for i := range power {
		power[i] = cmplx.Abs(spectrum[i]) * cmplx.Abs(spectrum[i])
	}
	return power
}

// DominantFrequency returns the frequency in cycles per time unit of the
// strongest non-DC bin, given the sampling step between points.
func DominantFrequency(data []float64, step float64) float64 {
	power := PowerSpectrum(data)
	if len(power) < 2 || step <= 0 {
		return 0
	}

	maxIdx := 1
	for i := 2; i < len(power); i++ {
		if power[i] > power[maxIdx] {
			maxIdx = i
		}
	}

	n := 1
	for n < len(data) {
		n *= 2
	}
	return float64(maxIdx) / (float64(n) * step)
}

// Mean returns the average of the series.
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range data {
		sum += v
	}
	return sum / float64(len(data))
}

// Detrend subtracts the mean, removing the DC bin from a later spectrum.
func Detrend(data []float64) []float64 {
	m := Mean(data)
	out := make([]float64, len(data))
	for i, v := range data {
		out[i] = v - m
	}
	return out
}
