package analysis

import (
	"math"
	"testing"
)

func TestPowerSpectrumSinusoid(t *testing.T) {
	// 8 cycles over 256 samples: the peak must land in bin 8.
	n := 256
	data := make([]float64, n)
	for i := range data {
		data[i] = math.Sin(2 * math.Pi * 8 * float64(i) / float64(n))
	}

	power := PowerSpectrum(data)
	if len(power) != n/2+1 {
		t.Fatalf("spectrum length = %d, want %d", len(power), n/2+1)
	}

	maxIdx := 0
	for i := range power {
		if power[i] > power[maxIdx] {
			maxIdx = i
		}
	}
	if maxIdx != 8 {
		t.Errorf("peak at bin %d, want 8", maxIdx)
	}
}

func TestDominantFrequency(t *testing.T) {
	// 2 Hz sinusoid sampled at 0.01s over 512 samples
	step := 0.01
	data := make([]float64, 512)
	for i := range data {
		data[i] = math.Sin(2 * math.Pi * 2.0 * float64(i) * step)
	}

	got := DominantFrequency(data, step)
	if math.Abs(got-2.0) > 0.25 {
		t.Errorf("dominant frequency = %v, want ~2.0", got)
	}
}

func TestPowerSpectrumEmpty(t *testing.T) {
	if got := PowerSpectrum(nil); got != nil {
		t.Errorf("expected nil for empty input, got %v", got)
	}
}

func TestDetrend(t *testing.T) {
	data := []float64{3, 5, 7}
	out := Detrend(data)
	if math.Abs(Mean(out)) > 1e-12 {
		t.Errorf("detrended mean = %v, want 0", Mean(out))
	}
	if data[0] != 3 {
		t.Error("Detrend mutated its input")
	}
}
