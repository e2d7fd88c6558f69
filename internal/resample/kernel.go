package resample

import (
	"math"

	"golang.org/x/image/draw"
)

// Window kernels not shipped by x/image/draw.
var (
	hanningKernel = &draw.Kernel{Support: 1, At: hanning}
	hammingKernel = &draw.Kernel{Support: 1, At: hamming}
	welshKernel   = &draw.Kernel{Support: 1, At: welsh}

	lanczos4Kernel = &draw.Kernel{Support: 4, At: lanczos(4)}
)

func hanning(t float64) float64 {
	return 0.5 + 0.5*math.Cos(math.Pi*t)
}

func hamming(t float64) float64 {
	return 0.54 + 0.46*math.Cos(math.Pi*t)
}

func welsh(t float64) float64 {
	return 1 - t*t
}

// sinc is the normalized sinc function.
func sinc(t float64) float64 {
	if t == 0 {
		return 1
	}
	t *= math.Pi
	return math.Sin(t) / t
}

// lanczos returns the Lanczos kernel of order n. Callers keep |t| < n.
func lanczos(n float64) func(float64) float64 {
	return func(t float64) float64 {
		return sinc(t) * sinc(t/n)
	}
}
