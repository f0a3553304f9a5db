package special

import (
	"math"

	"github.com/san-kum/hwf/internal/quantum"
)

// LogGamma returns ln Γ(x) for x > 0.
func LogGamma(x float64) (float64, error) {
	if !(x > 0) || math.IsInf(x, 1) {
		return 0, &quantum.DomainError{Kernel: "LogGamma", Arg: "x", Value: x}
	}
	// Γ > 0 on x > 0, so the sign is dropped.
	v, _ := math.Lgamma(x)
	return v, nil
}

// LogFactorial returns ln k! = ln Γ(k+1).
func LogFactorial(k int) (float64, error) {
	if k < 0 {
		return 0, &quantum.DomainError{Kernel: "LogFactorial", Arg: "k", Value: float64(k)}
	}
	return LogGamma(float64(k) + 1)
}

// LogDoubleFactorialOdd returns ln (2m-1)!! = ln (2m)! − m ln 2 − ln m!.
// (−1)!! is 1 by convention.
func LogDoubleFactorialOdd(m int) (float64, error) {
	if m < 0 {
		return 0, &quantum.DomainError{Kernel: "LogDoubleFactorialOdd", Arg: "m", Value: float64(m)}
	}
	if m == 0 {
		return 0, nil
	}
	num, err := LogFactorial(2 * m)
	if err != nil {
		return 0, err
	}
	den, err := LogFactorial(m)
	if err != nil {
		return 0, err
	}
	return num - float64(m)*math.Ln2 - den, nil
}
