package runtime

// DefaultMinFPS is the tick-rate floor used when a loop is configured without one.
const DefaultMinFPS = 20

// TickRate derives the physical tick rate from the widgets' declared rates.
// The result is the least common multiple of every nonzero rate, scaled up by
// the smallest integer factor that reaches floor, so each declared rate divides
// it evenly.
func TickRate(fps []int, floor int) int {
	if floor <= 0 {
		floor = DefaultMinFPS
	}
	rate := 1
	for _, f := range fps {
		if f > 0 {
			rate = lcm(rate, f)
		}
	}
	if rate >= floor {
		return rate
	}
	return rate * ((floor + rate - 1) / rate)
}

// tickDivisor is how many ticks pass between updates of a widget declaring fps.
func tickDivisor(rate, fps int) int {
	if fps <= 0 {
		return 1
	}
	return max(rate/fps, 1)
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func lcm(a, b int) int {
	return a / gcd(a, b) * b
}
