package transit

import "fmt"

// arrivalStatus classifies a live arrival. The minutes rules come before the
// delay rules: a bus two minutes out reads "Due" even when it is running
// badly late.
func arrivalStatus(minutesUntil, delaySeconds int) string {
	switch {
	case minutesUntil <= 1:
		return "Arriving"
	case minutesUntil <= 2:
		return "Due"
	case delaySeconds > 300:
		return "Delayed"
	case delaySeconds < -60:
		return "Early"
	default:
		return fmt.Sprintf("%d min", minutesUntil)
	}
}

// departureStatus classifies a scheduled departure. Static data carries no
// delay concept, so only the minutes rules apply.
func departureStatus(minutesUntil int) string {
	switch {
	case minutesUntil <= 1:
		return "Departing"
	case minutesUntil <= 2:
		return "Due"
	default:
		return fmt.Sprintf("%d min", minutesUntil)
	}
}
