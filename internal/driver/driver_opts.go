package driver

import "time"

type TurnDriverOpt func(*TurnDriver)

// WithMaxTurns stops the driver after n turns. Zero means no limit.
func WithMaxTurns(n int) TurnDriverOpt {
	return func(d *TurnDriver) {
		d.maxTurns = n
	}
}

// WithTurnDelay waits between turns. Used by unattended play.
func WithTurnDelay(delay time.Duration) TurnDriverOpt {
	return func(d *TurnDriver) {
		d.delay = delay
	}
}
