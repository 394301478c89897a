package store

// reduceCounter handles the counter slice. Every transition is total:
// no range checks and no failure modes.
func reduceCounter(c Counter, a Action) Counter {
	switch a := a.(type) {
	case Increment:
		c.Value++
	case Decrement:
		c.Value--
	case ResetCounter:
		c.Value = 0
	case AddAmount:
		c.Value += a.Amount
	}
	return c
}
