package runner

// RunObserver receives outcomes as each record finishes validating.
type RunObserver interface {
	OnOutcome(Outcome)
}

// ObserverFunc adapts a function to RunObserver.
type ObserverFunc func(Outcome)

// OnOutcome calls f.
func (f ObserverFunc) OnOutcome(outcome Outcome) {
	f(outcome)
}

// notify delivers an outcome to the observer when one is set.
func notify(observer RunObserver, outcome Outcome) {
	if observer != nil {
		observer.OnOutcome(outcome)
	}
}
