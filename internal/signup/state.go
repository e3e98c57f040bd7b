package signup

// Signup orchestration state machine.
//
// Idle ---> Validating ---> Submitting ---> Succeeded ----------------------> Idle
//   |           |                |
//   |           |                ---> FallingBack ---> FallbackSucceeded --> Idle
//   |           |                                  |
//   |           |                                  ---> FallbackFailed ----> Idle
//   |           ---> Idle (invalid email)
//   |
//   ---> Succeeded (honeypot filled, nothing sent)
//
type State int

const (
	Idle State = iota
	Validating
	Submitting
	Succeeded
	FallingBack
	FallbackSucceeded
	FallbackFailed
)

func (s State) String() string {
	return [...]string{
		"idle", "validating", "submitting", "succeeded",
		"fallingBack", "fallbackSucceeded", "fallbackFailed",
	}[s]
}

func (s State) IsTerminal() bool {
	switch s {
	case Succeeded, FallbackSucceeded, FallbackFailed:
		return true
	}
	return false
}
