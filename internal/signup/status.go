package signup

// Status is the single user-visible message slot; every attempt overwrites it.
type Status struct {
	Message string
	OK      bool
}

func MakeSuccessStatus(msg string) Status {
	return Status{Message: msg, OK: true}
}

func MakeFailureStatus(msg string) Status {
	return Status{Message: msg, OK: false}
}
