package signup

type OutcomeKind int

const (
	Created OutcomeKind = iota
	AlreadyExists
	ConfirmationSent
	Failed
)

func (k OutcomeKind) String() string {
	return [...]string{"created", "already_exists", "confirmation_sent", "failed"}[k]
}

// Outcome is the primary submitter's reading of the remote response envelope.
type Outcome struct {
	Kind             OutcomeKind
	ConfirmationSent bool
	Reason           string
}

func MakeCreated(confirmationSent bool) Outcome {
	return Outcome{Kind: Created, ConfirmationSent: confirmationSent}
}

func MakeAlreadyExists(confirmationSent bool) Outcome {
	return Outcome{Kind: AlreadyExists, ConfirmationSent: confirmationSent}
}

// MakeConfirmationSent covers accepted responses that say nothing about creation.
func MakeConfirmationSent(sent bool) Outcome {
	return Outcome{Kind: ConfirmationSent, ConfirmationSent: sent}
}

func MakeFailed(reason string) Outcome {
	return Outcome{Kind: Failed, Reason: reason}
}

func (o Outcome) Succeeded() bool {
	return o.Kind != Failed
}
