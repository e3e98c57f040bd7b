package signup

type Channel int

const (
	ChannelNone Channel = iota
	ChannelService
	ChannelMailto
)

func (c Channel) String() string {
	return [...]string{"none", "service", "mailto"}[c]
}

// FallbackResult reports which secondary channel carried the signup, if any.
// A mailto channel never counts as succeeded: it is only prepared for the user.
type FallbackResult struct {
	Succeeded bool
	Channel   Channel
	MailtoURI string
}
