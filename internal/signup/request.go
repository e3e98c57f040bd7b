package signup

const FromNameKey = "from_name"

// Request is built from form state at submission time and dropped once the attempt resolves.
type Request struct {
	Email    string
	Honeypot string
	Metadata map[string]string
}

func MakeRequest(email, honeypot string, metadata map[string]string) Request {
	if metadata == nil {
		metadata = make(map[string]string)
	}
	return Request{Email: email, Honeypot: honeypot, Metadata: metadata}
}

func (r Request) IsBot() bool {
	return r.Honeypot != ""
}

func (r Request) FromName() string {
	return r.Metadata[FromNameKey]
}
