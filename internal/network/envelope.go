package network

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Body is the JSON shape shared by every waitlist endpoint.
type Body struct {
	OK        bool     `json:"ok"`
	Created   *bool    `json:"created,omitempty"`
	EmailSent *bool    `json:"email_sent,omitempty"`
	Error     string   `json:"error,omitempty"`
	Message   string   `json:"message,omitempty"`
	Count     *float64 `json:"count,omitempty"`
}

// Envelope is a response resolved once at the network boundary.
type Envelope struct {
	StatusCode   int
	ContentType  string
	Raw          string
	Parsed       bool
	Body         Body
	TransportErr error
	ParseErr     error
}

// reasonSource yields a human readable detail or "" when it has nothing to offer.
type reasonSource func(e Envelope) string

// Tried in order, first non-empty wins.
var reasonPrecedence = []reasonSource{
	func(e Envelope) string { return e.Body.Error },
	func(e Envelope) string { return e.Body.Message },
	func(e Envelope) string {
		if e.Parsed {
			return ""
		}
		return e.Raw
	},
	func(e Envelope) string {
		if e.StatusCode == 0 {
			return "request could not reach the server"
		}
		return fmt.Sprintf("request failed with status %d", e.StatusCode)
	},
}

func MakeTransportFailure(err error) Envelope {
	return Envelope{TransportErr: err}
}

// ResolveEnvelope reads a response permissively: JSON when the content type says so, raw text otherwise.
func ResolveEnvelope(statusCode int, contentType string, raw []byte) Envelope {
	e := Envelope{StatusCode: statusCode, ContentType: contentType, Raw: string(raw)}
	if !strings.Contains(strings.ToLower(contentType), "json") {
		return e
	}
	if err := json.Unmarshal(raw, &e.Body); err != nil {
		e.Body = Body{}
		e.ParseErr = err
		return e
	}
	e.Parsed = true
	return e
}

func (e Envelope) TransportOK() bool {
	return e.TransportErr == nil && e.StatusCode >= 200 && e.StatusCode < 300
}

// Accepted requires both transport success and an application level ok flag.
func (e Envelope) Accepted() bool {
	return e.TransportOK() && e.Parsed && e.Body.OK
}

func (e Envelope) Reason() string {
	for _, source := range reasonPrecedence {
		if r := Excerpt(source(e), MaxReasonLength); r != "" {
			return r
		}
	}
	return ""
}

// Err classifies a non-accepted envelope into the error taxonomy; nil when accepted.
func (e Envelope) Err() error {
	switch {
	case e.Accepted():
		return nil
	case e.TransportErr != nil:
		return &TransportError{Cause: e.TransportErr}
	case !e.TransportOK():
		return &TransportError{StatusCode: e.StatusCode}
	case !e.Parsed:
		return &ParseError{Raw: e.Raw, Cause: e.ParseErr}
	default:
		return &ApplicationError{Reason: e.Reason()}
	}
}

func (e Envelope) WasCreated() bool {
	return e.Body.Created != nil && *e.Body.Created
}

func (e Envelope) ReportsCreation() bool {
	return e.Body.Created != nil
}

func (e Envelope) EmailSent() bool {
	return e.Body.EmailSent != nil && *e.Body.EmailSent
}
