package network

type JoinPayload struct {
	AppSlug  string `json:"app_slug"`
	Email    string `json:"email"`
	Source   string `json:"source"`
	Consent  bool   `json:"consent"`
	Company  string `json:"company"`
	FromName string `json:"from_name,omitempty"`
}

type NotifyPayload struct {
	AppSlug  string `json:"app_slug"`
	Source   string `json:"source"`
	Email    string `json:"email"`
	FromName string `json:"from_name"`
	Intent   string `json:"intent"`
	Subject  string `json:"subject"`
	Message  string `json:"message"`
}
