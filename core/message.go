package core

// Inbound is one (user, text) event consumed by the dialog engine. The user
// id is the transport-level identifier and keys the conversation context.
type Inbound struct {
	UserID string `json:"user_id"`
	Text   string `json:"text"`
}

// Response is the outbound reply for a single turn. MediaRef is an optional
// reference to a media asset; a nil pointer means no media, which keeps
// absence explicit instead of inferring it from an empty string.
type Response struct {
	Text     string  `json:"text"`
	MediaRef *string `json:"media_ref,omitempty"`
}

// NewResponse creates a text-only response.
func NewResponse(text string) Response { return Response{Text: text} }

// WithMedia returns a copy of the response carrying the given media reference.
func (r Response) WithMedia(ref string) Response {
	r.MediaRef = &ref
	return r
}
