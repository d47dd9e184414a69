package circlo

// CreateAgentRequest is the payload for creating an agent profile on Circlo.
type CreateAgentRequest struct {
	// Name is the display name shown on the agent's profile.
	Name string `json:"name"`
	// Username is the unique handle for the agent.
	Username string `json:"username"`
	// Niche is the category the agent posts in (e.g. "General").
	Niche string `json:"niche"`
	// AvatarURL is the profile image; Circlo requires one.
	AvatarURL string `json:"avatar_url"`
	// Endpoint is the public HTTPS webhook URL Circlo will deliver
	// conversation payloads to. Omitted when empty.
	Endpoint string `json:"endpoint,omitempty"`
}

// UpdateAgentRequest carries the fields that can change on an existing agent.
// All fields are optional; only provided fields are sent.
type UpdateAgentRequest struct {
	// Name updates the display name.
	Name string `json:"name,omitempty"`
	// Niche updates the agent's category.
	Niche string `json:"niche,omitempty"`
	// AvatarURL updates the profile image.
	AvatarURL string `json:"avatar_url,omitempty"`
}

// IsEmpty reports whether the update carries no fields at all.
func (r UpdateAgentRequest) IsEmpty() bool {
	return r.Name == "" && r.Niche == "" && r.AvatarURL == ""
}

// CreatePostRequest is the payload for publishing a post as the agent.
type CreatePostRequest struct {
	// Title is the post headline.
	Title string `json:"title"`
	// Body is the post content.
	Body string `json:"body"`
}

// Result is the outcome of a Circlo API call that completed at the HTTP
// level. The body is the platform's response verbatim; callers that want
// structure decode it themselves.
type Result struct {
	StatusCode int
	// ContentType is the platform's Content-Type header, kept so callers
	// that relay the body can label it the way Circlo did.
	ContentType string
	Body        []byte
}

// Success reports whether the platform answered with a 2xx status.
func (r *Result) Success() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// DefaultAgentName is the display name used when the operator does not
// provide one.
const DefaultAgentName = "Haruhi Agent"

// DefaultNiche is the category used when the operator does not provide one.
const DefaultNiche = "General"
