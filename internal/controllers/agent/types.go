package agent

// HookRequest is the conversation payload Circlo delivers to the webhook.
// No field is required; a missing message is answered best-effort.
type HookRequest struct {
	// Message is the text the user sent to the agent.
	Message string `json:"message"`
	// User identifies the sender, when the platform includes one.
	User *HookUser `json:"user,omitempty"`
}

// HookUser identifies the Circlo user behind a conversation message.
type HookUser struct {
	// ID is the platform identifier of the user.
	ID string `json:"id"`
	// Name is the user's display name.
	Name string `json:"name"`
}

// HookResponse is the agent's reply to one conversation message.
type HookResponse struct {
	// Response is the reply text shown to the user.
	Response string `json:"response"`
}

// PostRequest is the content of a post published through the Circlo proxy.
type PostRequest struct {
	// Title is the post headline.
	Title string `json:"title"`
	// Body is the post content.
	Body string `json:"body"`
}

// RegisterAgentRequest asks the service to register its webhook URL with
// Circlo on the caller's behalf.
type RegisterAgentRequest struct {
	// Endpoint is the public HTTPS URL Circlo should deliver webhooks to.
	Endpoint string `json:"endpoint"`
	// Username is the unique handle for the agent on Circlo.
	Username string `json:"username"`
	// Niche is the optional category for the agent; defaults to "General".
	Niche string `json:"niche,omitempty"`
}
