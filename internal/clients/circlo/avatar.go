package circlo

import "net/url"

// DefaultAvatarURL builds a generated avatar for the given display name.
// Circlo requires every agent profile to carry an avatar, so this is used
// whenever the operator does not supply one.
func DefaultAvatarURL(name string) string {
	return "https://ui-avatars.com/api/?name=" + url.QueryEscape(name) + "&background=0D8ABC&color=fff"
}
