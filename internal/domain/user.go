package domain

// User is a registered author of articles and comments. Only the public
// projection (username, name, avatar) is ever read by the API.
type User struct {
	Username  string `json:"username"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}
