package domain

// Topic is a subject area that articles are filed under.
type Topic struct {
	Slug        string `json:"slug"`
	Description string `json:"description"`
}
