package domain

import "errors"

// Kind classifies a Failure. The HTTP layer maps each kind onto a status code.
type Kind int

const (
	// KindInvalid marks malformed input: bad identifiers, missing fields,
	// values outside an allow-list.
	KindInvalid Kind = iota + 1

	// KindNotFound marks a well-formed reference to an entity that does not exist.
	KindNotFound
)

// String returns a lower-case name for the kind, used in logs.
func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// Failure is a rejection with a message that is safe to show to clients.
// Failures are terminal for a request and are forwarded unchanged by the
// service and handler layers.
type Failure struct {
	Kind Kind
	Msg  string
}

// Error implements the error interface.
func (f *Failure) Error() string {
	return f.Msg
}

// NewFailure creates a Failure of the given kind.
func NewFailure(kind Kind, msg string) *Failure {
	return &Failure{Kind: kind, Msg: msg}
}

// AsFailure reports whether err is, or wraps, a *Failure and returns it.
func AsFailure(err error) (*Failure, bool) {
	var f *Failure
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}

// Failures produced by request validation and existence checks.
var (
	ErrInvalidArticleID = NewFailure(KindInvalid, "Bad Request: article_id must be a number")
	ErrInvalidCommentID = NewFailure(KindInvalid, "Bad Request: comment_id must be an integer")
	ErrInvalidQuery     = NewFailure(KindInvalid, "Invalid query")

	ErrUsernameMissing = NewFailure(KindInvalid, "Username not provided")
	ErrUsernameUnknown = NewFailure(KindInvalid, "Bad Request: Username does not exist")
	ErrBodyMissing     = NewFailure(KindInvalid, "No body provided")
	ErrVotesMissing    = NewFailure(KindInvalid, "Votes not provided")
	ErrVotesNotInteger = NewFailure(KindInvalid, "Votes must be an integer")
	ErrInvalidPayload  = NewFailure(KindInvalid, "Invalid request body")

	ErrArticleNotFound = NewFailure(KindNotFound, "Article does not exist")
	ErrCommentNotFound = NewFailure(KindNotFound, "Comment does not exist")
	ErrUserNotFound    = NewFailure(KindNotFound, "Username does not exist")
	ErrTopicHasNoRows  = NewFailure(KindNotFound, "No articles found with this topic")
	ErrNoTopics        = NewFailure(KindNotFound, "Data not found")
)
