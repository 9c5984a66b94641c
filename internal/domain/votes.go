package domain

import (
	"bytes"
	"encoding/json"
	"math"
	"regexp"
	"strconv"
)

var signedInteger = regexp.MustCompile(`^-?\d+$`)

// VotePatch is the payload accepted when changing an article's votes.
// IncVotes stays raw so that an absent value can be told apart from null,
// zero or a string.
type VotePatch struct {
	IncVotes json.RawMessage `json:"inc_votes"`
}

// ParseVotePatch decodes a vote patch payload and interprets its inc_votes
// value with ParseVoteIncrement. An empty payload is treated as {}; a payload
// that is not a JSON object fails with ErrInvalidPayload.
func ParseVotePatch(payload json.RawMessage) (int, error) {
	var patch VotePatch
	if err := decodePayload(payload, &patch); err != nil {
		return 0, err
	}
	return ParseVoteIncrement(patch.IncVotes)
}

// ParseVoteIncrement interprets the raw inc_votes value of a vote patch.
//
// A missing value, null, false, an empty string or a numeric zero all count as
// "not provided" and fail with ErrVotesMissing; zero is therefore not accepted
// as a no-op increment. Any other value must be a signed 32-bit integer, given
// either as a JSON number with an integral value (1, 1.0 and 1e2 all qualify)
// or as a string of digits, or it fails with ErrVotesNotInteger.
func ParseVoteIncrement(raw json.RawMessage) (int, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return 0, ErrVotesMissing
	}

	switch raw[0] {
	case 'n', 'f':
		// null and false
		return 0, ErrVotesMissing
	case '"':
		var literal string
		if err := json.Unmarshal(raw, &literal); err != nil {
			return 0, ErrVotesNotInteger
		}
		if literal == "" {
			return 0, ErrVotesMissing
		}
		if !signedInteger.MatchString(literal) {
			return 0, ErrVotesNotInteger
		}
		delta, err := strconv.ParseInt(literal, 10, 32)
		if err != nil {
			return 0, ErrVotesNotInteger
		}
		return int(delta), nil
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		var n json.Number
		if err := json.Unmarshal(raw, &n); err != nil {
			return 0, ErrVotesNotInteger
		}
		f, err := n.Float64()
		if err != nil {
			return 0, ErrVotesNotInteger
		}
		if f == 0 {
			return 0, ErrVotesMissing
		}
		if f != math.Trunc(f) || f < math.MinInt32 || f > math.MaxInt32 {
			return 0, ErrVotesNotInteger
		}
		return int(f), nil
	default:
		return 0, ErrVotesNotInteger
	}
}

// decodePayload unmarshals a request payload into v. Blank payloads leave v
// untouched.
func decodePayload(payload json.RawMessage, v interface{}) error {
	payload = bytes.TrimSpace(payload)
	if len(payload) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, v); err != nil {
		return ErrInvalidPayload
	}
	return nil
}
