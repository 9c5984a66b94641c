package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNewComment(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    NewComment
		wantErr error
	}{
		{name: "full", payload: `{"username":"lurker","body":"hi"}`, want: NewComment{Username: "lurker", Body: "hi"}},
		{name: "empty payload", payload: ``, want: NewComment{}},
		{name: "partial", payload: `{"body":"hi"}`, want: NewComment{Body: "hi"}},
		{name: "wrong type", payload: `{"username":5,"body":"hi"}`, wantErr: ErrInvalidPayload},
		{name: "malformed", payload: `{"username":`, wantErr: ErrInvalidPayload},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseNewComment(json.RawMessage(tc.payload))
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNewCommentPresence(t *testing.T) {
	assert.False(t, NewComment{}.HasUsername())
	assert.False(t, NewComment{}.HasBody())

	c := NewComment{Username: "butter_bridge", Body: "nice"}
	assert.True(t, c.HasUsername())
	assert.True(t, c.HasBody())
}

func TestCommentValidate(t *testing.T) {
	valid := &Comment{ArticleID: 1, Author: "lurker", Body: "hi"}
	assert.NoError(t, valid.Validate())

	for _, c := range []*Comment{
		{Author: "lurker", Body: "hi"},
		{ArticleID: 1, Body: "hi"},
		{ArticleID: 1, Author: "lurker"},
	} {
		assert.ErrorIs(t, c.Validate(), ErrInvalidComment)
	}
}
