package domain

import "strings"

// SortColumn is one of the closed set of columns the article listing can be
// ordered by. Values outside the set cannot be constructed from request input.
type SortColumn string

// Sortable article columns.
const (
	SortByArticleID     SortColumn = "article_id"
	SortByTitle         SortColumn = "title"
	SortByTopic         SortColumn = "topic"
	SortByAuthor        SortColumn = "author"
	SortByCreatedAt     SortColumn = "created_at"
	SortByVotes         SortColumn = "votes"
	SortByArticleImgURL SortColumn = "article_img_url"
	SortByCommentCount  SortColumn = "comment_count"
)

var sortColumns = map[string]SortColumn{
	string(SortByArticleID):     SortByArticleID,
	string(SortByTitle):         SortByTitle,
	string(SortByTopic):         SortByTopic,
	string(SortByAuthor):        SortByAuthor,
	string(SortByCreatedAt):     SortByCreatedAt,
	string(SortByVotes):         SortByVotes,
	string(SortByArticleImgURL): SortByArticleImgURL,
	string(SortByCommentCount):  SortByCommentCount,
}

// SortOrder is the direction of the article listing.
type SortOrder string

// Sort directions.
const (
	Ascending  SortOrder = "asc"
	Descending SortOrder = "desc"
)

// ArticleQuery describes a validated article listing request.
type ArticleQuery struct {
	SortBy SortColumn
	Order  SortOrder
	// Topic restricts results to a single topic slug when non-empty.
	Topic string
}

// DefaultArticleQuery returns the listing used when no parameters are given:
// newest first, all topics.
func DefaultArticleQuery() ArticleQuery {
	return ArticleQuery{SortBy: SortByCreatedAt, Order: Descending}
}

// ParseArticleQuery validates raw sort_by, order and topic values. sort_by is
// matched exactly against the allow-list; order is case-insensitive. Empty
// values fall back to the defaults. Anything else fails with ErrInvalidQuery.
func ParseArticleQuery(sortBy, order, topic string) (ArticleQuery, error) {
	q := DefaultArticleQuery()
	q.Topic = topic

	if sortBy != "" {
		col, ok := sortColumns[sortBy]
		if !ok {
			return ArticleQuery{}, ErrInvalidQuery
		}
		q.SortBy = col
	}

	if order != "" {
		switch SortOrder(strings.ToLower(order)) {
		case Ascending:
			q.Order = Ascending
		case Descending:
			q.Order = Descending
		default:
			return ArticleQuery{}, ErrInvalidQuery
		}
	}

	return q, nil
}

// Filtered reports whether the query restricts results to a topic.
func (q ArticleQuery) Filtered() bool {
	return q.Topic != ""
}
