package models

import "time"

// AnalyzedComment is one row of a topic artifact, derived one-to-one from
// a collected Comment. Date is truncated to day granularity so downstream
// daily aggregation has a single key per calendar day.
type AnalyzedComment struct {
	PostID         string
	Date           time.Time
	Text           string
	CleanedText    string
	SentimentScore float64
	Sentiment      string
	CommentScore   int
}
