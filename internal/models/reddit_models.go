package models

import (
	"encoding/json"
	"time"
)

// Post is a submission matched by a topic search. Posts scope comment
// collection and are not persisted themselves.
type Post struct {
	ID        string
	Title     string
	Score     int
	URL       string
	Stickied  bool
	CreatedAt time.Time
}

// Comment is a single reply collected from a submission's discussion tree.
// Retained comments always have a non-empty body and a recorded score.
type Comment struct {
	PostID    string
	CommentID string
	Text      string
	Score     int
	CreatedAt time.Time
}

// Reddit API thing kinds used by the collector.
const (
	KindComment = "t1"
	KindPost    = "t3"
	KindMore    = "more"
)

// RedditListing is the envelope the Reddit API wraps every result set in.
type RedditListing struct {
	Kind string            `json:"kind"`
	Data RedditListingData `json:"data"`
}

type RedditListingData struct {
	After    string        `json:"after"`
	Children []RedditThing `json:"children"`
}

type RedditThing struct {
	Kind string          `json:"kind"`
	Data RedditThingData `json:"data"`
}

type RedditThingData struct {
	ID         string        `json:"id"`
	Title      string        `json:"title"`
	Author     string        `json:"author"`
	Body       string        `json:"body"`
	Selftext   string        `json:"selftext"`
	Score      int           `json:"score"`
	URL        string        `json:"url"`
	Stickied   bool          `json:"stickied"`
	CreatedUTC float64       `json:"created_utc"`
	Replies    RedditReplies `json:"replies"`
}

// RedditReplies handles the API quirk where a comment's replies field is a
// nested listing object when replies exist and the empty string otherwise.
type RedditReplies struct {
	Listing *RedditListing
}

func (r *RedditReplies) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || data[0] != '{' {
		return nil
	}
	var listing RedditListing
	if err := json.Unmarshal(data, &listing); err != nil {
		return err
	}
	r.Listing = &listing
	return nil
}

// CreatedTime converts the API's epoch-seconds timestamp to UTC time.
func (d RedditThingData) CreatedTime() time.Time {
	return time.Unix(int64(d.CreatedUTC), 0).UTC()
}
