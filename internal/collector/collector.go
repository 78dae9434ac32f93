// Package collector retrieves topic-matched submissions and flattens
// their comment trees into individual comment records.
package collector

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mfdorneles/trendmood/internal/models"
)

// CommentExpansionDepth caps "load more comments" resolution. Zero means
// only comments already present in the tree response are listed;
// unresolved stubs are dropped without further network calls.
const CommentExpansionDepth = 0

// RedditAPI is the slice of the Reddit client the collector needs.
type RedditAPI interface {
	SearchPosts(ctx context.Context, subreddits, topic string, limit int) ([]models.Post, error)
	FetchCommentTree(ctx context.Context, postID string) ([]models.RedditListing, error)
}

type Collector struct {
	api        RedditAPI
	subreddits string
	postLimit  int
}

func New(api RedditAPI, subreddits []string, postLimit int) *Collector {
	return &Collector{
		api:        api,
		subreddits: strings.Join(subreddits, "+"),
		postLimit:  postLimit,
	}
}

// Collect searches the configured subreddits for the topic, skips stickied
// submissions, and flattens every remaining submission's comment tree.
// A topic with no comments returns an empty slice and no error.
func (c *Collector) Collect(ctx context.Context, topic string) ([]models.Comment, error) {
	slog.Info("[Collector] Searching submissions",
		slog.String("topic", topic),
		slog.String("subreddits", c.subreddits),
		slog.Int("limit", c.postLimit))

	posts, err := c.api.SearchPosts(ctx, c.subreddits, topic, c.postLimit)
	if err != nil {
		return nil, fmt.Errorf("[Collector] search failed for %q: %w", topic, err)
	}

	var comments []models.Comment
	for _, post := range posts {
		if post.Stickied {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		listings, err := c.api.FetchCommentTree(ctx, post.ID)
		if err != nil {
			return nil, fmt.Errorf("[Collector] comment fetch failed for post %s: %w", post.ID, err)
		}
		// listings[0] is the submission, listings[1] the comment forest.
		if len(listings) < 2 {
			continue
		}
		comments = flattenComments(post.ID, listings[1].Data.Children, comments)
	}

	slog.Info("[Collector] Collection finished",
		slog.String("topic", topic),
		slog.Int("comments", len(comments)))
	return comments, nil
}

func flattenComments(postID string, children []models.RedditThing, out []models.Comment) []models.Comment {
	for _, child := range children {
		// "more" stubs stay unresolved per CommentExpansionDepth.
		if child.Kind != models.KindComment {
			continue
		}

		d := child.Data
		if keepComment(d) {
			out = append(out, models.Comment{
				PostID:    postID,
				CommentID: d.ID,
				Text:      d.Body,
				Score:     d.Score,
				CreatedAt: d.CreatedTime(),
			})
		}
		if d.Replies.Listing != nil {
			out = flattenComments(postID, d.Replies.Listing.Data.Children, out)
		}
	}
	return out
}

// keepComment drops comments with no author (deleted accounts) or no
// usable body. Replies below a dropped comment are still walked.
func keepComment(d models.RedditThingData) bool {
	if d.Author == "" || d.Author == "[deleted]" {
		return false
	}
	if d.Body == "" || d.Body == "[deleted]" || d.Body == "[removed]" {
		return false
	}
	return true
}
