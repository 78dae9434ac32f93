package dataset

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/mfdorneles/trendmood/internal/models"
	"github.com/mfdorneles/trendmood/internal/sentiment"
	"github.com/mfdorneles/trendmood/internal/textproc"
)

// Outcome is the terminal state of one topic within a run.
type Outcome int

const (
	// OutcomeCached means the artifact already existed; nothing was fetched.
	OutcomeCached Outcome = iota
	// OutcomeMaterialized means a new artifact was collected and written.
	OutcomeMaterialized
	// OutcomeSkippedEmpty means collection found no comments; no file was written.
	OutcomeSkippedEmpty
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCached:
		return "cached"
	case OutcomeMaterialized:
		return "materialized"
	case OutcomeSkippedEmpty:
		return "skipped_empty"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Result reports what Materialize did for a topic.
type Result struct {
	Outcome Outcome
	Rows    int
}

// Collector produces the raw comments for a topic.
type Collector interface {
	Collect(ctx context.Context, topic string) ([]models.Comment, error)
}

// Materializer runs collect -> normalize -> score for one topic and
// persists the result. The data directory is an explicit dependency.
type Materializer struct {
	collector Collector
	dataDir   string
}

func NewMaterializer(c Collector, dataDir string) *Materializer {
	return &Materializer{collector: c, dataDir: dataDir}
}

// Materialize produces the topic artifact at most once. An existing file
// suppresses collection entirely; presence alone is the idempotency
// marker, with no freshness or content checks.
func (m *Materializer) Materialize(ctx context.Context, topic string) (Result, error) {
	path := ArtifactPath(m.dataDir, topic)

	if _, err := os.Stat(path); err == nil {
		slog.Info("[Materializer] Artifact already exists, skipping collection",
			slog.String("topic", topic),
			slog.String("path", path))
		return Result{Outcome: OutcomeCached}, nil
	}

	comments, err := m.collector.Collect(ctx, topic)
	if err != nil {
		return Result{}, err
	}
	if len(comments) == 0 {
		slog.Warn("[Materializer] No comments found for topic, skipping",
			slog.String("topic", topic))
		return Result{Outcome: OutcomeSkippedEmpty}, nil
	}

	slog.Info("[Materializer] Analyzing comments",
		slog.String("topic", topic),
		slog.Int("count", len(comments)))

	rows := analyze(comments)

	if err := writeArtifact(path, rows); err != nil {
		return Result{}, fmt.Errorf("[Materializer] persist failed for %q: %w", topic, err)
	}

	slog.Info("[Materializer] Artifact written",
		slog.String("path", path),
		slog.Int("rows", len(rows)))
	return Result{Outcome: OutcomeMaterialized, Rows: len(rows)}, nil
}

// analyze derives one row per comment. Scoring is pure, so the output is
// a deterministic function of the collected comments.
func analyze(comments []models.Comment) []models.AnalyzedComment {
	rows := make([]models.AnalyzedComment, 0, len(comments))
	for _, c := range comments {
		cleaned := textproc.Normalize(textproc.Flatten(c.Text))
		score := sentiment.Score(cleaned)

		rows = append(rows, models.AnalyzedComment{
			PostID:         c.PostID,
			Date:           truncateToDay(c.CreatedAt),
			Text:           c.Text,
			CleanedText:    cleaned,
			SentimentScore: score,
			Sentiment:      sentiment.Classify(score).String(),
			CommentScore:   c.Score,
		})
	}
	return rows
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
