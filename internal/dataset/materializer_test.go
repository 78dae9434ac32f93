package dataset

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/mfdorneles/trendmood/internal/models"
)

type fakeCollector struct {
	comments []models.Comment
	err      error
	calls    int
}

func (f *fakeCollector) Collect(_ context.Context, _ string) ([]models.Comment, error) {
	f.calls++
	return f.comments, f.err
}

func sampleComments() []models.Comment {
	return []models.Comment{
		{
			PostID:    "p1",
			CommentID: "c1",
			Text:      "This is the best deal in gaming, I love it!",
			Score:     15,
			CreatedAt: time.Date(2024, 1, 3, 15, 42, 7, 0, time.UTC),
		},
		{
			PostID:    "p1",
			CommentID: "c2",
			Text:      "horrible, the price increase ruined everything",
			Score:     -3,
			CreatedAt: time.Date(2024, 1, 5, 2, 11, 58, 0, time.UTC),
		},
		{
			PostID:    "p2",
			CommentID: "c3",
			Text:      "it launched on tuesday",
			Score:     1,
			CreatedAt: time.Date(2024, 1, 5, 23, 59, 59, 0, time.UTC),
		},
	}
}

func TestMaterializeWritesArtifact(t *testing.T) {
	dataDir := t.TempDir()
	col := &fakeCollector{comments: sampleComments()}
	m := NewMaterializer(col, dataDir)

	result, err := m.Materialize(context.Background(), "Xbox Game Pass")
	if err != nil {
		t.Fatal(err)
	}
	if result.Outcome != OutcomeMaterialized {
		t.Errorf("outcome = %v, want %v", result.Outcome, OutcomeMaterialized)
	}
	if result.Rows != len(sampleComments()) {
		t.Errorf("rows = %d, want %d", result.Rows, len(sampleComments()))
	}

	rows, err := ReadArtifact(dataDir, "Xbox Game Pass")
	if err != nil {
		t.Fatal(err)
	}
	// One row per collected comment, no silent loss.
	if len(rows) != len(sampleComments()) {
		t.Fatalf("artifact has %d rows, want %d", len(rows), len(sampleComments()))
	}

	for i, row := range rows {
		if row.Text != sampleComments()[i].Text {
			t.Errorf("row %d: raw text changed: %q", i, row.Text)
		}
		if row.Sentiment != "Positive" && row.Sentiment != "Negative" && row.Sentiment != "Neutral" {
			t.Errorf("row %d: invalid sentiment %q", i, row.Sentiment)
		}
		if row.SentimentScore < -1 || row.SentimentScore > 1 {
			t.Errorf("row %d: score %v outside [-1, 1]", i, row.SentimentScore)
		}
	}
}

func TestMaterializeNormalizesDates(t *testing.T) {
	dataDir := t.TempDir()
	m := NewMaterializer(&fakeCollector{comments: sampleComments()}, dataDir)

	if _, err := m.Materialize(context.Background(), "topic"); err != nil {
		t.Fatal(err)
	}
	rows, err := ReadArtifact(dataDir, "topic")
	if err != nil {
		t.Fatal(err)
	}

	wantDates := []time.Time{
		time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
	}
	for i, row := range rows {
		if !row.Date.Equal(wantDates[i]) {
			t.Errorf("row %d: date = %v, want %v", i, row.Date, wantDates[i])
		}
		h, m, s := row.Date.Clock()
		if h != 0 || m != 0 || s != 0 {
			t.Errorf("row %d: date has a time-of-day component: %v", i, row.Date)
		}
	}
}

func TestMaterializeIsIdempotent(t *testing.T) {
	dataDir := t.TempDir()
	col := &fakeCollector{comments: sampleComments()}
	m := NewMaterializer(col, dataDir)

	if _, err := m.Materialize(context.Background(), "Xbox Game Pass"); err != nil {
		t.Fatal(err)
	}
	first, err := os.ReadFile(ArtifactPath(dataDir, "Xbox Game Pass"))
	if err != nil {
		t.Fatal(err)
	}

	result, err := m.Materialize(context.Background(), "Xbox Game Pass")
	if err != nil {
		t.Fatal(err)
	}
	if result.Outcome != OutcomeCached {
		t.Errorf("second call outcome = %v, want %v", result.Outcome, OutcomeCached)
	}
	if col.calls != 1 {
		t.Errorf("collector called %d times, want 1", col.calls)
	}

	second, err := os.ReadFile(ArtifactPath(dataDir, "Xbox Game Pass"))
	if err != nil {
		t.Fatal(err)
	}
	if string(first) != string(second) {
		t.Error("artifact changed after a cached materialization")
	}
}

func TestMaterializeSkipsEmptyResult(t *testing.T) {
	dataDir := t.TempDir()
	m := NewMaterializer(&fakeCollector{}, dataDir)

	result, err := m.Materialize(context.Background(), "obscure topic")
	if err != nil {
		t.Fatal(err)
	}
	if result.Outcome != OutcomeSkippedEmpty {
		t.Errorf("outcome = %v, want %v", result.Outcome, OutcomeSkippedEmpty)
	}

	if _, err := os.Stat(ArtifactPath(dataDir, "obscure topic")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("empty result must not create a file, stat err = %v", err)
	}
}

func TestMaterializePropagatesCollectorErrors(t *testing.T) {
	dataDir := t.TempDir()
	collectFailed := errors.New("collect failed")
	m := NewMaterializer(&fakeCollector{err: collectFailed}, dataDir)

	if _, err := m.Materialize(context.Background(), "topic"); !errors.Is(err, collectFailed) {
		t.Fatalf("expected collector error, got %v", err)
	}
	if _, err := os.Stat(ArtifactPath(dataDir, "topic")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("failed topic must not leave an artifact, stat err = %v", err)
	}
}

func TestMaterializeIsDeterministic(t *testing.T) {
	dirA, dirB := t.TempDir(), t.TempDir()
	comments := sampleComments()

	if _, err := NewMaterializer(&fakeCollector{comments: comments}, dirA).Materialize(context.Background(), "t"); err != nil {
		t.Fatal(err)
	}
	if _, err := NewMaterializer(&fakeCollector{comments: comments}, dirB).Materialize(context.Background(), "t"); err != nil {
		t.Fatal(err)
	}

	a, err := os.ReadFile(ArtifactPath(dirA, "t"))
	if err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(ArtifactPath(dirB, "t"))
	if err != nil {
		t.Fatal(err)
	}
	if string(a) != string(b) {
		t.Error("same comments produced different artifacts")
	}
}
