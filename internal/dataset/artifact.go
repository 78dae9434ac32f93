// Package dataset materializes per-topic artifacts of analyzed comments.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/mfdorneles/trendmood/internal/models"
)

// Artifact file contract, shared with the dashboard: semicolon-separated
// CSV with exactly these columns, filename derived from the topic.
var artifactHeader = []string{
	"post_id", "date", "text", "cleaned_text",
	"sentiment_score", "sentiment", "comment_score",
}

const (
	artifactSeparator = ';'
	dateLayout        = "2006-01-02"
)

// ErrArtifactMissing is returned when a consumer asks for a topic that has
// not been collected yet.
var ErrArtifactMissing = errors.New("artifact not found")

// SanitizeTopic derives the filename fragment for a topic: spaces become
// underscores, parentheses are removed.
func SanitizeTopic(topic string) string {
	return strings.NewReplacer(" ", "_", "(", "", ")", "").Replace(topic)
}

// ArtifactFileName returns the artifact filename for a topic.
func ArtifactFileName(topic string) string {
	return "reddit_" + SanitizeTopic(topic) + "_analisado.csv"
}

// ArtifactPath returns the full artifact path for a topic. Consumers use
// the same derivation to locate the file.
func ArtifactPath(dataDir, topic string) string {
	return filepath.Join(dataDir, ArtifactFileName(topic))
}

// writeArtifact persists the rows atomically: the file is written to a
// temporary name in the same directory and renamed into place, so readers
// never observe a partial artifact.
func writeArtifact(path string, rows []models.AnalyzedComment) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}

	if err := encodeArtifact(tmp, rows); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return nil
}

func encodeArtifact(w io.Writer, rows []models.AnalyzedComment) error {
	cw := csv.NewWriter(w)
	cw.Comma = artifactSeparator

	if err := cw.Write(artifactHeader); err != nil {
		return err
	}
	for _, row := range rows {
		if err := cw.Write(encodeRow(row)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func encodeRow(row models.AnalyzedComment) []string {
	return []string{
		row.PostID,
		row.Date.Format(dateLayout),
		row.Text,
		row.CleanedText,
		strconv.FormatFloat(row.SentimentScore, 'f', 4, 64),
		row.Sentiment,
		strconv.Itoa(row.CommentScore),
	}
}

// ReadArtifact loads a topic artifact back, validating the header before
// decoding any rows. A missing file names the expected path and tells the
// caller to run the collector.
func ReadArtifact(dataDir, topic string) ([]models.AnalyzedComment, error) {
	path := ArtifactPath(dataDir, topic)

	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s (run the collector for topic %q first)", ErrArtifactMissing, path, topic)
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.Comma = artifactSeparator
	cr.FieldsPerRecord = len(artifactHeader)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header of %s: %w", path, err)
	}
	for i, col := range artifactHeader {
		if header[i] != col {
			return nil, fmt.Errorf("unexpected column %q in %s, want %q", header[i], path, col)
		}
	}

	var rows []models.AnalyzedComment
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}

		row, err := decodeRow(record)
		if err != nil {
			return nil, fmt.Errorf("invalid row in %s: %w", path, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func decodeRow(record []string) (models.AnalyzedComment, error) {
	date, err := time.Parse(dateLayout, record[1])
	if err != nil {
		return models.AnalyzedComment{}, err
	}
	score, err := strconv.ParseFloat(record[4], 64)
	if err != nil {
		return models.AnalyzedComment{}, err
	}
	commentScore, err := strconv.Atoi(record[6])
	if err != nil {
		return models.AnalyzedComment{}, err
	}

	return models.AnalyzedComment{
		PostID:         record[0],
		Date:           date,
		Text:           record[2],
		CleanedText:    record[3],
		SentimentScore: score,
		Sentiment:      record[5],
		CommentScore:   commentScore,
	}, nil
}
