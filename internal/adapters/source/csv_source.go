package source

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mikey/llm-comms-surveillance/internal/core"
	"github.com/mikey/llm-comms-surveillance/internal/utils"
	"go.uber.org/zap"
)

// Recognized dataset columns. Anything else in the file is ignored and a
// missing column reads as empty, never as an error.
const (
	columnSubject = "Subject"
	columnBody    = "Message Body"
	columnFrom    = "Email Address From"
	columnTo      = "Email Address To"
)

// CSVSource reads the email dataset from a CSV file with a header row
type CSVSource struct {
	path          string
	maxBodySize   int
	logger        *zap.Logger
	textProcessor *utils.TextProcessor
}

// NewCSVSource creates a new CSV dataset source
func NewCSVSource(path string, maxBodySize int, logger *zap.Logger, textProcessor *utils.TextProcessor) *CSVSource {
	return &CSVSource{
		path:          path,
		maxBodySize:   maxBodySize,
		logger:        logger,
		textProcessor: textProcessor,
	}
}

// Emails loads the full dataset in file order
func (s *CSVSource) Emails(_ context.Context) ([]*core.Email, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	emails, err := s.parse(f)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Loaded email dataset",
		zap.String("path", s.path),
		zap.Int("emails", len(emails)))
	return emails, nil
}

// parse reads the header row and then one email per record
func (s *CSVSource) parse(r io.Reader) ([]*core.Email, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return []*core.Email{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header row: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}

	var emails []*core.Email
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read dataset record: %w", err)
		}

		cell := func(column string) string {
			idx, ok := columns[column]
			if !ok || idx >= len(record) {
				return ""
			}
			return s.textProcessor.SanitizeUTF8(record[idx])
		}

		email := &core.Email{
			From:    cell(columnFrom),
			Subject: cell(columnSubject),
			Body:    s.textProcessor.TruncateText(cell(columnBody), s.maxBodySize),
			Headers: make(map[string][]string),
		}
		if to := cell(columnTo); to != "" {
			email.To = []string{to}
		}
		emails = append(emails, email)
	}

	return emails, nil
}
