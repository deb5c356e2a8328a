package source

import (
	"bytes"
	"context"
	"fmt"
	"net/mail"
	"os"
	"strings"

	"github.com/mikey/llm-comms-surveillance/internal/core"
	"github.com/mikey/llm-comms-surveillance/internal/utils"
	"go.uber.org/zap"
)

// EMLSource reads a single RFC 5322 message from a .eml file
type EMLSource struct {
	path          string
	maxBodySize   int
	logger        *zap.Logger
	textProcessor *utils.TextProcessor
}

// NewEMLSource creates a new single-message source
func NewEMLSource(path string, maxBodySize int, logger *zap.Logger, textProcessor *utils.TextProcessor) *EMLSource {
	return &EMLSource{
		path:          path,
		maxBodySize:   maxBodySize,
		logger:        logger,
		textProcessor: textProcessor,
	}
}

// Emails parses the message file into a one-element batch
func (s *EMLSource) Emails(_ context.Context) ([]*core.Email, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read message file: %w", err)
	}

	email, err := ParseRawMessage(raw, s.textProcessor, s.maxBodySize)
	if err != nil {
		return nil, fmt.Errorf("failed to parse message file: %w", err)
	}

	s.logger.Info("Loaded message file",
		zap.String("path", s.path),
		zap.String("from", email.From),
		zap.String("subject", email.Subject))
	return []*core.Email{email}, nil
}

// ParseRawMessage turns raw RFC 5322 bytes into an Email. The envelope sender
// and recipients are taken from the From and To headers.
func ParseRawMessage(raw []byte, textProcessor *utils.TextProcessor, maxBodySize int) (*core.Email, error) {
	msg, err := mail.ReadMessage(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}

	textContent, err := ExtractTextFromMessage(msg)
	if err != nil {
		return nil, err
	}

	email := &core.Email{
		From:    senderAddress(msg.Header.Get("From")),
		To:      addressList(msg.Header.Get("To")),
		Body:    textProcessor.ProcessField(textContent, maxBodySize),
		Headers: make(map[string][]string),
	}
	for key, values := range msg.Header {
		email.Headers[key] = values
		if strings.EqualFold(key, "Subject") && len(values) > 0 {
			email.Subject = textProcessor.SanitizeUTF8(DecodeEncodedHeader(values[0]))
		}
	}

	return email, nil
}
