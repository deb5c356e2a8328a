package intake

import (
	"context"
	"io"
	"time"

	"github.com/emersion/go-smtp"
	"github.com/mikey/llm-comms-surveillance/internal/adapters/source"
	"github.com/mikey/llm-comms-surveillance/internal/core"
	"github.com/mikey/llm-comms-surveillance/internal/utils"
	"go.uber.org/zap"
)

// SMTPIntake feeds live messages into the surveillance pipeline. It is a
// passive tap: every message is accepted and none is rejected, modified, or
// forwarded, so delivering mail stays the upstream MTA's job.
type SMTPIntake struct {
	service       *core.SurveillanceService
	logger        *zap.Logger
	listenAddr    string
	maxBodySize   int
	textProcessor *utils.TextProcessor
	server        *smtp.Server
}

// NewSMTPIntake creates a new live message intake
func NewSMTPIntake(
	service *core.SurveillanceService,
	logger *zap.Logger,
	listenAddr string,
	maxMessageBytes int64,
	maxBodySize int,
	textProcessor *utils.TextProcessor,
) *SMTPIntake {
	intake := &SMTPIntake{
		service:       service,
		logger:        logger,
		listenAddr:    listenAddr,
		maxBodySize:   maxBodySize,
		textProcessor: textProcessor,
	}

	server := smtp.NewServer(&smtpBackend{intake: intake})
	server.Addr = listenAddr
	server.Domain = "localhost"
	server.ReadTimeout = 30 * time.Second
	server.WriteTimeout = 30 * time.Second
	server.MaxMessageBytes = maxMessageBytes
	server.MaxRecipients = 50
	server.AllowInsecureAuth = true
	intake.server = server

	return intake
}

// Start starts the SMTP listener in the background
func (i *SMTPIntake) Start() error {
	i.logger.Info("SMTP intake starting", zap.String("address", i.listenAddr))

	go func() {
		if err := i.server.ListenAndServe(); err != nil {
			if err != smtp.ErrServerClosed {
				i.logger.Error("SMTP server error", zap.Error(err))
			}
		}
	}()

	return nil
}

// Stop stops the SMTP listener
func (i *SMTPIntake) Stop() error {
	if i.server != nil {
		return i.server.Close()
	}
	return nil
}

// smtpBackend implements the go-smtp Backend interface
type smtpBackend struct {
	intake *SMTPIntake
}

// NewSession creates a new SMTP session
func (b *smtpBackend) NewSession(_ *smtp.Conn) (smtp.Session, error) {
	return &smtpSession{
		intake:     b.intake,
		recipients: make([]string, 0),
	}, nil
}

// smtpSession implements the go-smtp Session interface
type smtpSession struct {
	intake     *SMTPIntake
	sender     string
	recipients []string
}

// Reset resets the session state
func (s *smtpSession) Reset() {
	s.sender = ""
	s.recipients = make([]string, 0)
}

// AuthPlain handles PLAIN authentication (not needed for a passive tap)
func (s *smtpSession) AuthPlain(_ []byte) error {
	return smtp.ErrAuthUnsupported
}

// Mail sets the envelope sender
func (s *smtpSession) Mail(from string, _ *smtp.MailOptions) error {
	s.sender = from
	return nil
}

// Rcpt adds an envelope recipient
func (s *smtpSession) Rcpt(to string, _ *smtp.RcptOptions) error {
	s.recipients = append(s.recipients, to)
	return nil
}

// Data analyzes the message body. The message is always accepted: an
// analysis failure is logged and surfaced in the report rather than bounced
// back to the sender.
func (s *smtpSession) Data(r io.Reader) error {
	rawData, err := io.ReadAll(r)
	if err != nil {
		s.intake.logger.Error("Failed to read message data", zap.Error(err))
		return err
	}

	email, err := source.ParseRawMessage(rawData, s.intake.textProcessor, s.intake.maxBodySize)
	if err != nil {
		s.intake.logger.Error("Failed to parse message", zap.Error(err),
			zap.String("sender", s.sender))
		return nil
	}

	// Prefer the envelope over the headers when both are present
	if s.sender != "" {
		email.From = s.sender
	}
	if len(s.recipients) > 0 {
		email.To = append([]string(nil), s.recipients...)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	row := s.intake.service.ProcessEmailLenient(ctx, email)

	s.intake.logger.Info("Analyzed live message",
		zap.String("from", row.From),
		zap.String("subject", row.Subject),
		zap.Bool("non_compliant", row.NonCompliant),
		zap.String("category", row.Category),
		zap.Int("priority", row.Priority))

	return nil
}

// Logout handles SMTP logout
func (s *smtpSession) Logout() error {
	return nil
}
