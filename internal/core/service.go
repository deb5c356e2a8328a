package core

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

// SurveillanceService runs the per-email compliance pipeline and maintains
// the live report. Emails are processed strictly one at a time in input
// order; the model call blocks the pipeline until it returns or fails.
type SurveillanceService struct {
	llmClient          LLMClient
	cache              CacheRepository
	risk               *RiskTable
	report             *Report
	logger             *zap.Logger
	cacheEnabled       bool
	cacheTTL           time.Duration
	whitelistedDomains []string
	modelName          string
	observers          []RowObserver
}

// NewSurveillanceService creates a new surveillance service
func NewSurveillanceService(
	llmClient LLMClient,
	cache CacheRepository,
	risk *RiskTable,
	report *Report,
	logger *zap.Logger,
	cacheEnabled bool,
	cacheTTL time.Duration,
	whitelistedDomains []string,
	modelName string,
) *SurveillanceService {
	return &SurveillanceService{
		llmClient:          llmClient,
		cache:              cache,
		risk:               risk,
		report:             report,
		logger:             logger,
		cacheEnabled:       cacheEnabled,
		cacheTTL:           cacheTTL,
		whitelistedDomains: whitelistedDomains,
		modelName:          modelName,
	}
}

// Report returns the live report the service appends to
func (s *SurveillanceService) Report() *Report {
	return s.report
}

// AddObserver registers an observer for completed rows
func (s *SurveillanceService) AddObserver(o RowObserver) {
	s.observers = append(s.observers, o)
}

// isDomainWhitelisted checks if the sender's domain is in the whitelist
func (s *SurveillanceService) isDomainWhitelisted(email string) bool {
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return false
	}

	domain := strings.ToLower(parts[1])
	for _, whitelistedDomain := range s.whitelistedDomains {
		if strings.EqualFold(domain, whitelistedDomain) {
			return true
		}
	}
	return false
}

// contentDigest keys the verdict cache on the analyzed content
func contentDigest(subject, body string) string {
	h := sha256.New()
	h.Write([]byte(subject))
	h.Write([]byte{0})
	h.Write([]byte(body))
	return hex.EncodeToString(h.Sum(nil))
}

// ProcessEmail runs one email through the pipeline, appends the resulting
// row to the report and notifies observers. A model transport error aborts
// the email and propagates; everything else resolves to a row, via the
// parse fallback if necessary.
func (s *SurveillanceService) ProcessEmail(ctx context.Context, email *Email) (*ReportRow, error) {
	if s.isDomainWhitelisted(email.From) {
		s.logger.Info("Skipping analysis for whitelisted domain",
			zap.String("sender", email.From),
			zap.String("action", "whitelist_bypass"))

		row := s.buildRow(email, Analysis{
			IsNonCompliant:  false,
			Category:        "Whitelisted",
			Reason:          "Sender domain is whitelisted",
			EvidenceLineIDs: []int{},
		}, nil, "whitelist")
		s.append(row)
		return row, nil
	}

	sentences := SegmentSentences(email.Body)

	digest := contentDigest(email.Subject, email.Body)
	if s.cacheEnabled {
		if entry, err := s.cache.Get(ctx, digest); err == nil {
			s.logger.Debug("Cache hit for content digest", zap.String("digest", digest))
			analysis := Analysis{
				IsNonCompliant:  entry.IsNonCompliant,
				Category:        entry.Category,
				Reason:          entry.Reason,
				EvidenceLineIDs: entry.EvidenceLineIDs,
			}
			row := s.buildRow(email, analysis, sentences, "cache")
			s.append(row)
			return row, nil
		}
	}

	prompt := BuildPrompt(email.Subject, email.Body, sentences)

	raw, err := s.llmClient.Complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	analysis := NormalizeResponse(raw)

	if s.cacheEnabled {
		entry := &CacheEntry{
			ContentDigest:   digest,
			IsNonCompliant:  analysis.IsNonCompliant,
			Category:        analysis.Category,
			Reason:          analysis.Reason,
			EvidenceLineIDs: analysis.EvidenceLineIDs,
			LastSeen:        time.Now(),
			ExpiresAt:       time.Now().Add(s.cacheTTL),
		}
		if err := s.cache.Set(ctx, entry); err != nil {
			s.logger.Error("Failed to update cache", zap.Error(err))
		}
	}

	row := s.buildRow(email, analysis, sentences, s.modelName)
	s.append(row)
	return row, nil
}

// ProcessEmailLenient runs ProcessEmail and converts a model failure into an
// error row instead of propagating it. Live intake uses this: a session has
// no batch to abort, so the failure is surfaced in the report.
func (s *SurveillanceService) ProcessEmailLenient(ctx context.Context, email *Email) *ReportRow {
	row, err := s.ProcessEmail(ctx, email)
	if err == nil {
		return row
	}

	s.logger.Error("Recording error row after model failure",
		zap.Error(err),
		zap.String("sender", email.From),
		zap.String("subject", email.Subject))

	row = s.buildRow(email, Analysis{
		IsNonCompliant:  false,
		Category:        CategoryUnknown,
		Reason:          fmt.Sprintf("Error during analysis: %v", err),
		EvidenceLineIDs: []int{},
	}, nil, "error")
	s.append(row)
	return row
}

// Run processes every email from the source sequentially. A model failure
// halts the batch unless continueOnError is set, in which case the row is
// skipped and the loop moves on.
func (s *SurveillanceService) Run(ctx context.Context, source EmailSource, continueOnError bool) error {
	emails, err := source.Emails(ctx)
	if err != nil {
		return err
	}

	s.logger.Info("Starting surveillance batch", zap.Int("emails", len(emails)))

	for i, email := range emails {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.logger.Debug("Processing email",
			zap.Int("index", i+1),
			zap.Int("total", len(emails)),
			zap.String("subject", email.Subject))

		if _, err := s.ProcessEmail(ctx, email); err != nil {
			if !continueOnError {
				return err
			}
			s.logger.Error("Skipping email after model failure",
				zap.Error(err),
				zap.Int("index", i+1),
				zap.String("subject", email.Subject))
		}
	}

	s.logger.Info("Surveillance batch complete",
		zap.Int("rows", s.report.Len()))
	return nil
}

// buildRow assembles the report row for an analyzed email
func (s *SurveillanceService) buildRow(email *Email, analysis Analysis, sentences []Sentence, modelUsed string) *ReportRow {
	row := &ReportRow{
		From:          email.From,
		To:            strings.Join(email.To, ", "),
		Subject:       email.Subject,
		NonCompliant:  analysis.IsNonCompliant,
		Category:      analysis.Category,
		Priority:      s.risk.Score(analysis),
		Reason:        analysis.Reason,
		EvidenceTexts: ResolveEvidence(analysis.EvidenceLineIDs, sentences),
		AnalyzedAt:    time.Now(),
		ModelUsed:     modelUsed,
	}
	return row
}

// append records the row and notifies observers in registration order
func (s *SurveillanceService) append(row *ReportRow) {
	s.report.Append(*row)
	for _, o := range s.observers {
		o.OnRowComplete(row)
	}
}
