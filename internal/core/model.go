package core

import (
	"time"
)

// Email represents an email message under surveillance
type Email struct {
	From    string
	To      []string
	Subject string
	Body    string
	Headers map[string][]string
}

// Sentence is a single numbered sentence from an email body.
// LineIDs are 1-based and contiguous in segmentation order.
type Sentence struct {
	LineID int
	Text   string
}

// Analysis represents the structured verdict extracted from the model's
// response. Every field is always populated; callers never branch on absence.
type Analysis struct {
	IsNonCompliant  bool
	Category        string
	Reason          string
	EvidenceLineIDs []int
}

// ReportRow is one analyzed email in the surveillance report
type ReportRow struct {
	From          string
	To            string
	Subject       string
	NonCompliant  bool
	Category      string
	Priority      int
	Reason        string
	EvidenceTexts []string
	AnalyzedAt    time.Time
	ModelUsed     string
}

// CacheEntry is a memoized verdict keyed by a content digest
type CacheEntry struct {
	ContentDigest   string
	IsNonCompliant  bool
	Category        string
	Reason          string
	EvidenceLineIDs []int
	LastSeen        time.Time
	ExpiresAt       time.Time
}
