package core

import (
	"reflect"
	"testing"
)

func TestNormalizeResponse_FencedJSON(t *testing.T) {
	raw := "```json\n{\"is_non_compliant\": true, \"category\": \"Secrecy\", \"reason\": \"x\", \"evidence_line_ids\": [1]}\n```"
	got := NormalizeResponse(raw)

	want := Analysis{
		IsNonCompliant:  true,
		Category:        "Secrecy",
		Reason:          "x",
		EvidenceLineIDs: []int{1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestNormalizeResponse_BareFence(t *testing.T) {
	raw := "```\n{\"is_non_compliant\": false, \"category\": \"Complaints\", \"reason\": \"r\", \"evidence_line_ids\": []}\n```"
	got := NormalizeResponse(raw)
	if got.Category != "Complaints" || got.Reason != "r" {
		t.Errorf("fence stripping failed: %+v", got)
	}
}

func TestNormalizeResponse_NotJSON(t *testing.T) {
	got := NormalizeResponse("not json at all")
	want := FallbackAnalysis()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected fixed fallback %+v, got %+v", want, got)
	}
}

func TestNormalizeResponse_NullDocument(t *testing.T) {
	// "null" is valid JSON but carries no object; it must not dodge the
	// fixed fallback by decoding into a nil map.
	for _, raw := range []string{"null", "```\nnull\n```", "  null  "} {
		got := NormalizeResponse(raw)
		if !reflect.DeepEqual(got, FallbackAnalysis()) {
			t.Errorf("NormalizeResponse(%q) = %+v, want the fixed fallback", raw, got)
		}
	}
}

func TestNormalizeResponse_LeadingProse(t *testing.T) {
	got := NormalizeResponse(`prefix noise {"is_non_compliant": false}`)

	if got.IsNonCompliant {
		t.Error("expected is_non_compliant false")
	}
	if got.Category != CategoryUnknown {
		t.Errorf("expected default category %q, got %q", CategoryUnknown, got.Category)
	}
	if got.Reason != "" {
		t.Errorf("expected empty default reason, got %q", got.Reason)
	}
	if len(got.EvidenceLineIDs) != 0 {
		t.Errorf("expected empty evidence ids, got %v", got.EvidenceLineIDs)
	}
}

func TestNormalizeResponse_MissingKeysGetDefaults(t *testing.T) {
	got := NormalizeResponse(`{"category": "Market Bribery"}`)
	if got.IsNonCompliant {
		t.Error("is_non_compliant should default to false")
	}
	if got.Category != "Market Bribery" {
		t.Errorf("unexpected category: %q", got.Category)
	}
	if got.EvidenceLineIDs == nil || len(got.EvidenceLineIDs) != 0 {
		t.Errorf("evidence ids should default to an empty slice, got %v", got.EvidenceLineIDs)
	}
}

func TestNormalizeResponse_WrongTypedKeys(t *testing.T) {
	// Mis-typed values fall back to the per-key default, the JSON object
	// itself still parses.
	got := NormalizeResponse(`{"is_non_compliant": "yes", "category": 7, "reason": "fine", "evidence_line_ids": "1,2"}`)
	if got.IsNonCompliant {
		t.Error("string is_non_compliant should not coerce to true")
	}
	if got.Category != CategoryUnknown {
		t.Errorf("numeric category should default to %q, got %q", CategoryUnknown, got.Category)
	}
	if got.Reason != "fine" {
		t.Errorf("well-typed reason should survive, got %q", got.Reason)
	}
	if len(got.EvidenceLineIDs) != 0 {
		t.Errorf("string evidence_line_ids should default to empty, got %v", got.EvidenceLineIDs)
	}
}

func TestNormalizeResponse_TruncatedJSON(t *testing.T) {
	got := NormalizeResponse(`{"is_non_compliant": true, "category": "Secre`)
	if !reflect.DeepEqual(got, FallbackAnalysis()) {
		t.Errorf("truncated JSON should yield the fallback, got %+v", got)
	}
}

func TestNormalizeResponse_MidStringFenceLeftAlone(t *testing.T) {
	raw := `{"is_non_compliant": true, "category": "Secrecy", "reason": "uses ` + "```" + ` fences", "evidence_line_ids": [2]}`
	got := NormalizeResponse(raw)
	if got.Category != "Secrecy" || len(got.EvidenceLineIDs) != 1 {
		t.Errorf("mid-string fence corrupted the parse: %+v", got)
	}
}

func TestNormalizeResponse_CaseInsensitiveFenceTag(t *testing.T) {
	raw := "```JSON\n{\"is_non_compliant\": true, \"category\": \"Secrecy\", \"reason\": \"x\", \"evidence_line_ids\": []}\n```"
	got := NormalizeResponse(raw)
	if !got.IsNonCompliant || got.Category != "Secrecy" {
		t.Errorf("uppercase fence tag not stripped: %+v", got)
	}
}

func TestFallbackAnalysis_Shape(t *testing.T) {
	got := FallbackAnalysis()
	if got.IsNonCompliant {
		t.Error("fallback must be compliant")
	}
	if got.Category != "Unknown" {
		t.Errorf("fallback category: %q", got.Category)
	}
	if got.Reason != "Model response could not be parsed" {
		t.Errorf("fallback reason: %q", got.Reason)
	}
	if len(got.EvidenceLineIDs) != 0 {
		t.Errorf("fallback evidence ids: %v", got.EvidenceLineIDs)
	}
}
