package core

import (
	"encoding/json"
	"strings"
)

const (
	// CategoryUnknown is assigned when the model omits or garbles the category
	CategoryUnknown = "Unknown"

	// fallbackReason explains a row that hit the parse fallback
	fallbackReason = "Model response could not be parsed"
)

// FallbackAnalysis returns the fixed verdict used when the model response
// cannot be parsed. It marks the email compliant so an unparseable response
// never raises a false alarm on its own.
func FallbackAnalysis() Analysis {
	return Analysis{
		IsNonCompliant:  false,
		Category:        CategoryUnknown,
		Reason:          fallbackReason,
		EvidenceLineIDs: []int{},
	}
}

// NormalizeResponse extracts a structured Analysis from raw model output.
// Models are unreliable JSON emitters: the response may be wrapped in code
// fences or preceded by prose. The pipeline is strip fences, cut to the
// first brace, attempt a parse, and fall back to FallbackAnalysis on any
// failure. It is total over all inputs and never returns an error.
func NormalizeResponse(raw string) Analysis {
	s := strings.TrimSpace(raw)
	s = stripCodeFences(s)
	s = strings.TrimSpace(s)

	// Cut leading junk before the first JSON object. A brace at index 0 or
	// no brace at all leaves the string unchanged.
	if idx := strings.IndexByte(s, '{'); idx > 0 {
		s = s[idx:]
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(s), &obj); err != nil {
		return FallbackAnalysis()
	}
	// "null" unmarshals into a nil map without error; there is no object
	// to read keys from, so it counts as a parse failure.
	if obj == nil {
		return FallbackAnalysis()
	}

	analysis := Analysis{
		IsNonCompliant:  false,
		Category:        CategoryUnknown,
		Reason:          "",
		EvidenceLineIDs: []int{},
	}

	if v, ok := obj["is_non_compliant"]; ok {
		var b bool
		if err := json.Unmarshal(v, &b); err == nil {
			analysis.IsNonCompliant = b
		}
	}
	if v, ok := obj["category"]; ok {
		var c string
		if err := json.Unmarshal(v, &c); err == nil {
			analysis.Category = c
		}
	}
	if v, ok := obj["reason"]; ok {
		var r string
		if err := json.Unmarshal(v, &r); err == nil {
			analysis.Reason = r
		}
	}
	if v, ok := obj["evidence_line_ids"]; ok {
		var ids []int
		if err := json.Unmarshal(v, &ids); err == nil {
			analysis.EvidenceLineIDs = ids
		}
	}

	return analysis
}

// stripCodeFences removes a single leading ``` or ```json marker and a
// single trailing ``` marker. Fences in the middle of the string are left
// alone.
func stripCodeFences(s string) string {
	if strings.HasPrefix(s, "```") {
		s = s[3:]
		if len(s) >= 4 && strings.EqualFold(s[:4], "json") {
			s = s[4:]
		}
		s = strings.TrimLeft(s, " \t\r\n")
	}
	trimmed := strings.TrimRight(s, " \t\r\n")
	if strings.HasSuffix(trimmed, "```") {
		s = strings.TrimRight(trimmed[:len(trimmed)-3], " \t\r\n")
	}
	return s
}
