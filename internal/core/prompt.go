package core

import (
	"fmt"
	"strings"
)

// promptFormat is the classification prompt template. The rendered prompt
// must be byte-identical for identical inputs, so the template is a fixed
// constant and the subject/body are embedded verbatim with no escaping.
const promptFormat = `You are a compliance surveillance assistant for a bank.

Analyze the email below and return ONLY valid JSON.

Tasks:
1. Decide if the email is non-compliant (true/false)
2. Assign ONE category from:
   - Secrecy
   - Market Manipulation/Misconduct
   - Market Bribery
   - Change in Communication
   - Complaints
   - Employee Ethics
3. Explain the reason
4. Identify the sentence line_ids that caused concern

Email Subject:
%s

Email Content:
%s

Sentences:
%s

Return JSON in this format:
{
  "is_non_compliant": true/false,
  "category": "...",
  "reason": "...",
  "evidence_line_ids": [1,2]
}`

// BuildPrompt renders the classification prompt for one email. Sentences are
// listed one per line as "{line_id}. {text}" so the model can reference them
// by id in evidence_line_ids.
func BuildPrompt(subject, body string, sentences []Sentence) string {
	lines := make([]string, len(sentences))
	for i, s := range sentences {
		lines[i] = fmt.Sprintf("%d. %s", s.LineID, s.Text)
	}
	sentenceBlock := strings.Join(lines, "\n")

	return strings.TrimSpace(fmt.Sprintf(promptFormat, subject, body, sentenceBlock))
}
