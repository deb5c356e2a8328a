package core

// ResolveEvidence maps evidence line ids back to sentence text. Output
// always follows segmentation order, not the order the model listed the ids,
// and ids with no matching sentence are silently dropped.
func ResolveEvidence(ids []int, sentences []Sentence) []string {
	if len(ids) == 0 {
		return []string{}
	}

	wanted := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}

	texts := make([]string, 0, len(wanted))
	for _, s := range sentences {
		if _, ok := wanted[s.LineID]; ok {
			texts = append(texts, s.Text)
		}
	}
	return texts
}
