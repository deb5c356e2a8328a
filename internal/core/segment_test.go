package core

import (
	"testing"
)

func TestSegmentSentences_SingleSentence(t *testing.T) {
	got := SegmentSentences("Hello world.")
	if len(got) != 1 {
		t.Fatalf("expected 1 sentence, got %d", len(got))
	}
	if got[0].LineID != 1 || got[0].Text != "Hello world." {
		t.Errorf("unexpected sentence: %+v", got[0])
	}
}

func TestSegmentSentences_TwoSentences(t *testing.T) {
	got := SegmentSentences("Hi. Bye!")
	if len(got) != 2 {
		t.Fatalf("expected 2 sentences, got %d", len(got))
	}
	if got[0].Text != "Hi." || got[1].Text != "Bye!" {
		t.Errorf("unexpected texts: %q, %q", got[0].Text, got[1].Text)
	}
	if got[0].LineID != 1 || got[1].LineID != 2 {
		t.Errorf("unexpected line ids: %d, %d", got[0].LineID, got[1].LineID)
	}
}

func TestSegmentSentences_Empty(t *testing.T) {
	if got := SegmentSentences(""); len(got) != 0 {
		t.Errorf("expected empty result for empty input, got %d sentences", len(got))
	}
	if got := SegmentSentences("   \n\t  "); len(got) != 0 {
		t.Errorf("expected empty result for whitespace input, got %d sentences", len(got))
	}
}

func TestSegmentSentences_PunctuationWithoutWhitespace(t *testing.T) {
	// No whitespace after the periods, so no split happens
	got := SegmentSentences("See example.com for details")
	if len(got) != 1 {
		t.Fatalf("expected 1 sentence, got %d", len(got))
	}
	if got[0].Text != "See example.com for details" {
		t.Errorf("unexpected text: %q", got[0].Text)
	}
}

func TestSegmentSentences_MultiplePunctuationMarks(t *testing.T) {
	got := SegmentSentences("Really?! Yes. Sure")
	want := []string{"Really?!", "Yes.", "Sure"}
	if len(got) != len(want) {
		t.Fatalf("expected %d sentences, got %d: %+v", len(want), len(got), got)
	}
	for i, w := range want {
		if got[i].Text != w {
			t.Errorf("sentence %d: expected %q, got %q", i, w, got[i].Text)
		}
	}
}

func TestSegmentSentences_ContiguousLineIDs(t *testing.T) {
	text := "One. Two! Three? Four. \n  \n Five."
	got := SegmentSentences(text)
	for i, s := range got {
		if s.LineID != i+1 {
			t.Errorf("line id at index %d: expected %d, got %d", i, i+1, s.LineID)
		}
		if s.Text == "" {
			t.Errorf("sentence %d has empty text", i)
		}
	}
}

func TestSegmentSentences_MultilineBody(t *testing.T) {
	got := SegmentSentences("First line.\nSecond line! Third.")
	want := []string{"First line.", "Second line!", "Third."}
	if len(got) != len(want) {
		t.Fatalf("expected %d sentences, got %d: %+v", len(want), len(got), got)
	}
	for i, w := range want {
		if got[i].Text != w {
			t.Errorf("sentence %d: expected %q, got %q", i, w, got[i].Text)
		}
	}
}
