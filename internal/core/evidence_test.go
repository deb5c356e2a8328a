package core

import (
	"reflect"
	"testing"
)

func TestResolveEvidence_DropsUnknownIDs(t *testing.T) {
	sentences := []Sentence{
		{LineID: 1, Text: "one."},
		{LineID: 2, Text: "two."},
		{LineID: 3, Text: "three."},
	}
	got := ResolveEvidence([]int{2, 5}, sentences)
	want := []string{"two."}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestResolveEvidence_SentenceOrder(t *testing.T) {
	sentences := []Sentence{
		{LineID: 1, Text: "first."},
		{LineID: 2, Text: "second."},
		{LineID: 3, Text: "third."},
	}
	// Model listed the ids out of order; output follows sentence order.
	got := ResolveEvidence([]int{3, 1}, sentences)
	want := []string{"first.", "third."}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestResolveEvidence_DuplicateIDs(t *testing.T) {
	sentences := []Sentence{{LineID: 1, Text: "only."}}
	got := ResolveEvidence([]int{1, 1, 1}, sentences)
	if len(got) != 1 {
		t.Errorf("duplicate ids must not duplicate evidence, got %v", got)
	}
}

func TestResolveEvidence_Empty(t *testing.T) {
	sentences := []Sentence{{LineID: 1, Text: "one."}}
	if got := ResolveEvidence(nil, sentences); len(got) != 0 {
		t.Errorf("expected no evidence for nil ids, got %v", got)
	}
	if got := ResolveEvidence([]int{1}, nil); len(got) != 0 {
		t.Errorf("expected no evidence without sentences, got %v", got)
	}
}
