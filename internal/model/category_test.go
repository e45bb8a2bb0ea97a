package model

import (
	"encoding/json"
	"testing"
)

func TestCategoryMapKeepsOrder(t *testing.T) {
	m := NewCategoryMap([]Category{
		{ID: 2, Type: "Art"},
		{ID: 6, Type: "Entertainment"},
		{ID: 1, Type: "Science"},
	})

	got, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"2":"Art","6":"Entertainment","1":"Science"}`
	if string(got) != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestCategoryMapEmpty(t *testing.T) {
	got, err := json.Marshal(CategoryMap(nil))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(got) != "{}" {
		t.Fatalf("got %s, want {}", got)
	}
}

func TestCategoryMapEscapesNames(t *testing.T) {
	got, err := json.Marshal(NewCategoryMap([]Category{{ID: 3, Type: `Rock "n" Roll`}}))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded map[string]string
	if err := json.Unmarshal(got, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v (%s)", err, got)
	}
	if decoded["3"] != `Rock "n" Roll` {
		t.Fatalf("decoded name = %q", decoded["3"])
	}
}
