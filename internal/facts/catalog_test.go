package facts

import (
	"errors"
	"math"
	"testing"
)

func TestCatalog_SectionsCoverAllTopics(t *testing.T) {
	total := 0
	for _, s := range AllSections() {
		topics := BySection(s)
		if len(topics) == 0 {
			t.Errorf("section %q has no topics", s)
		}
		total += len(topics)
	}
	if total != len(Catalog()) {
		t.Errorf("sections hold %d topics, catalog has %d", total, len(Catalog()))
	}
}

func TestCatalog_SRSFlag(t *testing.T) {
	if topic, _ := Lookup("add_2d2d"); topic.SRS() {
		t.Error("add_2d2d should not have an SRS pool")
	}
	if topic, _ := Lookup("squares"); !topic.SRS() {
		t.Error("squares should have an SRS pool")
	}
	if got := len(SRSTopics()); got != 11 {
		t.Errorf("SRSTopics() = %d topics, want 11", got)
	}
}

func TestLookup_Unknown(t *testing.T) {
	if _, ok := Lookup("nope"); ok {
		t.Error("expected unknown topic")
	}
}

func TestSectionDisplayName(t *testing.T) {
	if got := SectionMemory.DisplayName(); got != "Memory & Recall" {
		t.Errorf("DisplayName() = %q", got)
	}
	if got := Section("custom").DisplayName(); got != "custom" {
		t.Errorf("DisplayName() = %q", got)
	}
}

func TestValidateTopic(t *testing.T) {
	valid := Topic{ID: "sq", Name: "Sq", Op: OpSquare, Pool: single("n", 1, 3)}
	tests := []struct {
		name    string
		mutate  func(*Topic)
		wantErr bool
	}{
		{"valid", func(*Topic) {}, false},
		{"bad id", func(t *Topic) { t.ID = "Bad-ID" }, true},
		{"id with equals", func(t *Topic) { t.ID = "a=b" }, true},
		{"empty name", func(t *Topic) { t.Name = "" }, true},
		{"unknown op", func(t *Topic) { t.Op = "div" }, true},
		{"field with underscore", func(t *Topic) { t.Pool = single("n_x", 1, 2) }, true},
		{"missing op field", func(t *Topic) { t.Pool = single("m", 1, 2) }, true},
		{"duplicate field", func(t *Topic) { t.Pool = pair("n", 1, 2, "n", 1, 2) }, true},
		{"bad constraint", func(t *Topic) { t.Pool.LessThan = &Constraint{Less: "n", Than: "z"} }, true},
		{"no pool", func(t *Topic) { t.Pool = TopicConfig{} }, false},
		{"inverted range", func(t *Topic) { t.Pool = single("n", 5, 4) }, true},
		{"range too wide", func(t *Topic) { t.Pool = single("n", 1, 1<<40) }, true},
		{"full int range", func(t *Topic) { t.Pool = single("n", math.MinInt, math.MaxInt) }, true},
		{"value too large", func(t *Topic) {
			t.Pool = TopicConfig{Dimensions: []Dimension{{Name: "n", Values: []int{1, MaxFactValue + 1}}}}
		}, true},
		{"product too large", func(t *Topic) { t.Pool = pair("n", 1, 200, "m", 1, 200) }, true},
		{"largest pool", func(t *Topic) { t.Pool = pair("n", 1, 100, "m", 1, 100) }, false},
	}
	for _, tt := range tests {
		topic := valid
		topic.Pool = single("n", 1, 3)
		tt.mutate(&topic)
		err := ValidateTopic(topic)
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: ValidateTopic() error = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, ErrInvalidTopic) {
			t.Errorf("%s: expected ErrInvalidTopic, got %v", tt.name, err)
		}
	}
}
