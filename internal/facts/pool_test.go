package facts

import (
	"reflect"
	"testing"
)

func TestBuildPool_Sizes(t *testing.T) {
	tests := []struct {
		id   string
		want int
	}{
		{"add_1d1d", 64},
		{"sub_1d1d", 28},
		{"sub_comp10", 9},
		{"sub_mul10", 64},
		{"mul_1d1d", 49},
		{"tables_2_9", 64},
		{"tables_11_19", 72},
		{"tables_odd20s", 40},
		{"tables_even20s", 32},
		{"squares", 39},
		{"cubes", 19},
	}
	for _, tt := range tests {
		topic, ok := Lookup(tt.id)
		if !ok {
			t.Fatalf("topic %q not found", tt.id)
		}
		if got := len(topic.BuildPool()); got != tt.want {
			t.Errorf("%s: pool size = %d, want %d", tt.id, got, tt.want)
		}
	}
}

func TestBuildPool_Deterministic(t *testing.T) {
	for _, topic := range SRSTopics() {
		first := topic.BuildPool()
		second := topic.BuildPool()
		if !reflect.DeepEqual(first, second) {
			t.Errorf("%s: pool differs between calls", topic.ID)
		}
	}
}

func TestBuildPool_Order(t *testing.T) {
	got := BuildPool(TopicConfig{Dimensions: []Dimension{
		{Name: "a", Min: 1, Max: 2},
		{Name: "b", Values: []int{5, 6}},
	}})
	want := []Fact{
		{"a": 1, "b": 5},
		{"a": 1, "b": 6},
		{"a": 2, "b": 5},
		{"a": 2, "b": 6},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("BuildPool() = %v, want %v", got, want)
	}
}

func TestBuildPool_LessThan(t *testing.T) {
	topic, _ := Lookup("sub_1d1d")
	for _, f := range topic.BuildPool() {
		if f["b"] >= f["a"] {
			t.Errorf("fact %v violates b < a", f)
		}
		if f["b"] < 2 || f["a"] > 9 {
			t.Errorf("fact %v out of range", f)
		}
	}
}

func TestBuildPool_Empty(t *testing.T) {
	tests := []struct {
		name string
		cfg  TopicConfig
	}{
		{"no dimensions", TopicConfig{}},
		{"inverted range", TopicConfig{Dimensions: []Dimension{{Name: "n", Min: 5, Max: 4}}}},
		{"one empty axis", TopicConfig{Dimensions: []Dimension{
			{Name: "a", Min: 1, Max: 3},
			{Name: "b", Min: 9, Max: 1},
		}}},
		{"constraint excludes all", TopicConfig{
			Dimensions: []Dimension{{Name: "a", Min: 1, Max: 1}, {Name: "b", Min: 5, Max: 6}},
			LessThan:   &Constraint{Less: "b", Than: "a"},
		}},
	}
	for _, tt := range tests {
		if got := BuildPool(tt.cfg); len(got) != 0 {
			t.Errorf("%s: expected empty pool, got %d facts", tt.name, len(got))
		}
	}
}

func TestBuildPool_DuplicateValuesCollapsed(t *testing.T) {
	got := BuildPool(TopicConfig{Dimensions: []Dimension{{Name: "t", Values: []int{3, 3, 4}}}})
	if len(got) != 2 {
		t.Errorf("pool size = %d, want 2", len(got))
	}
}
