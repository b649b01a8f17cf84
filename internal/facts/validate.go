package facts

import (
	"fmt"
	"regexp"
	"slices"
)

var (
	topicIDPattern   = regexp.MustCompile(`^[a-z0-9_]+$`)
	fieldNamePattern = regexp.MustCompile(`^[a-z]+$`)
)

// ValidateTopic checks that a topic can produce well-formed Card Keys and that
// its pool carries the fields its op needs.
func ValidateTopic(t Topic) error {
	if !topicIDPattern.MatchString(t.ID) {
		return fmt.Errorf("%w: id %q must match %s", ErrInvalidTopic, t.ID, topicIDPattern)
	}
	if t.Name == "" {
		return fmt.Errorf("%w: %s: empty name", ErrInvalidTopic, t.ID)
	}
	want := OpFields(t.Op)
	if want == nil {
		return fmt.Errorf("%w: %s: unknown op %q", ErrInvalidTopic, t.ID, t.Op)
	}
	if t.Pool.Empty() {
		return nil
	}

	declared := make([]string, 0, len(t.Pool.Dimensions))
	for _, d := range t.Pool.Dimensions {
		if !fieldNamePattern.MatchString(d.Name) {
			return fmt.Errorf("%w: %s: field name %q must match %s", ErrInvalidTopic, t.ID, d.Name, fieldNamePattern)
		}
		if slices.Contains(declared, d.Name) {
			return fmt.Errorf("%w: %s: duplicate field %q", ErrInvalidTopic, t.ID, d.Name)
		}
		declared = append(declared, d.Name)
		if err := checkBounds(t.ID, d); err != nil {
			return err
		}
	}
	size := int64(1)
	for _, d := range t.Pool.Dimensions {
		size *= d.size()
		if size > MaxPoolSize {
			return fmt.Errorf("%w: %s: pool exceeds %d facts", ErrInvalidTopic, t.ID, MaxPoolSize)
		}
	}
	for _, name := range want {
		if !slices.Contains(declared, name) {
			return fmt.Errorf("%w: %s: op %q needs field %q", ErrInvalidTopic, t.ID, t.Op, name)
		}
	}
	if c := t.Pool.LessThan; c != nil {
		if !slices.Contains(declared, c.Less) || !slices.Contains(declared, c.Than) {
			return fmt.Errorf("%w: %s: constraint %s<%s names an undeclared field", ErrInvalidTopic, t.ID, c.Less, c.Than)
		}
	}
	return nil
}

func checkBounds(id string, d Dimension) error {
	inRange := func(v int) bool { return v >= -MaxFactValue && v <= MaxFactValue }
	if len(d.Values) > 0 {
		for _, v := range d.Values {
			if !inRange(v) {
				return fmt.Errorf("%w: %s: %s value %d outside ±%d", ErrInvalidTopic, id, d.Name, v, MaxFactValue)
			}
		}
		return nil
	}
	if !inRange(d.Min) || !inRange(d.Max) {
		return fmt.Errorf("%w: %s: %s range %d..%d outside ±%d", ErrInvalidTopic, id, d.Name, d.Min, d.Max, MaxFactValue)
	}
	if d.Min > d.Max {
		return fmt.Errorf("%w: %s: %s range %d..%d is empty", ErrInvalidTopic, id, d.Name, d.Min, d.Max)
	}
	return nil
}

// validateCatalog checks every topic and rejects duplicate IDs.
func validateCatalog(topics []Topic) error {
	seen := make(map[string]bool, len(topics))
	for _, t := range topics {
		if seen[t.ID] {
			return fmt.Errorf("%w: duplicate id %q", ErrInvalidTopic, t.ID)
		}
		seen[t.ID] = true
		if err := ValidateTopic(t); err != nil {
			return err
		}
	}
	return nil
}
