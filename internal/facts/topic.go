package facts

// Section groups topics for display.
type Section string

const (
	SectionAddition       Section = "addition"
	SectionSubtraction    Section = "subtraction"
	SectionMultiplication Section = "multiplication"
	SectionMemory         Section = "memory"
)

// AllSections returns the built-in sections in display order.
func AllSections() []Section {
	return []Section{
		SectionAddition,
		SectionSubtraction,
		SectionMultiplication,
		SectionMemory,
	}
}

// DisplayName returns a human-readable label for the section.
func (s Section) DisplayName() string {
	switch s {
	case SectionAddition:
		return "Addition"
	case SectionSubtraction:
		return "Subtraction"
	case SectionMultiplication:
		return "Multiplication"
	case SectionMemory:
		return "Memory & Recall"
	default:
		return string(s)
	}
}

// Op names the arithmetic a topic drills. It fixes which fields a fact must
// carry; see OpFields.
type Op string

const (
	OpAdd          Op = "add"
	OpSub          Op = "sub"
	OpComplement10 Op = "complement10"
	OpTensMinus    Op = "tens_minus"
	OpMul          Op = "mul"
	OpTable        Op = "table"
	OpSquare       Op = "square"
	OpCube         Op = "cube"
)

// OpFields returns the field names a fact of the given op must carry, or nil
// for an unknown op.
func OpFields(op Op) []string {
	switch op {
	case OpAdd, OpSub, OpMul:
		return []string{"a", "b"}
	case OpComplement10:
		return []string{"b"}
	case OpTensMinus:
		return []string{"tens", "b"}
	case OpTable:
		return []string{"t", "b"}
	case OpSquare, OpCube:
		return []string{"n"}
	default:
		return nil
	}
}

// Topic is one practice topic. Topics with an empty Pool config are drilled
// with freely generated questions and never reach the scheduler.
type Topic struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Section     Section     `json:"section"`
	Description string      `json:"description"`
	Op          Op          `json:"op"`
	Pool        TopicConfig `json:"pool"`
}

// SRS reports whether the topic has a fact pool for spaced repetition.
func (t Topic) SRS() bool {
	return !t.Pool.Empty()
}

// BuildPool builds the topic's fact pool.
func (t Topic) BuildPool() []Fact {
	return BuildPool(t.Pool)
}
