package problem

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/abhisek/mathflow/internal/facts"
)

// ErrUnsupportedOp is returned for topics whose op cannot be phrased.
var ErrUnsupportedOp = errors.New("problem: unsupported op")

// Generator phrases facts as questions. Table facts are asked in one of two
// directions, chosen with rng.
type Generator struct {
	rng Rand
}

// NewGenerator creates a Generator.
func NewGenerator(rng Rand) *Generator {
	return &Generator{rng: rng}
}

// For builds the question for fact in topic.
func (g *Generator) For(topic facts.Topic, fact facts.Fact) (Question, error) {
	for _, name := range facts.OpFields(topic.Op) {
		if _, ok := fact[name]; !ok {
			return Question{}, fmt.Errorf("topic %s: fact %v missing field %q", topic.ID, fact, name)
		}
	}

	q := Question{TopicID: topic.ID, Fact: fact}
	switch topic.Op {
	case facts.OpAdd:
		a, b := fact["a"], fact["b"]
		q.Text, q.Answer = binary(a, "+", b), a+b
	case facts.OpSub:
		a, b := fact["a"], fact["b"]
		q.Text, q.Answer = binary(a, "-", b), a-b
	case facts.OpComplement10:
		b := fact["b"]
		q.Text, q.Answer = binary(10, "-", b), 10-b
	case facts.OpTensMinus:
		a, b := fact["tens"]*10, fact["b"]
		q.Text, q.Answer = binary(a, "-", b), a-b
	case facts.OpMul:
		a, b := fact["a"], fact["b"]
		q.Text, q.Answer = binary(a, "x", b), a*b
	case facts.OpTable:
		t, b := fact["t"], fact["b"]
		if g.rng.Intn(2) == 0 {
			q.Text, q.Answer = binary(t, "x", b), t*b
		} else {
			q.Text, q.Answer = fmt.Sprintf("%d x ? = %d", t, t*b), b
		}
	case facts.OpSquare:
		n := fact["n"]
		q.Text, q.Answer = strconv.Itoa(n)+"^2", n*n
	case facts.OpCube:
		n := fact["n"]
		q.Text, q.Answer = strconv.Itoa(n)+"^3", n*n*n
	default:
		return Question{}, fmt.Errorf("%w: %q", ErrUnsupportedOp, topic.Op)
	}
	return q, nil
}

func binary(a int, op string, b int) string {
	return fmt.Sprintf("%d %s %d", a, op, b)
}
