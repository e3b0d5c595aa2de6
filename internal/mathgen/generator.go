package mathgen

import (
	"fmt"
	"math/rand/v2"
	"strconv"

	"github.com/google/uuid"
)

// Level bounds.
const (
	MinLevel = 1
	MaxLevel = 3
)

// NumChoices is the fixed size of the answer set.
const NumChoices = 4

// Question is a generated arithmetic question ready for display.
type Question struct {
	// ID is unique per generated question.
	ID string

	// Prompt is the question text, e.g. "3 + 4 = ?".
	Prompt string

	// Choices holds NumChoices distinct non-negative integers as strings,
	// exactly one of which is the correct result.
	Choices []string

	// CorrectIndex is the index of the correct result in Choices.
	CorrectIndex int
}

// Generator produces arithmetic questions for a difficulty level.
// Each call draws fresh randomness; two calls with the same level
// are independent.
type Generator struct {
	rng *rand.Rand
}

// New creates a Generator seeded from the global random source.
func New() *Generator {
	return NewWithRand(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
}

// NewWithRand creates a Generator using the given source. Tests pass a
// fixed seed here to make draws reproducible.
func NewWithRand(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// operators returns the operator pool for a level.
func operators(level int) []string {
	switch {
	case level <= 1:
		return []string{"+", "-"}
	case level == 2:
		return []string{"+", "-", "×"}
	default:
		return []string{"+", "-", "×", "÷"}
	}
}

// addSubMax returns the operand upper bound for addition and subtraction.
func addSubMax(level int) int {
	switch {
	case level <= 1:
		return 10
	case level == 2:
		return 20
	default:
		return 50
	}
}

// mulMax returns the operand upper bound for multiplication. Smaller than
// the add/sub bound so products stay kid-sized.
func mulMax(level int) int {
	switch {
	case level <= 1:
		return 10
	case level == 2:
		return 12
	default:
		return 15
	}
}

// spread returns the distractor perturbation range for a level.
func spread(level int) int {
	switch {
	case level <= 1:
		return 5
	case level == 2:
		return 10
	default:
		return 15
	}
}

// divisorMax bounds both the divisor and the quotient for division.
// Division questions are constructed backwards from these so the result
// is always a whole number.
const divisorMax = 12

// Generate builds one question for the given level. Levels outside
// [MinLevel, MaxLevel] are clamped.
func (g *Generator) Generate(level int) Question {
	ops := operators(level)
	op := ops[g.rng.IntN(len(ops))]

	var a, b, correct int
	switch op {
	case "+":
		max := addSubMax(level)
		a = g.rng.IntN(max) + 1
		b = g.rng.IntN(max) + 1
		correct = a + b
	case "-":
		max := addSubMax(level)
		a = g.rng.IntN(max) + 1
		b = g.rng.IntN(max) + 1
		// The result must never be negative.
		if b > a {
			a, b = b, a
		}
		correct = a - b
	case "×":
		max := mulMax(level)
		a = g.rng.IntN(max) + 1
		b = g.rng.IntN(max) + 1
		correct = a * b
	case "÷":
		// Draw divisor and quotient, then derive the dividend, so the
		// division is always exact.
		b = g.rng.IntN(divisorMax) + 1
		correct = g.rng.IntN(divisorMax) + 1
		a = b * correct
	}

	choices, correctIndex := g.buildChoices(correct, spread(level))

	return Question{
		ID:           uuid.NewString(),
		Prompt:       fmt.Sprintf("%d %s %d = ?", a, op, b),
		Choices:      choices,
		CorrectIndex: correctIndex,
	}
}

// buildChoices assembles NumChoices distinct non-negative values around
// the correct answer and shuffles them. Rejection sampling terminates
// because every spread admits at least 2*spread candidate values and
// spread is at least 5.
func (g *Generator) buildChoices(correct, spread int) ([]string, int) {
	values := []int{correct}
	for len(values) < NumChoices {
		delta := g.rng.IntN(2*spread+1) - spread
		if delta == 0 {
			delta = 1
		}
		candidate := correct + delta
		if candidate < 0 || containsInt(values, candidate) {
			continue
		}
		values = append(values, candidate)
	}

	g.rng.Shuffle(len(values), func(i, j int) {
		values[i], values[j] = values[j], values[i]
	})

	choices := make([]string, len(values))
	correctIndex := 0
	for i, v := range values {
		choices[i] = strconv.Itoa(v)
		if v == correct {
			correctIndex = i
		}
	}
	return choices, correctIndex
}

func containsInt(vs []int, v int) bool {
	for _, x := range vs {
		if x == v {
			return true
		}
	}
	return false
}
