// Package scoring holds the happiness score calculator, the category aggregator and the rollup engine.
// Everything here is a pure function of its inputs.
package scoring

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

const (
	MinAnswer = 1
	MaxAnswer = 5

	// QuestionKeyPrefix prefixes question ids in a response's answer map.
	QuestionKeyPrefix = "q-"
)

// Scale tags the representation a score value is expressed in.
// The zero value is the canonical mean scale.
type Scale int

const (
	// ScaleMean is the average of 1..5 answers, range [1, 5].
	ScaleMean Scale = iota
	// ScalePercentage is 100 * sum / (5 * count), range [0, 100].
	ScalePercentage
)

func (s Scale) String() string {
	switch s {
	case ScaleMean:
		return "mean5"
	case ScalePercentage:
		return "percent100"
	default:
		return fmt.Sprintf("scale(%d)", int(s))
	}
}

// ParseScale is the inverse of Scale.String.
func ParseScale(v string) (Scale, error) {
	switch strings.TrimSpace(v) {
	case "mean5":
		return ScaleMean, nil
	case "percent100":
		return ScalePercentage, nil
	default:
		return ScaleMean, fmt.Errorf("%w: %q", ErrUnknownScale, v)
	}
}

func (s Scale) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *Scale) UnmarshalText(b []byte) error {
	v, err := ParseScale(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Score is a happiness score value together with the scale it was recorded in.
type Score struct {
	Value float64 `json:"value"`
	Scale Scale   `json:"scale"`
}

func MeanScore(v float64) Score       { return Score{Value: v, Scale: ScaleMean} }
func PercentageScore(v float64) Score { return Score{Value: v, Scale: ScalePercentage} }

// PercentageOf converts a mean-scale value to the percentage scale.
func PercentageOf(mean float64) float64 { return mean / MaxAnswer * 100 }

// MeanOf converts a percentage-scale value to the mean scale.
func MeanOf(percentage float64) float64 { return percentage / 100 * MaxAnswer }

// Mean returns the score on the mean scale.
func (s Score) Mean() float64 {
	if s.Scale == ScalePercentage {
		return MeanOf(s.Value)
	}
	return s.Value
}

// Percentage returns the score on the percentage scale.
func (s Score) Percentage() float64 {
	if s.Scale == ScalePercentage {
		return s.Value
	}
	return PercentageOf(s.Value)
}

// In re-expresses the score on the given scale.
func (s Score) In(scale Scale) Score {
	if scale == ScalePercentage {
		return PercentageScore(s.Percentage())
	}
	return MeanScore(s.Mean())
}

// ComputeScore validates the answers and returns their mean on the canonical scale.
func ComputeScore(answers []int) (Score, error) {
	if len(answers) == 0 {
		return Score{}, ErrEmptyInput
	}
	sum := 0
	for _, v := range answers {
		if v < MinAnswer || v > MaxAnswer {
			return Score{}, fmt.Errorf("%w: %d", ErrInvalidAnswer, v)
		}
		sum += v
	}
	return MeanScore(float64(sum) / float64(len(answers))), nil
}

// Round1 rounds to one decimal place.
func Round1(v float64) float64 { return math.Round(v*10) / 10 }

// Answers maps "q-<questionId>" keys to Likert values.
type Answers map[string]int

// QuestionKey builds the answer key for a question id.
func QuestionKey(questionID string) string { return QuestionKeyPrefix + questionID }

// QuestionID strips the key prefix. ok is false for keys that do not name a question.
func QuestionID(key string) (id string, ok bool) {
	if !strings.HasPrefix(key, QuestionKeyPrefix) {
		return "", false
	}
	id = strings.TrimPrefix(key, QuestionKeyPrefix)
	return id, id != ""
}

// Keys returns the answer keys in lexical order.
func (a Answers) Keys() []string {
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Values returns the answers ordered by key.
func (a Answers) Values() []int {
	out := make([]int, 0, len(a))
	for _, k := range a.Keys() {
		out = append(out, a[k])
	}
	return out
}
