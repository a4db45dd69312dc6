// Package validator checks puzzle results against recorded answers.
package validator

import (
	"context"
	"fmt"

	"svw.info/aoc/internal/domain"
	"svw.info/aoc/internal/ports"
)

type AnswerValidator struct{}

var _ ports.Validator = (*AnswerValidator)(nil)

func New() *AnswerValidator { return &AnswerValidator{} }

// Validate returns a mismatch for every result whose part has a recorded
// answer and either failed or produced something else. Parts without a
// recorded answer are not checked.
func (v *AnswerValidator) Validate(ctx context.Context, rec *domain.Record, results []domain.Result) ([]domain.Mismatch, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	conf := make([]domain.Mismatch, 0, len(results))
	for _, r := range results {
		if rec != nil && r.Date != rec.Date {
			return nil, fmt.Errorf("result for %s checked against record of %s", r.Date, rec.Date)
		}
		want, ok := rec.Answer(r.Part)
		if !ok {
			continue
		}
		switch {
		case r.Err != nil:
			conf = append(conf, domain.Mismatch{Date: r.Date, Part: r.Part, Want: want, Err: r.Err})
		case r.Answer != want:
			conf = append(conf, domain.Mismatch{Date: r.Date, Part: r.Part, Want: want, Got: r.Answer})
		}
	}
	return conf, nil
}
