package tokenizer

import (
	"errors"
)

// CountResult captures the outcome of counting a report.
type CountResult struct {
	Tokens int
	Model  string
}

// CountText estimates tokens for text using counter.
func CountText(counter Counter, text string) (CountResult, error) {
	if counter == nil {
		return CountResult{}, errors.New("nil tokenizer counter")
	}
	tokens, err := counter.CountString(text)
	if err != nil {
		return CountResult{}, err
	}
	return CountResult{Tokens: tokens, Model: counter.Name()}, nil
}
