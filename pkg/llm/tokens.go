package llm

import (
	"fmt"

	"github.com/pkoukk/tiktoken-go"
)

// TokenCounter counts text length in the same units the target model
// bills and limits on.
type TokenCounter interface {
	Count(text string) int
}

// TiktokenCounter counts tokens with the encoding of the configured
// model family. There is no fallback scheme: if the encoding cannot be
// loaded the pipeline must not start, because every budget comparison
// would be meaningless.
type TiktokenCounter struct {
	encoding *tiktoken.Tiktoken
}

func NewTokenCounter(model string) (*TiktokenCounter, error) {
	encoding, err := tiktoken.EncodingForModel(model)
	if err != nil {
		return nil, fmt.Errorf("load tokenizer for model %q: %w", model, err)
	}
	return &TiktokenCounter{encoding: encoding}, nil
}

func (c *TiktokenCounter) Count(text string) int {
	return len(c.encoding.Encode(text, nil, nil))
}
