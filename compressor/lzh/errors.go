package lzh

import "errors"

// Package errors. Values are attached with fmt.Errorf and %w; match with errors.Is.
var (
	ErrHeaderTooShort  = errors.New("input ends inside the container header")
	ErrTooManySymbols  = errors.New("frequency table has more entries than the header can count")
	ErrTruncated       = errors.New("token stream ended before the original length was reached")
	ErrInvalidDistance = errors.New("match distance reaches before the start of the output")
	ErrInvalidSymbol   = errors.New("match length code does not decode to a symbol")
	ErrInvalidChain    = errors.New("search chain depth must be non-negative")
)
