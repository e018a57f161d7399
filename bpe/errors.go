package bpe

import "errors"

// Sentinel errors returned while parsing the three BPE asset files. Encoding
// itself never fails; these only occur at load time.
var (
	ErrUnknownSpecialName = errors.New("bpe: unknown special token name")
	ErrMalformedLine      = errors.New("bpe: malformed line")
)

// LoadError wraps a failure encountered while loading tokenizer assets,
// naming the operation and file path that failed.
type LoadError struct {
	Op   string
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Path != "" {
		return "bpe " + e.Op + " [" + e.Path + "]: " + e.Err.Error()
	}
	return "bpe " + e.Op + ": " + e.Err.Error()
}

func (e *LoadError) Unwrap() error { return e.Err }
