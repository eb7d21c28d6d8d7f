package store

import "fmt"

// Op names the store operation a Result describes.
type Op string

const (
	OpLoad Op = "load"
	OpSave Op = "save"
)

// Result reports the outcome of a store call. Store never returns errors
// directly; callers inspect Result to decide whether to tell the user.
type Result struct {
	OK  bool
	Op  Op
	Key string
	Err error
}

func ok(op Op, key string) Result {
	return Result{OK: true, Op: op, Key: key}
}

func failed(op Op, key string, err error) Result {
	return Result{Op: op, Key: key, Err: err}
}

// AsError converts a failed result into an error, nil otherwise.
func (r Result) AsError() error {
	if r.OK {
		return nil
	}
	if r.Key == "" {
		return fmt.Errorf("store: %s: %w", r.Op, r.Err)
	}
	return fmt.Errorf("store: %s %s: %w", r.Op, r.Key, r.Err)
}
