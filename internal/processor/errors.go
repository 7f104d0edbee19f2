package processor

import "fmt"

// EngineError reports a failed or missing external binary invocation.
type EngineError struct {
	Binary string
	Err    error
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("engine %s: %v", e.Binary, e.Err)
}

func (e *EngineError) Unwrap() error {
	return e.Err
}
