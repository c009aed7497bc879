package surveillance

import "fmt"

// ErrInvalidInput marks a classification result or coordinate that was
// rejected before orchestration began. Nothing is stored or notified for
// such an event.
var ErrInvalidInput = fmt.Errorf("invalid alert input")
