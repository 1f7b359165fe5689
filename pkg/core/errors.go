package core

import "fmt"

// InvalidSceneError reports a scene that cannot be rendered: an empty
// primitive list handed to the BVH, a degenerate camera, a zero-radius sphere.
// Numeric corner cases during tracing are never reported this way.
type InvalidSceneError struct {
	Reason string
}

// NewInvalidSceneError creates an InvalidSceneError with a formatted reason
func NewInvalidSceneError(format string, args ...interface{}) *InvalidSceneError {
	return &InvalidSceneError{Reason: fmt.Sprintf(format, args...)}
}

func (e *InvalidSceneError) Error() string {
	return "invalid scene: " + e.Reason
}
