package outbound

// TaskDispatcher abstracts the worker pool so services do not depend on a
// concrete pool implementation.
type TaskDispatcher interface {
	Submit(task func()) error
}
