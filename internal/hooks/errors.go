package hooks

// ActionError is returned by hook actions. Its message is the user-facing
// form ("failed to create product"); the backend cause is kept for errors.Is
// and errors.As.
type ActionError struct {
	Action string
	Err    error
}

func (e *ActionError) Error() string { return "failed to " + e.Action }

func (e *ActionError) Unwrap() error { return e.Err }
