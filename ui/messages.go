package ui

// StatusMessage is the general-purpose demo message shown in the pub/sub
// tab's log.
type StatusMessage struct {
	Source string
	Text   string
}

// TickMessage is published by the background ticker in the pub/sub tab.
type TickMessage struct {
	N int
}

// DiagnosticsUpdate carries one line of output from a running diagnostic
// operation. Err is set on failure; Done marks the final update.
type DiagnosticsUpdate struct {
	Op   string
	Text string
	Err  error
	Done bool
}
