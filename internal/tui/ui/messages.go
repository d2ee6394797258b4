package ui

// CopiedMsg reports the outcome of copying code to the clipboard.
type CopiedMsg struct {
	What string
	Err  error
}

// StatusMsg replaces the status line.
type StatusMsg struct {
	Text string
	Err  bool
}
