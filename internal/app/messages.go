// internal/app/messages.go
package app

// QuestionMsg is sent when a running check asks the listener something.
type QuestionMsg struct {
	req askRequest
}

// CheckDoneMsg is sent when a check returns.
type CheckDoneMsg struct {
	Index int
	Err   error
}

// StderrMsg is sent when stderr output is captured from the audio backend.
type StderrMsg struct {
	Line string
}

// PlayerErrorMsg is sent when a fire-and-forget player fails.
type PlayerErrorMsg struct {
	Err error
}
