// Package reports persists a rendered report to its destination.
//
// Every writer fully replaces what was at the destination. The result is an
// explicit Outcome; a failed write leaves the destination in an undefined
// state.
package reports

import "context"

// SuccessMessage is the Outcome message of a successful write.
const SuccessMessage = "Output file has been generated successfully."

// Outcome is the result of one write.
type Outcome struct {
	Destination string
	Bytes       int
	Message     string
	Err         error
}

// OK reports whether the write succeeded.
func (o Outcome) OK() bool {
	return o.Err == nil
}

// Writer persists report content under a destination name.
type Writer interface {
	Write(ctx context.Context, content, destination string) Outcome
}

func succeeded(destination string, n int) Outcome {
	return Outcome{Destination: destination, Bytes: n, Message: SuccessMessage}
}

func failed(destination string, err error) Outcome {
	return Outcome{Destination: destination, Err: err}
}
