package domain

import "fmt"

// Outcome is the string-typed signal returned to the billing host for one
// handled event. The host treats the literal success token as success and
// any other string as an operator-facing failure message.
type Outcome string

const successToken = "success"

func Success() Outcome {
	return successToken
}

func Failure(msg string) Outcome {
	return Outcome(msg)
}

func Failuref(format string, args ...any) Outcome {
	return Outcome(fmt.Sprintf(format, args...))
}

func (o Outcome) OK() bool {
	return o == successToken
}

func (o Outcome) String() string {
	return string(o)
}
