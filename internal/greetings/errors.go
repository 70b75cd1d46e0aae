package greetings

import "fmt"

type TableError struct {
	Path   string
	Code   string
	Reason string
	Err    error
}

func (e *TableError) Error() string {
	msg := "Greeting table is invalid"
	if e.Path != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.Path)
	}
	if e.Code != "" {
		msg = fmt.Sprintf("%s: %s: %s", msg, e.Code, e.Reason)
	} else {
		msg = fmt.Sprintf("%s: %s", msg, e.Reason)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %s", msg, e.Err)
	}
	return msg
}

func (e *TableError) Unwrap() error {
	return e.Err
}
