package loader

import "fmt"

// MalformedLine - Custom error to inform that a dataset line could not be split into identifier and description
type MalformedLine struct {
	LineNo int64
	msg    string
}

// Error - Used to notify that a line was malformed
func (M MalformedLine) Error() string {
	if M.msg == "" {
		return "malformed line"
	}
	if M.LineNo > 0 {
		return fmt.Sprintf("malformed line %d: %s", M.LineNo, M.msg)
	}
	return fmt.Sprintf("malformed line: %s", M.msg)
}

// Is - Makes errors.Is match any MalformedLine regardless of line and message
func (M MalformedLine) Is(target error) bool {
	_, ok := target.(MalformedLine)
	return ok
}
