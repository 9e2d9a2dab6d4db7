package platform

import "fmt"

// Error is a failure reported by the runtime as a generic result
// code. It is the translated form of any Result other than ResultOK.
type Error struct {
	Code Result
}

func (e Error) Error() string {
	return "platform: " + e.Code.String()
}

// ResultError translates a generic result code: nil for ResultOK, an
// Error carrying the code otherwise. Unlike the call-site specific
// code spaces, Result is open ended, so no code is "unknown" here.
func ResultError(code Result) error {
	if code == ResultOK {
		return nil
	}
	return Error{Code: code}
}

// UnknownCodeError reports a result code outside the closed set a
// call site expects. Newer runtime revisions can introduce codes this
// library does not know; callers get a typed error instead of a
// crash and should treat the operation as failed.
type UnknownCodeError struct {
	Op   string
	Code uint32
}

func (e UnknownCodeError) Error() string {
	return fmt.Sprintf("platform: %s returned unknown result code %d", e.Op, e.Code)
}
