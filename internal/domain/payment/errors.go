package payment

import "fmt"

// APIProblem is the structured error body the gateway returns with any
// status >= 400 (RFC 7807 style).
type APIProblem struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail"`
	Instance string `json:"instance"`
}

// APIError is returned for any failed gateway call: transport failures are
// reported with StatusCode 500 and no Problem; HTTP errors carry the parsed
// problem body when one was present.
type APIError struct {
	Operation  string // logical operation name, e.g. "CreateOrder"
	StatusCode int
	Problem    *APIProblem
	Err        error // underlying transport error, if any
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("error when calling '%s', HTTP status code - %d", e.Operation, e.StatusCode)
	if e.Problem != nil {
		msg += fmt.Sprintf(": title - '%s', status - '%d', type - '%s', message - '%s', instance - '%s'",
			e.Problem.Title, e.Problem.Status, e.Problem.Type, e.Problem.Detail, e.Problem.Instance)
	}
	if e.Err != nil {
		msg += fmt.Sprintf(": %v", e.Err)
	}
	return msg
}

func (e *APIError) Unwrap() error {
	return e.Err
}
