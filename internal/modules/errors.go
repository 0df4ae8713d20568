package modules

import "fmt"

// InvalidHTTPResponseError reports that a server returned an unparseable
// body where a structured one was required.
type InvalidHTTPResponseError struct {
	Endpoint string
}

func (e *InvalidHTTPResponseError) Error() string {
	return fmt.Sprintf("%s: invalid HTTP response", e.Endpoint)
}
