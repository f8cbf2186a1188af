package httpclient

// Outcome is the final result of a dispatched request, delivered exactly once
// to the bound completion handler.
type Outcome struct {
	// Succeeded reports whether the transport completed the exchange.
	// False covers connection failures, DNS errors and timeouts; StatusCode
	// and Body are meaningless in that case.
	Succeeded bool
	// StatusCode is the HTTP status returned by the backend.
	StatusCode int
	// Body is the raw response body.
	Body []byte
}

// Status is the tri-state classification of an Outcome.
type Status int

const (
	// StatusTransportFailed means the exchange never completed.
	StatusTransportFailed Status = iota
	// StatusInvalid means the backend answered with a non-2xx code.
	StatusInvalid
	// StatusValid means the backend answered with a 2xx code.
	StatusValid
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusTransportFailed:
		return "transport_failed"
	case StatusInvalid:
		return "invalid"
	case StatusValid:
		return "valid"
	default:
		return "unknown"
	}
}

// Classify maps an outcome onto the tri-state classification. It must be
// consulted before decoding: an error response's body is never parsed.
func Classify(o Outcome) Status {
	if !o.Succeeded {
		return StatusTransportFailed
	}
	if o.StatusCode >= 200 && o.StatusCode < 300 {
		return StatusValid
	}
	return StatusInvalid
}

// Valid reports whether the outcome carries a decodable response.
func (o Outcome) Valid() bool {
	return Classify(o) == StatusValid
}
