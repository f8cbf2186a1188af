package httpclient

import "net/http"

// Method is the closed set of HTTP verbs the backend transport supports.
// PUT, DELETE and PATCH are deliberately absent: every supported verb gets a
// named constructor, so a mistyped verb is a compile error rather than a
// runtime surprise. Extending the set means adding a constant here and a
// matching constructor below.
type Method int

const (
	// MethodGet issues a GET request with no body.
	MethodGet Method = iota
	// MethodPost issues a POST request with a JSON body.
	MethodPost
)

// String returns the wire verb, or "" for values outside the enumeration.
func (m Method) String() string {
	switch m {
	case MethodGet:
		return http.MethodGet
	case MethodPost:
		return http.MethodPost
	default:
		return ""
	}
}

// Request describes an outbound request to the backend API.
type Request struct {
	// Method is the HTTP verb.
	Method Method
	// Route is the path segment appended to the client's base URL.
	Route string
	// Body is the pre-encoded JSON payload. Empty for GET requests.
	Body string
}

// NewGetRequest constructs a GET request for the given route.
func NewGetRequest(route string) Request {
	return Request{Method: MethodGet, Route: route}
}

// NewPostRequest constructs a POST request carrying a JSON body.
func NewPostRequest(route, body string) Request {
	return Request{Method: MethodPost, Route: route, Body: body}
}
