// Package response defines the JSON payloads returned by the HTTP API.
package response

// Error is the body of every error response returned by the API.
type Error struct {
	Error string `json:"error"`
}

var (
	// MissingURLFieldResponse is returned when the request body lacks a url field.
	MissingURLFieldResponse = Error{Error: "Missing 'url' field in request body"}
	// EmptyURLResponse is returned when the submitted url is empty or whitespace-only.
	EmptyURLResponse = Error{Error: "URL cannot be empty"}
	// InvalidURLFormatResponse is returned when the submitted url fails validation.
	InvalidURLFormatResponse = Error{Error: "Invalid URL format"}
	// InvalidShortCodeResponse is returned when a short code has the wrong shape.
	InvalidShortCodeResponse = Error{Error: "Invalid short code format"}
	// ShortCodeNotFoundResponse is returned when a short code is unknown.
	ShortCodeNotFoundResponse = Error{Error: "Short code not found"}
	// ServerErrorResponse is returned on unexpected internal faults.
	// Internal details are never exposed to the caller.
	ServerErrorResponse = Error{Error: "Internal server error"}
)
