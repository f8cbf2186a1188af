// Package codec converts typed payload records to and from the JSON wire
// format used by the backend API.
//
// Decoding is best-effort: missing fields keep their zero value, fields whose
// JSON type does not match the target field are skipped, and unknown fields
// are ignored. Only syntactically malformed JSON is reported as an error.
package codec
