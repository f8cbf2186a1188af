package codec

import (
	"encoding/json"
	"fmt"
)

// Encode converts a payload record into its canonical JSON string.
// It fails only for values JSON cannot represent (channels, funcs, cycles);
// any well-formed record type encodes without error.
func Encode(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("codec: encode: %w", err)
	}
	return string(data), nil
}

// Decode parses JSON text into out, which must be a pointer to the target
// record. Field-level mismatches are tolerated: the unmarshaler fills every
// field it can and the mismatch is dropped. A syntax error in the input is
// returned; out is left zeroed in that case.
func Decode(data string, out any) error {
	err := json.Unmarshal([]byte(data), out)
	if err == nil {
		return nil
	}
	// Partial fill on a type mismatch is the contract, not a failure.
	if _, ok := err.(*json.UnmarshalTypeError); ok {
		return nil
	}
	return fmt.Errorf("codec: decode: %w", err)
}
