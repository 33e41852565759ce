package jsonutil

import (
	"encoding/json"
	"fmt"
	"os"
)

// ReadRaw reads pathname and makes sure it holds one well-formed JSON value
// without committing to its shape.
func ReadRaw(pathname string) (json.RawMessage, error) {
	b, err := os.ReadFile(pathname)
	if err != nil {
		return nil, err
	}
	if !json.Valid(b) {
		return nil, fmt.Errorf("%s does not contain valid JSON", pathname)
	}
	return json.RawMessage(b), nil
}
