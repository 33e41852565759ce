package jsonutil

import (
	"encoding/json"
	"io"
)

func PrettyPrint(w io.Writer, i interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "\t")
	return enc.Encode(i)
}
