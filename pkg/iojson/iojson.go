// Package iojson reads and writes the JSON documents dojo exchanges on
// stdin and stdout.
package iojson

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Error is the document written for fatal command errors.
type Error struct {
	Message string         `json:"message"`
	Data    map[string]any `json:"data"`
}

// fallbackError builds the error document by hand for when marshaling
// itself failed.
func fallbackError(msg string, cause error) string {
	msgBytes, _ := json.Marshal(msg)
	errBytes, _ := json.Marshal(cause.Error())
	return fmt.Sprintf(`{"message":%s,"data":{"json_error":%s}}`, msgBytes, errBytes)
}

// MarshalError renders an Error document. It never fails.
func MarshalError(msg string, data map[string]any) string {
	bits, err := json.MarshalIndent(Error{Message: msg, Data: data}, "", "  ")
	if err != nil {
		return fallbackError(msg, err)
	}
	return string(bits)
}

// WriteErrorTo writes an Error document to w.
func WriteErrorTo(w io.Writer, msg string, data map[string]any) error {
	_, err := fmt.Fprintln(w, MarshalError(msg, data))
	return err
}

// WriteError writes an Error document to stderr.
func WriteError(msg string, data map[string]any) error {
	return WriteErrorTo(os.Stderr, msg, data)
}

// WriteWith writes obj as indented JSON to w. Marshaling failures are
// reported to ew as an Error document.
func WriteWith(w io.Writer, ew io.Writer, obj any) error {
	bits, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		return WriteErrorTo(ew, "marshal output", map[string]any{"json_error": err.Error()})
	}

	_, err = fmt.Fprintln(w, string(bits))
	return err
}
