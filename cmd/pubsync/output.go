package main

import (
	"encoding/json"
	"fmt"
	"os"
)

// outputJSON writes a value as formatted JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// exitWithError reports an error in the active output format and exits.
func exitWithError(code int, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if jsonOutput {
		outputJSON(ErrorResponse{Error: msg})
	} else {
		fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	}
	os.Exit(code)
}

// UpdateResponse summarizes an update or preview run.
type UpdateResponse struct {
	Inserted   int    `json:"inserted"`
	CutoffYear int    `json:"cutoff_year"`
	Target     string `json:"target,omitempty"`
}

// CheckResponse reports which splice path the target document offers.
type CheckResponse struct {
	Status string `json:"status"`
	Target string `json:"target"`
}

// ErrorResponse is a JSON error response.
type ErrorResponse struct {
	Error string `json:"error"`
}
