// Package input reads raw configuration text from files or stdin.
package input

import (
	"fmt"
	"io"
	"os"
)

// Stdin is the conventional argument meaning "read from standard input".
const Stdin = "-"

// ReadSource returns the contents of path, or all of r when path is "-".
func ReadSource(path string, r io.Reader) ([]byte, error) {
	if path == Stdin {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}
