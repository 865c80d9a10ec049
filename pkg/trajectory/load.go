package trajectory

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Decode reads a single trajectory record.
func Decode(r io.Reader) (*Log, error) {
	var log Log
	if err := json.NewDecoder(r).Decode(&log); err != nil {
		return nil, fmt.Errorf("failed to decode trajectory: %w", err)
	}
	return &log, nil
}

// Load reads the trajectory at path and names it after the file.
func Load(path string) (*Log, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	log, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Model = ModelFromFilename(path)
	return log, nil
}
