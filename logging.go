package main

import (
	"fmt"
	"log"
	"os"
)

// setupLogging sends the standard logger to path, keeping the previous run's
// log as path.1. A path of "-" keeps logging on stderr and returns a nil file.
func setupLogging(path string) (*os.File, error) {
	if path == "" {
		return nil, fmt.Errorf("log file path is empty")
	}
	if path == "-" {
		log.SetOutput(os.Stderr)
		return nil, nil
	}

	_ = os.Remove(path + ".1")

	if _, err := os.Stat(path); err == nil {
		if err := os.Rename(path, path+".1"); err != nil {
			return nil, fmt.Errorf("failed to rotate existing log: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}

	log.SetOutput(f)
	return f, nil
}
