package models

import "time"

// ErrorLog is one recorded server-side failure
type ErrorLog struct {
	ID        int       `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"`   // ERROR, WARN
	Source    string    `json:"source"`  // Component that reported it
	Message   string    `json:"message"` // Error message
	Detail    string    `json:"detail"`  // Request method and path, file name, ...
	Stack     string    `json:"stack"`   // Stack trace
	Context   string    `json:"context"` // Context information (JSON format)
}
