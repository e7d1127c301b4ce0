package core

import (
	"encoding/json"
	"fmt"
	"portfolio/models"
	"runtime"
	"strings"
	"sync"
	"time"
)

const defaultMaxErrorLogs = 100

// ErrorLogger keeps the most recent server errors in memory, oldest evicted first.
type ErrorLogger struct {
	mu        sync.RWMutex
	logs      []*models.ErrorLog
	maxLogs   int
	idCounter int
}

// ErrorLoggerInstance is the process-wide error log
var ErrorLoggerInstance = NewErrorLogger(defaultMaxErrorLogs)

// NewErrorLogger creates an error log holding at most maxLogs entries
func NewErrorLogger(maxLogs int) *ErrorLogger {
	if maxLogs <= 0 {
		maxLogs = defaultMaxErrorLogs
	}
	return &ErrorLogger{
		logs:    make([]*models.ErrorLog, 0, maxLogs),
		maxLogs: maxLogs,
	}
}

// SetMaxLogs changes the capacity, dropping the oldest entries if needed
func (e *ErrorLogger) SetMaxLogs(maxLogs int) {
	if maxLogs <= 0 {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.maxLogs = maxLogs
	if over := len(e.logs) - maxLogs; over > 0 {
		e.logs = e.logs[over:]
	}
}

// LogError records an error log entry and returns it
func (e *ErrorLogger) LogError(level, source, message, detail string, contextData map[string]interface{}) *models.ErrorLog {
	stack := stackTrace(3)

	contextJSON := ""
	if contextData != nil {
		if data, err := json.Marshal(contextData); err == nil {
			contextJSON = string(data)
		}
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if len(e.logs) >= e.maxLogs {
		e.logs = e.logs[len(e.logs)-e.maxLogs+1:]
	}

	e.idCounter++
	entry := &models.ErrorLog{
		ID:        e.idCounter,
		Timestamp: time.Now(),
		Level:     level,
		Source:    source,
		Message:   message,
		Detail:    detail,
		Stack:     stack,
		Context:   contextJSON,
	}
	e.logs = append(e.logs, entry)
	return entry
}

// GetErrorLogs returns recorded errors, latest first
func (e *ErrorLogger) GetErrorLogs() []*models.ErrorLog {
	e.mu.RLock()
	defer e.mu.RUnlock()

	total := len(e.logs)
	result := make([]*models.ErrorLog, total)
	for i := 0; i < total; i++ {
		result[i] = e.logs[total-1-i]
	}
	return result
}

// ClearErrorLogs removes all error logs
func (e *ErrorLogger) ClearErrorLogs() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.logs = make([]*models.ErrorLog, 0, e.maxLogs)
	e.idCounter = 0
}

func stackTrace(skip int) string {
	const maxDepth = 10
	var sb strings.Builder

	pcs := make([]uintptr, maxDepth)
	n := runtime.Callers(skip+1, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		fmt.Fprintf(&sb, "%s:%d %s\n", frame.File, frame.Line, frame.Function)
		if !more {
			break
		}
	}
	return sb.String()
}

// LogErrorWithContext records an error with context
func LogErrorWithContext(source, message, detail string, context map[string]interface{}) {
	ErrorLoggerInstance.LogError("ERROR", source, message, detail, context)
}

// LogWarn records a warning
func LogWarn(source, message, detail string) {
	ErrorLoggerInstance.LogError("WARN", source, message, detail, nil)
}
