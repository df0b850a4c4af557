package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

const (
	logDir      = "logs"
	logFileName = "zombies.log"
	maxLogSize  = 10 * 1024 * 1024 // 10MB
)

// sessionID tags every log line of one run
var sessionID = uuid.NewString()

// setupLogging routes the standard logger to logs/zombies.log when debug is
// set and discards it otherwise. The terminal belongs to tcell, so the logger
// never writes to stdout or stderr. Returns the open file, or nil
func setupLogging(debug bool) *os.File {
	log.SetPrefix(fmt.Sprintf("[%s] ", sessionID[:8]))
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds)

	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	rotateLog(logPath)

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.Printf("session %s started", sessionID)
	return f
}

// rotateLog moves an oversized log aside under a timestamped name
func rotateLog(logPath string) {
	info, err := os.Stat(logPath)
	if err != nil || info.Size() <= maxLogSize {
		return
	}
	ext := filepath.Ext(logFileName)
	base := logFileName[:len(logFileName)-len(ext)]
	rotated := filepath.Join(logDir, fmt.Sprintf("%s-%s%s", base, time.Now().Format("20060102-150405"), ext))
	os.Rename(logPath, rotated)
}
