package utils

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync" // For thread-safe initialization

	"github.com/google/uuid"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogFilePath is where the verbose log is written, relative to the working directory.
var LogFilePath = filepath.Join(".docgen", "docgen.log")

// Logger represents a workspace logger.
type Logger struct {
	logger                 *log.Logger
	out                    io.Writer
	in                     io.Reader
	userInteractionEnabled bool // Flag to control user interaction
	jsonMode               bool
	correlationID          string
}

var (
	globalLogger *Logger
	once         sync.Once
)

// GetLogger returns the singleton instance of Logger.
// It initializes the logger with a file handler that rotates logs.
// The skipPrompts parameter determines if user interaction is enabled.
// This value can be overridden on subsequent calls to GetLogger.
func GetLogger(skipPrompts bool) *Logger {
	once.Do(func() {
		logFile := &lumberjack.Logger{
			Filename:   LogFilePath,
			MaxSize:    15, // megabytes
			MaxBackups: 3,
			MaxAge:     28,   // days
			Compress:   true, // disabled by default
		}
		globalLogger = &Logger{
			logger:        log.New(logFile, "", log.LstdFlags),
			out:           os.Stdout,
			in:            os.Stdin,
			correlationID: uuid.NewString(),
		}
	})
	// Always update userInteractionEnabled, allowing it to be overridden
	globalLogger.userInteractionEnabled = !skipPrompts
	if os.Getenv("DOCGEN_JSON_LOGS") == "1" {
		globalLogger.jsonMode = true
	}
	if cid := os.Getenv("DOCGEN_CORRELATION_ID"); cid != "" {
		globalLogger.correlationID = cid
	}
	return globalLogger
}

// NewLogger creates a standalone logger writing to w, for tests and embedding.
// Console output goes to out and confirmations are read from in.
func NewLogger(w, out io.Writer, in io.Reader, skipPrompts bool) *Logger {
	return &Logger{
		logger:                 log.New(w, "", log.LstdFlags),
		out:                    out,
		in:                     in,
		userInteractionEnabled: !skipPrompts,
		correlationID:          uuid.NewString(),
	}
}

// CorrelationID identifies the current run in the log.
func (w *Logger) CorrelationID() string {
	return w.correlationID
}

// Close closes the logger resources.
func (w *Logger) Close() error {
	if logFile, ok := w.logger.Writer().(*lumberjack.Logger); ok {
		return logFile.Close()
	}
	return nil
}

// LogWorkspaceOperation logs file operations. These messages go only to the log file.
func (w *Logger) LogWorkspaceOperation(operation, details string) {
	if w.jsonMode {
		w.encode(map[string]any{"level": "info", "op": operation, "msg": details, "cid": w.correlationID})
		return
	}
	w.logger.Printf("Operation: %s, Details: %s", operation, details)
}

// LogUserInteraction logs user interactions that require a response, and prints to stdout.
func (w *Logger) LogUserInteraction(message string) {
	w.logger.Printf("User Interaction: %s", message)
	fmt.Fprint(w.out, message)
}

// LogProcessStep logs the current step in a process and echoes it to the console.
func (w *Logger) LogProcessStep(step string) {
	w.Log("Process Step: " + step)
	fmt.Fprintln(w.out, step)
}

// Log logs a general message only to the log file.
func (w *Logger) Log(message string) {
	if w.jsonMode {
		w.encode(map[string]any{"level": "info", "msg": message, "cid": w.correlationID})
		return
	}
	w.logger.Print(message)
}

// Logf logs a formatted general message only to the log file.
func (w *Logger) Logf(format string, v ...interface{}) {
	if w.jsonMode {
		w.Log(fmt.Sprintf(format, v...))
		return
	}
	w.logger.Printf(format, v...)
}

func (w *Logger) LogError(err error) {
	if w.jsonMode {
		w.encode(map[string]any{"level": "error", "error": err.Error(), "cid": w.correlationID})
		return
	}
	w.logger.Printf("Error: %s", err)
}

func (w *Logger) encode(record map[string]any) {
	record["ts"] = GetTimestamp()
	_ = json.NewEncoder(w.logger.Writer()).Encode(record)
}

// AskForConfirmation prompts the user with a message and waits for a 'yes' or 'no' response.
// It returns true for 'yes' and false for 'no'. When prompts are skipped the
// default response is used.
func (w *Logger) AskForConfirmation(prompt string, defaultResponse bool) bool {
	if !w.userInteractionEnabled {
		w.Log("Skipping user confirmation in non-interactive mode.")
		return defaultResponse
	}
	reader := bufio.NewReader(w.in)
	for {
		w.LogUserInteraction(fmt.Sprintf("%s (yes/no): ", prompt))
		response, err := reader.ReadString('\n')
		response = strings.ToLower(strings.TrimSpace(response))
		switch response {
		case "yes", "y":
			return true
		case "no", "n":
			return false
		}
		if err != nil {
			// Input closed without an answer.
			return defaultResponse
		}
		w.LogUserInteraction("Invalid input. Please type 'yes' or 'no'.\n")
	}
}
