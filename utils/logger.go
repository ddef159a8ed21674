package utils

import (
	"fmt"
	"log"
	"os"
	"time"
)

// Logger writes to a log file and mirrors everything to stdout. Debug lines
// are dropped unless verbose is set.
type Logger struct {
	file       *os.File
	verbose    bool
	infoLog    *log.Logger
	warnLog    *log.Logger
	errorLog   *log.Logger
	debugLog   *log.Logger
	successLog *log.Logger
}

func NewLogger(filename string, verbose bool) (*Logger, error) {
	file, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, err
	}

	return &Logger{
		file:       file,
		verbose:    verbose,
		infoLog:    log.New(file, "[INFO] ", log.Ldate|log.Ltime),
		warnLog:    log.New(file, "[WARN] ", log.Ldate|log.Ltime),
		errorLog:   log.New(file, "[ERROR] ", log.Ldate|log.Ltime|log.Lshortfile),
		debugLog:   log.New(file, "[DEBUG] ", log.Ldate|log.Ltime),
		successLog: log.New(file, "[SUCCESS] ", log.Ldate|log.Ltime),
	}, nil
}

func (l *Logger) Close() error {
	return l.file.Close()
}

func (l *Logger) Info(message string) {
	l.infoLog.Println(message)
	fmt.Println("[INFO]", message)
}

func (l *Logger) Warn(message string) {
	l.warnLog.Println(message)
	fmt.Println("[WARN]", message)
}

func (l *Logger) Error(message string, err error) {
	l.errorLog.Printf("%s: %v\n", message, err)
	fmt.Printf("[ERROR] %s: %v\n", message, err)
}

func (l *Logger) Debug(message string) {
	if !l.verbose {
		return
	}
	l.debugLog.Println(message)
	fmt.Println("[DEBUG]", message)
}

func (l *Logger) Success(message string) {
	l.successLog.Println(message)
	fmt.Println("[SUCCESS]", message)
}

func (l *Logger) LogSession(records int, duration time.Duration) {
	msg := fmt.Sprintf("Scraped %d businesses in %v", records, duration.Round(time.Second))
	l.successLog.Println(msg)
	fmt.Println("[SESSION]", msg)
}
