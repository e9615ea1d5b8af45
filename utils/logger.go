package utils

import (
	"fmt"
	"io"
	"log"
	"os"
)

type Log interface {
	Debug(a ...interface{})
	Info(a ...interface{})
	Warn(a ...interface{})
	Error(a ...interface{})
	Output(a ...interface{})
}

type LevelType int

const (
	ERROR LevelType = iota
	WARN
	INFO
	DEBUG
)

// NullLog is a logger that does nothing
type NullLog struct {
}

func (nl *NullLog) Debug(...interface{}) {
}

func (nl *NullLog) Info(...interface{}) {
}

func (nl *NullLog) Warn(...interface{}) {
}

func (nl *NullLog) Error(...interface{}) {
}

func (nl *NullLog) Output(...interface{}) {
}

// defaultLogger writes leveled messages to stderr and plain output to stdout.
type defaultLogger struct {
	logLevel  LevelType
	debugLog  *log.Logger
	infoLog   *log.Logger
	warnLog   *log.Logger
	errorLog  *log.Logger
	outputLog *log.Logger
}

func NewDefaultLogger(logLevel LevelType) Log {
	return newLogger(logLevel, os.Stderr, os.Stdout)
}

func newLogger(logLevel LevelType, logWriter, outputWriter io.Writer) *defaultLogger {
	return &defaultLogger{
		logLevel:  logLevel,
		debugLog:  log.New(logWriter, "[Debug] ", 0),
		infoLog:   log.New(logWriter, "[Info] ", 0),
		warnLog:   log.New(logWriter, "[Warn] ", 0),
		errorLog:  log.New(logWriter, "[Error] ", 0),
		outputLog: log.New(outputWriter, "", 0),
	}
}

func (logger *defaultLogger) Debug(a ...interface{}) {
	if logger.logLevel >= DEBUG {
		logger.println(logger.debugLog, a...)
	}
}

func (logger *defaultLogger) Info(a ...interface{}) {
	if logger.logLevel >= INFO {
		logger.println(logger.infoLog, a...)
	}
}

func (logger *defaultLogger) Warn(a ...interface{}) {
	if logger.logLevel >= WARN {
		logger.println(logger.warnLog, a...)
	}
}

func (logger *defaultLogger) Error(a ...interface{}) {
	if logger.logLevel >= ERROR {
		logger.println(logger.errorLog, a...)
	}
}

func (logger *defaultLogger) Output(a ...interface{}) {
	logger.println(logger.outputLog, a...)
}

func (logger *defaultLogger) println(target *log.Logger, values ...interface{}) {
	target.Println(fmt.Sprint(values...))
}
