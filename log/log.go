/*
 * Copyright (c) 2017-2020 The qitmeer developers
 */

package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	elog "github.com/ethereum/go-ethereum/log"
	"github.com/jrick/logrotate/rotator"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// Logger writes key/value pairs at a level.
type Logger = elog.Logger

// Lvl is a log level.
type Lvl = elog.Lvl

const (
	LvlCrit  = elog.LvlCrit
	LvlError = elog.LvlError
	LvlWarn  = elog.LvlWarn
	LvlInfo  = elog.LvlInfo
	LvlDebug = elog.LvlDebug
	LvlTrace = elog.LvlTrace
)

var (
	mu      sync.Mutex
	glogger *elog.GlogHandler
	level   = LvlInfo

	logWrite *logWriter
)

// logWriter implements an io.Writer that outputs to both standard error and
// the write-end pipe of an initialized log rotator.
type logWriter struct {
	// logRotator is one of the logging outputs.  It should be closed on
	// application shutdown.
	logRotator *rotator.Rotator

	// Use for color terminal
	colorableWrite io.Writer

	out io.Writer
}

func (lw *logWriter) Init() {
	lw.out = os.Stderr
	// init a colorful logger if possible
	usecolor := isatty.IsTerminal(os.Stderr.Fd()) && os.Getenv("TERM") != "dumb"

	if usecolor {
		lw.colorableWrite = colorable.NewColorableStderr()
	}
}

func (lw *logWriter) Close() {
	if lw.logRotator != nil {
		lw.logRotator.Close()
		lw.logRotator = nil
	}
}

func (lw *logWriter) IsUseColor() bool {
	return lw.colorableWrite != nil
}

// Write sends p to every output. It takes mu, so outputs can be swapped
// while other goroutines log.
func (lw *logWriter) Write(p []byte) (n int, err error) {
	mu.Lock()
	defer mu.Unlock()

	if lw.logRotator != nil {
		lw.logRotator.Write(p)
	}

	if lw.colorableWrite != nil {
		lw.colorableWrite.Write(p)
	} else {
		lw.out.Write(p)
	}
	return len(p), nil
}

func init() {
	// output set to Stderr, Go runtime exceptions are printed to stderr as
	// well.
	logWrite = &logWriter{}
	logWrite.Init()
	setup()
}

// setup installs a fresh glog handler over logWrite on the root logger.
// Callers hold mu or run from init.
func setup() {
	glogger = elog.NewGlogHandler(elog.StreamHandler(io.Writer(logWrite), elog.TerminalFormat(logWrite.IsUseColor())))
	glogger.Verbosity(level)
	elog.Root().SetHandler(glogger)
}

// New returns a logger carrying ctx that writes through the root handler.
func New(ctx ...interface{}) Logger {
	return elog.New(ctx...)
}

// SetLevel sets the verbosity from one of trace, debug, info, warn, error
// or crit.
func SetLevel(s string) error {
	lvl, err := elog.LvlFromString(s)
	if err != nil {
		return err
	}
	mu.Lock()
	defer mu.Unlock()
	level = lvl
	glogger.Verbosity(lvl)
	return nil
}

// SetWriter redirects the terminal output to w without colour. A nil w
// restores standard error.
func SetWriter(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w == nil {
		logWrite.Init()
	} else {
		logWrite.out = w
		logWrite.colorableWrite = nil
	}
	setup()
}

// InitLogRotator initializes the logging rotater to write logs to logFile and
// create roll files in the same directory.
func InitLogRotator(logFile string) error {
	logDir, _ := filepath.Split(logFile)
	if logDir != "" {
		if err := os.MkdirAll(logDir, 0700); err != nil {
			return fmt.Errorf("failed to create log directory: %v", err)
		}
	}
	r, err := rotator.New(logFile, 10*1024, false, 3)
	if err != nil {
		return fmt.Errorf("failed to create file rotator: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	logWrite.Close()
	logWrite.logRotator = r
	return nil
}

// Close flushes and closes the log rotator, if any.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	logWrite.Close()
}
