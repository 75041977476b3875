package util

import (
	"log"
	"os"
)

var LoggingEnabled = false

// stdout belongs to the language server transport, so everything goes to stderr
var logger = log.New(os.Stderr, "rv32asm: ", log.LstdFlags)

func LogF(format string, args ...interface{}) {
	if !LoggingEnabled {
		return
	}
	logger.Printf(format, args...)
}
