package mainboilerplate

import (
	"os"

	log "github.com/sirupsen/logrus"
)

// InitLog sets the global logrus level from a config string ("debug",
// "info", "warn", "error"), such as mcfsolve's --log-level flag value, and
// directs output to stderr.
func InitLog(level string) {
	log.SetOutput(os.Stderr)

	parsed, err := log.ParseLevel(level)
	if err != nil {
		log.WithFields(log.Fields{"level": level, "err": err}).Fatal("invalid Log.Level")
	}
	log.SetLevel(parsed)
}

// LogPanic recovers a panic, logs the recovered value at Error level under
// the "panic" field, and re-panics so the process still exits nonzero. Deferred at the
// top of main().
func LogPanic() {
	if r := recover(); r != nil {
		log.WithField("panic", r).Error("recovered panic")
		panic(r)
	}
}
