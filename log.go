package hashtable

import "go.uber.org/zap"

// Lgr receives the table's debug events (currently every resize). It
// discards everything until SetLogger installs a real logger.
var Lgr = zap.NewNop()

// SetLogger replaces Lgr; a nil logger restores the no-op default.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	Lgr = l.Named("hashtable")
}
