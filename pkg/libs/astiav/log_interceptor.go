package astiavstream

import (
	"context"
	"strings"

	"github.com/asticode/go-astiav"
	"github.com/asticode/go-astikit"
)

// LogInterceptor forwards libav logs to a logger. Only one interceptor should be started
// at a time since libav's log callback is global.
type LogInterceptor struct {
	ctx           context.Context
	l             astikit.CompleteLogger
	o             LogInterceptorOptions
	previousLevel *astiav.LogLevel
}

type LogInterceptorOptions struct {
	Level     astiav.LogLevel
	LevelFunc func(l astiav.LogLevel) (ll astikit.LoggerLevel, processed, stop bool)
	Logger    astikit.StdLogger
}

func NewLogInterceptor(o LogInterceptorOptions) *LogInterceptor {
	return &LogInterceptor{
		ctx: context.Background(),
		l:   astikit.AdaptStdLogger(o.Logger),
		o:   o,
	}
}

// Start installs the log callback. Logs emitted by classers unknown to this package are
// written with ctx.
func (li *LogInterceptor) Start(ctx context.Context) {
	// Store context
	if ctx != nil {
		li.ctx = ctx
	}

	// Set log level
	ll := astiav.GetLogLevel()
	li.previousLevel = &ll
	astiav.SetLogLevel(li.o.Level)

	// Set log callback
	astiav.SetLogCallback(li.callback)
}

func (li *LogInterceptor) Close() {
	if li.previousLevel != nil {
		astiav.SetLogLevel(*li.previousLevel)
		li.previousLevel = nil
	}
	astiav.ResetLogCallback()
}

func (li *LogInterceptor) callback(c astiav.Classer, level astiav.LogLevel, _, msg string) {
	// Process message
	msg = strings.TrimSpace(msg)
	if msg == "" {
		return
	}

	// Get context
	ctx := li.ctx

	// Process classer
	if c != nil {
		if cl := c.Class(); cl != nil {
			msg += ": " + cl.String()
		}
		if v, ok := classers.get(c); ok {
			ctx = v
		}
	}

	// Get log level
	var ll astikit.LoggerLevel
	var processed bool
	if li.o.LevelFunc != nil {
		var stop bool
		if ll, processed, stop = li.o.LevelFunc(level); stop {
			return
		}
	}
	if !processed {
		switch level {
		case astiav.LogLevelDebug, astiav.LogLevelVerbose:
			ll = astikit.LoggerLevelDebug
		case astiav.LogLevelInfo:
			ll = astikit.LoggerLevelInfo
		case astiav.LogLevelError, astiav.LogLevelFatal, astiav.LogLevelPanic:
			if level == astiav.LogLevelFatal {
				msg = "FATAL! " + msg
			} else if level == astiav.LogLevelPanic {
				msg = "PANIC! " + msg
			}
			ll = astikit.LoggerLevelError
		case astiav.LogLevelWarning:
			ll = astikit.LoggerLevelWarn
		default:
			return
		}
	}

	// Write
	li.l.WriteC(ctx, ll, "libav: "+msg)
}
