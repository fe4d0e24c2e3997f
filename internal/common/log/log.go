package log

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Field is a structured log field.
type Field = zap.Field

type correlationIDKey struct{}

var logger atomic.Pointer[zap.Logger]

func init() {
	logger.Store(zap.NewNop())
}

type options struct {
	level      zapcore.Level
	env        string
	caller     bool
	callerSkip int
}

type Option func(*options)

func WithLevel(level string) Option {
	return func(o *options) {
		var l zapcore.Level
		if err := l.UnmarshalText([]byte(strings.ToLower(level))); err == nil {
			o.level = l
		}
	}
}

func DebugLevel() Option {
	return func(o *options) { o.level = zapcore.DebugLevel }
}

func InfoLevel() Option {
	return func(o *options) { o.level = zapcore.InfoLevel }
}

func WithEnv(env string) Option {
	return func(o *options) { o.env = env }
}

func WithCaller(enabled bool) Option {
	return func(o *options) { o.caller = enabled }
}

// Init replaces the process logger. Local environments get a console encoder,
// everything else writes JSON to stdout.
func Init(name string, opts ...Option) {
	o := &options{level: zapcore.InfoLevel, callerSkip: 1}
	for _, opt := range opts {
		opt(o)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "timestamp"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	encoder := zapcore.NewJSONEncoder(encCfg)
	if o.env == "" || o.env == "local" {
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encCfg)
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), zap.NewAtomicLevelAt(o.level))

	zapOpts := []zap.Option{zap.Fields(zap.String("app", name))}
	if o.caller {
		zapOpts = append(zapOpts, zap.AddCaller(), zap.AddCallerSkip(o.callerSkip))
	}

	logger.Store(zap.New(core, zapOpts...))
}

// InitForTest installs a development logger that only prints warnings and above.
func InitForTest() {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	l, err := cfg.Build()
	if err != nil {
		l = zap.NewNop()
	}
	logger.Store(l)
}

// Replace installs l as the process logger and returns a func restoring the
// previous one.
func Replace(l *zap.Logger) (restore func()) {
	prev := logger.Swap(l)
	return func() { logger.Store(prev) }
}

// Logger returns the underlying zap logger, used by integrations such as newrelic.
func Logger() *zap.Logger {
	return logger.Load()
}

func Sync() {
	_ = logger.Load().Sync()
}

func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

func CorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(correlationIDKey{}).(string)
	return id
}

func withContext(ctx context.Context, fields []Field) []Field {
	if id := CorrelationID(ctx); id != "" {
		fields = append(fields, zap.String("correlationId", id))
	}
	return fields
}

func Debug(ctx context.Context, msg string, fields ...Field) {
	logger.Load().Debug(msg, withContext(ctx, fields)...)
}

func Info(ctx context.Context, msg string, fields ...Field) {
	logger.Load().Info(msg, withContext(ctx, fields)...)
}

func Warn(ctx context.Context, msg string, fields ...Field) {
	logger.Load().Warn(msg, withContext(ctx, fields)...)
}

func Error(ctx context.Context, msg string, fields ...Field) {
	logger.Load().Error(msg, withContext(ctx, fields)...)
}

func Panic(ctx context.Context, msg string, fields ...Field) {
	logger.Load().Panic(msg, withContext(ctx, fields)...)
}

func Fatal(ctx context.Context, msg string, fields ...Field) {
	logger.Load().Fatal(msg, withContext(ctx, fields)...)
}

func Debugf(ctx context.Context, format string, args ...interface{}) {
	Debug(ctx, fmt.Sprintf(format, args...))
}

func Infof(ctx context.Context, format string, args ...interface{}) {
	Info(ctx, fmt.Sprintf(format, args...))
}

func Warnf(ctx context.Context, format string, args ...interface{}) {
	Warn(ctx, fmt.Sprintf(format, args...))
}

func Errorf(ctx context.Context, format string, args ...interface{}) {
	Error(ctx, fmt.Sprintf(format, args...))
}

func Fatalf(ctx context.Context, format string, args ...interface{}) {
	Fatal(ctx, fmt.Sprintf(format, args...))
}

func String(key, val string) Field { return zap.String(key, val) }

func Int(key string, val int) Field { return zap.Int(key, val) }

func Int64(key string, val int64) Field { return zap.Int64(key, val) }

func Bool(key string, val bool) Field { return zap.Bool(key, val) }

func Any(key string, val interface{}) Field { return zap.Any(key, val) }

func Err(err error) Field { return zap.Error(err) }

func Duration(key string, val time.Duration) Field { return zap.Duration(key, val) }

func Time(key string, val time.Time) Field { return zap.Time(key, val) }
