package logger

import (
	"os"
	"sort"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
)

func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return Debug
	case "info", "":
		return Info
	case "warn", "warning":
		return Warn
	case "error":
		return Error
	default:
		return Info
	}
}

func (l Level) String() string {
	switch l {
	case Debug:
		return "debug"
	case Info:
		return "info"
	case Warn:
		return "warn"
	case Error:
		return "error"
	default:
		return "info"
	}
}

func (l Level) zapLevel() zapcore.Level {
	switch l {
	case Debug:
		return zapcore.DebugLevel
	case Warn:
		return zapcore.WarnLevel
	case Error:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

func ParseFormat(s string) Format {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON
	default:
		return FormatText
	}
}

// Logger es la interfaz que reciben services y handlers.
// Los campos van como map para no acoplar el dominio a zap.
type Logger interface {
	With(fields map[string]any) Logger

	Debug(msg string, fields map[string]any)
	Info(msg string, fields map[string]any)
	Warn(msg string, fields map[string]any)
	Error(msg string, fields map[string]any)
}

// ZapLogger implementa Logger sobre *zap.Logger.
type ZapLogger struct {
	z *zap.Logger
}

type Options struct {
	Level  Level
	Format Format
	App    string
}

// New arma el core a mano (encoder + stdout + nivel) para no depender de
// zap.Config.Build, que puede fallar al abrir paths.
func New(opts Options) *ZapLogger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var enc zapcore.Encoder
	switch opts.Format {
	case FormatJSON:
		enc = zapcore.NewJSONEncoder(encCfg)
	default:
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	}

	core := zapcore.NewCore(enc, zapcore.Lock(os.Stdout), zap.NewAtomicLevelAt(opts.Level.zapLevel()))
	z := zap.New(core, zap.ErrorOutput(zapcore.Lock(os.Stderr)))

	if app := strings.TrimSpace(opts.App); app != "" {
		z = z.With(zap.String("app", app))
	}
	return &ZapLogger{z: z}
}

// NewFromEnv crea logger desde env:
// - LOG_LEVEL=debug|info|warn|error (default info)
// - LOG_FORMAT=text|json (default text)
// - APP_NAME=organ-match (opcional)
func NewFromEnv() *ZapLogger {
	return New(Options{
		Level:  ParseLevel(os.Getenv("LOG_LEVEL")),
		Format: ParseFormat(os.Getenv("LOG_FORMAT")),
		App:    os.Getenv("APP_NAME"),
	})
}

// NewNop descarta todo (tests).
func NewNop() *ZapLogger {
	return &ZapLogger{z: zap.NewNop()}
}

// FromZap envuelve un *zap.Logger ya construido.
func FromZap(z *zap.Logger) *ZapLogger {
	if z == nil {
		z = zap.NewNop()
	}
	return &ZapLogger{z: z}
}

// Zap expone el logger subyacente.
func (l *ZapLogger) Zap() *zap.Logger { return l.z }

// Sync vacía buffers; llamar al cerrar el proceso.
func (l *ZapLogger) Sync() error { return l.z.Sync() }

func (l *ZapLogger) With(fields map[string]any) Logger {
	if len(fields) == 0 {
		return l
	}
	return &ZapLogger{z: l.z.With(toZapFields(fields)...)}
}

func (l *ZapLogger) Debug(msg string, fields map[string]any) { l.z.Debug(msg, toZapFields(fields)...) }
func (l *ZapLogger) Info(msg string, fields map[string]any)  { l.z.Info(msg, toZapFields(fields)...) }
func (l *ZapLogger) Warn(msg string, fields map[string]any)  { l.z.Warn(msg, toZapFields(fields)...) }
func (l *ZapLogger) Error(msg string, fields map[string]any) { l.z.Error(msg, toZapFields(fields)...) }

func toZapFields(m map[string]any) []zap.Field {
	if len(m) == 0 {
		return nil
	}
	// Ordenar keys para salida estable (útil en tests/logs).
	keys := make([]string, 0, len(m))
	for k := range m {
		if strings.TrimSpace(k) == "" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]zap.Field, 0, len(keys))
	for _, k := range keys {
		v := m[k]
		if err, ok := v.(error); ok {
			out = append(out, zap.NamedError(k, err))
			continue
		}
		out = append(out, zap.Any(k, v))
	}
	return out
}
