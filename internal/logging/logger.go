// Package logging builds the service's zap logger and request logging middleware.
package logging

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// Field names shared by every log line.
const (
	FieldService   = "service"
	FieldVersion   = "version"
	FieldRequestID = "request_id"
	FieldMethod    = "method"
	FieldPath      = "path"
	FieldStatus    = "status"
	FieldDuration  = "duration_ms"
	FieldBytes     = "bytes"
)

type Config struct {
	Level       string
	Format      string
	ServiceName string
	Version     string
}

// New returns a logger writing to stdout. Unknown levels fall back to info.
func New(cfg Config) *zap.Logger {
	level := zapcore.InfoLevel
	if err := level.UnmarshalText([]byte(strings.ToLower(cfg.Level))); err != nil {
		level = zapcore.InfoLevel
	}

	var encoder zapcore.Encoder
	if strings.ToLower(cfg.Format) == FormatJSON {
		ec := zap.NewProductionEncoderConfig()
		ec.TimeKey = "timestamp"
		ec.MessageKey = "message"
		ec.EncodeTime = zapcore.RFC3339NanoTimeEncoder
		ec.EncodeLevel = zapcore.LowercaseLevelEncoder
		encoder = zapcore.NewJSONEncoder(ec)
	} else {
		ec := zap.NewDevelopmentEncoderConfig()
		ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(ec)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), level)
	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)).With(
		zap.String(FieldService, cfg.ServiceName),
		zap.String(FieldVersion, cfg.Version),
	)
}

// Middleware logs one line per request. It expects chi's RequestID middleware upstream.
func Middleware(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			fields := []zap.Field{
				zap.String(FieldRequestID, middleware.GetReqID(r.Context())),
				zap.String(FieldMethod, r.Method),
				zap.String(FieldPath, r.URL.Path),
				zap.Int(FieldStatus, status),
				zap.Int(FieldBytes, ww.BytesWritten()),
				zap.Float64(FieldDuration, float64(time.Since(start).Microseconds())/1000),
			}
			if status >= http.StatusInternalServerError {
				logger.Error("request", fields...)
				return
			}
			logger.Info("request", fields...)
		})
	}
}
