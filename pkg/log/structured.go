package log

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/kubev2v/vdi-migration-planner/pkg/requestid"
)

// StructuredLogger emits operation-scoped log entries that share a name,
// a request id and a common set of fields.
//
//	tracer := log.NewDebugLogger("assessment_service").
//		WithContext(ctx).
//		Operation("run_assessment").
//		WithInt("total_users", n).
//		Build()
//	tracer.Step("requirements").WithInt("concurrent", c).Log()
//	tracer.Success().Log()
type StructuredLogger struct {
	name  string
	level zapcore.Level
	ctx   context.Context
}

// NewDebugLogger returns a StructuredLogger whose steps are logged at debug
// level. Successes are logged at info and errors at error level.
func NewDebugLogger(name string) *StructuredLogger {
	return &StructuredLogger{name: name, level: zapcore.DebugLevel, ctx: context.Background()}
}

// WithContext returns a copy of l bound to ctx.
func (l *StructuredLogger) WithContext(ctx context.Context) *StructuredLogger {
	if ctx == nil {
		ctx = context.Background()
	}
	cp := *l
	cp.ctx = ctx
	return &cp
}

// Operation starts building a tracer for op.
func (l *StructuredLogger) Operation(op string) *OperationBuilder {
	return &OperationBuilder{logger: l, operation: op}
}

// OperationBuilder collects the fields attached to every entry of an operation.
type OperationBuilder struct {
	logger    *StructuredLogger
	operation string
	fields    []zap.Field
}

func (b *OperationBuilder) WithString(key, value string) *OperationBuilder {
	b.fields = append(b.fields, zap.String(key, value))
	return b
}

func (b *OperationBuilder) WithInt(key string, value int) *OperationBuilder {
	b.fields = append(b.fields, zap.Int(key, value))
	return b
}

func (b *OperationBuilder) WithBool(key string, value bool) *OperationBuilder {
	b.fields = append(b.fields, zap.Bool(key, value))
	return b
}

func (b *OperationBuilder) WithUUID(key string, value uuid.UUID) *OperationBuilder {
	b.fields = append(b.fields, zap.String(key, value.String()))
	return b
}

// WithParam attaches an arbitrary value.
func (b *OperationBuilder) WithParam(key string, value any) *OperationBuilder {
	b.fields = append(b.fields, zap.Any(key, value))
	return b
}

// Build returns the tracer of the operation. The tracer's clock starts here.
func (b *OperationBuilder) Build() *OperationTracer {
	fields := []zap.Field{zap.String("operation", b.operation)}
	if id := requestid.FromContext(b.logger.ctx); id != "" {
		fields = append(fields, zap.String("request_id", id))
	}
	fields = append(fields, b.fields...)

	return &OperationTracer{
		logger:    zap.L().Named(b.logger.name),
		level:     b.logger.level,
		operation: b.operation,
		fields:    fields,
		start:     time.Now(),
	}
}

// OperationTracer produces the entries of one operation.
type OperationTracer struct {
	logger    *zap.Logger
	level     zapcore.Level
	operation string
	fields    []zap.Field
	start     time.Time
}

// Step starts an intermediate entry.
func (t *OperationTracer) Step(name string) *LogEntry {
	return t.entry(t.level, t.operation+": "+name, zap.String("step", name))
}

// Success starts the final entry of a successful operation.
func (t *OperationTracer) Success() *LogEntry {
	return t.entry(zapcore.InfoLevel, t.operation+": success",
		zap.Duration("duration", time.Since(t.start)))
}

// Error starts the final entry of a failed operation.
func (t *OperationTracer) Error(err error) *LogEntry {
	return t.entry(zapcore.ErrorLevel, t.operation+": failed",
		zap.Error(err),
		zap.Duration("duration", time.Since(t.start)))
}

func (t *OperationTracer) entry(level zapcore.Level, msg string, extra ...zap.Field) *LogEntry {
	fields := make([]zap.Field, 0, len(t.fields)+len(extra))
	fields = append(fields, t.fields...)
	fields = append(fields, extra...)
	return &LogEntry{logger: t.logger, level: level, msg: msg, fields: fields}
}

// LogEntry is a pending entry. Nothing is written until Log is called.
type LogEntry struct {
	logger *zap.Logger
	level  zapcore.Level
	msg    string
	fields []zap.Field
}

func (e *LogEntry) WithString(key, value string) *LogEntry {
	e.fields = append(e.fields, zap.String(key, value))
	return e
}

func (e *LogEntry) WithInt(key string, value int) *LogEntry {
	e.fields = append(e.fields, zap.Int(key, value))
	return e
}

func (e *LogEntry) WithFloat(key string, value float64) *LogEntry {
	e.fields = append(e.fields, zap.Float64(key, value))
	return e
}

func (e *LogEntry) WithBool(key string, value bool) *LogEntry {
	e.fields = append(e.fields, zap.Bool(key, value))
	return e
}

func (e *LogEntry) WithUUID(key string, value uuid.UUID) *LogEntry {
	e.fields = append(e.fields, zap.String(key, value.String()))
	return e
}

func (e *LogEntry) WithParam(key string, value any) *LogEntry {
	e.fields = append(e.fields, zap.Any(key, value))
	return e
}

// Log writes the entry.
func (e *LogEntry) Log() {
	if ce := e.logger.Check(e.level, e.msg); ce != nil {
		ce.Write(e.fields...)
	}
}
