package observability

import (
	"context"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/riskibarqy/fpl-insights/internal/platform/logging"
	otellog "go.opentelemetry.io/otel/log"
	otelglobal "go.opentelemetry.io/otel/log/global"
	"go.uber.org/zap/zapcore"
)

const (
	uptraceLogInstrumentation = "fpl-insights/internal/platform/logging"
	maxLogValueDepth          = 3
	requestLogEvent           = "http_request"
)

// mirroredKeys renames logger fields to the attribute names the spans use,
// so a mirrored record and its trace can be joined on the same key.
var mirroredKeys = map[string]string{
	"http_method":    "http.request.method",
	"http_path":      "url.path",
	"http_status":    "http.response.status_code",
	"response_bytes": "http.response.body.size",
	"remote_addr":    "client.address",
	"request_id":     "request.id",
	"error":          "exception.message",
	"resource":       "fpl.resource",
	"manager_id":     "fpl.manager_id",
	"league_id":      "fpl.league_id",
	"player_id":      "fpl.player_id",
	"team_id":        "fpl.team_id",
	"gameweek":       "fpl.gameweek",
	"gw":             "fpl.gameweek",
}

// logMirror forwards logger records to the OTLP log pipeline.
type logMirror struct {
	logger     otellog.Logger
	quietPaths map[string]struct{}
}

func newLogMirror(serviceVersion string, quietPaths []string) *logMirror {
	quiet := make(map[string]struct{}, len(quietPaths))
	for _, path := range quietPaths {
		if path = strings.TrimSpace(path); path != "" {
			quiet[path] = struct{}{}
		}
	}
	return &logMirror{
		logger: otelglobal.Logger(
			uptraceLogInstrumentation,
			otellog.WithInstrumentationVersion(serviceVersion),
		),
		quietPaths: quiet,
	}
}

func (m *logMirror) emit(ctx context.Context, level logging.Level, msg string, args ...any) {
	if m.quiet(msg, args) {
		return
	}
	if ctx == nil {
		ctx = context.Background()
	}

	severity := otelSeverity(level)
	if !m.logger.Enabled(ctx, otellog.EnabledParameters{Severity: severity, EventName: msg}) {
		return
	}

	now := time.Now().UTC()
	var record otellog.Record
	record.SetTimestamp(now)
	record.SetObservedTimestamp(now)
	record.SetSeverity(severity)
	record.SetSeverityText(strings.ToUpper(level.String()))
	record.SetEventName(msg)
	record.SetBody(otellog.StringValue(msg))
	if attrs := logAttributes(args); len(attrs) > 0 {
		record.AddAttributes(attrs...)
	}
	m.logger.Emit(ctx, record)
}

// quiet reports request logs for probe paths such as /healthz.
func (m *logMirror) quiet(msg string, args []any) bool {
	if msg != requestLogEvent || len(m.quietPaths) == 0 {
		return false
	}
	for i := 0; i+1 < len(args); i += 2 {
		if key, _ := args[i].(string); key != "http_path" {
			continue
		}
		path, ok := args[i+1].(string)
		if !ok {
			return false
		}
		_, quiet := m.quietPaths[path]
		return quiet
	}
	return false
}

func logAttributes(args []any) []otellog.KeyValue {
	if len(args) == 0 {
		return nil
	}

	attrs := make([]otellog.KeyValue, 0, (len(args)+1)/2)
	for i := 0; i < len(args); i += 2 {
		key, _ := args[i].(string)
		key = strings.TrimSpace(key)
		if key == "" {
			key = fmt.Sprintf("arg_%d", i/2)
		}
		if renamed, ok := mirroredKeys[key]; ok {
			key = renamed
		}
		if i+1 >= len(args) {
			attrs = append(attrs, otellog.Empty(key))
			continue
		}
		attrs = append(attrs, otellog.KeyValue{Key: key, Value: logValue(args[i+1], 0)})
	}
	return attrs
}

func otelSeverity(level zapcore.Level) otellog.Severity {
	switch {
	case level <= zapcore.DebugLevel:
		return otellog.SeverityDebug
	case level == zapcore.InfoLevel:
		return otellog.SeverityInfo
	case level == zapcore.WarnLevel:
		return otellog.SeverityWarn
	case level >= zapcore.DPanicLevel:
		return otellog.SeverityFatal
	default:
		return otellog.SeverityError
	}
}

func logValue(value any, depth int) otellog.Value {
	if value == nil {
		return otellog.Value{}
	}
	if depth >= maxLogValueDepth {
		return otellog.StringValue(fmt.Sprint(value))
	}

	switch v := value.(type) {
	case string:
		return otellog.StringValue(v)
	case bool:
		return otellog.BoolValue(v)
	case []byte:
		return otellog.BytesValue(append([]byte(nil), v...))
	case time.Time:
		return otellog.StringValue(v.UTC().Format(time.RFC3339Nano))
	case time.Duration:
		return otellog.StringValue(v.String())
	case error:
		return otellog.StringValue(v.Error())
	case fmt.Stringer:
		return otellog.StringValue(v.String())
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.String:
		return otellog.StringValue(rv.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return otellog.Int64Value(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if u := rv.Uint(); u <= math.MaxInt64 {
			return otellog.Int64Value(int64(u))
		}
		return otellog.StringValue(fmt.Sprint(value))
	case reflect.Float32, reflect.Float64:
		return otellog.Float64Value(rv.Float())
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return otellog.Value{}
		}
		return logValue(rv.Elem().Interface(), depth+1)
	case reflect.Slice, reflect.Array:
		items := make([]otellog.Value, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			items = append(items, logValue(rv.Index(i).Interface(), depth+1))
		}
		return otellog.SliceValue(items...)
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return otellog.StringValue(fmt.Sprint(value))
		}
		keys := rv.MapKeys()
		sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
		kvs := make([]otellog.KeyValue, 0, len(keys))
		for _, key := range keys {
			kvs = append(kvs, otellog.KeyValue{
				Key:   key.String(),
				Value: logValue(rv.MapIndex(key).Interface(), depth+1),
			})
		}
		return otellog.MapValue(kvs...)
	default:
		return otellog.StringValue(fmt.Sprint(value))
	}
}
