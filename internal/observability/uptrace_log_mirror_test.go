package observability

import (
	"errors"
	"testing"

	"github.com/riskibarqy/fpl-insights/internal/domain/player"
	otellog "go.opentelemetry.io/otel/log"
)

func TestLogMirror_QuietPaths(t *testing.T) {
	mirror := newLogMirror("test", []string{"/healthz", " /v1/internal/catalog/refresh "})

	if !mirror.quiet("http_request", []any{"http_method", "GET", "http_path", "/healthz"}) {
		t.Fatalf("expected health check log to be skipped")
	}
	if !mirror.quiet("http_request", []any{"http_path", "/v1/internal/catalog/refresh"}) {
		t.Fatalf("expected configured path to be skipped")
	}
	if mirror.quiet("http_request", []any{"http_path", "/v1/players/top"}) {
		t.Fatalf("did not expect player route log to be skipped")
	}
	if mirror.quiet("catalog snapshot loaded", []any{"http_path", "/healthz"}) {
		t.Fatalf("did not expect non-request event to be skipped")
	}

	open := newLogMirror("test", nil)
	if open.quiet("http_request", []any{"http_path", "/healthz"}) {
		t.Fatalf("did not expect skipping without quiet paths")
	}
}

func TestLogAttributes_RenamesServiceFields(t *testing.T) {
	attrs := logAttributes([]any{
		"manager_id", 1234567,
		"resource", "entry_picks",
		"gw", 12,
		"error", errors.New("upstream status=503"),
		"cohort_size", 3,
		"payload",
	})
	if len(attrs) != 6 {
		t.Fatalf("unexpected attribute count: got=%d want=6", len(attrs))
	}

	want := []string{"fpl.manager_id", "fpl.resource", "fpl.gameweek", "exception.message", "cohort_size", "payload"}
	for i, key := range want {
		if attrs[i].Key != key {
			t.Fatalf("unexpected key at %d: got=%s want=%s", i, attrs[i].Key, key)
		}
	}
	if attrs[0].Value.AsInt64() != 1234567 {
		t.Fatalf("unexpected manager id: got=%d", attrs[0].Value.AsInt64())
	}
	if attrs[3].Value.AsString() != "upstream status=503" {
		t.Fatalf("unexpected error text: got=%s", attrs[3].Value.AsString())
	}
	if attrs[5].Value.Kind() != otellog.KindEmpty {
		t.Fatalf("expected dangling key to be empty, got=%s", attrs[5].Value.Kind())
	}
}

func TestLogValue(t *testing.T) {
	if v := logValue(player.PositionGoalkeeper, 0); v.Kind() != otellog.KindString || v.AsString() != "GK" {
		t.Fatalf("unexpected named string value: %v", v)
	}
	if v := logValue(uint8(7), 0); v.AsInt64() != 7 {
		t.Fatalf("unexpected uint value: %v", v)
	}
	if v := logValue(4.5, 0); v.AsFloat64() != 4.5 {
		t.Fatalf("unexpected float value: %v", v)
	}

	ids := []int{3, 5}
	if v := logValue(&ids, 0); v.Kind() != otellog.KindSlice || len(v.AsSlice()) != 2 {
		t.Fatalf("unexpected slice value: %v", v)
	}

	v := logValue(map[string]any{"goals": 11, "finished": true}, 0)
	if v.Kind() != otellog.KindMap {
		t.Fatalf("expected map value, got %s", v.Kind())
	}
	items := v.AsMap()
	if len(items) != 2 || items[0].Key != "finished" {
		t.Fatalf("unexpected map items: %+v", items)
	}
}
