package trace

import (
	"context"
	"crypto/rand"
	"fmt"

	"chorddht/internal/domain"

	oteltrace "go.opentelemetry.io/otel/trace"
)

type traceKey struct{}

// GenerateTraceID builds a process-global trace identifier in the form:
//
//	<nodeID>-<traceID>
//
// The traceID half is 16 random bytes rendered in OTEL's TraceID hex
// encoding; it is generated independently of any span, so it does not
// match the span trace ids emitted under internal/telemetry.
func GenerateTraceID(nodeID string) string {
	var tid oteltrace.TraceID
	if _, err := rand.Read(tid[:]); err != nil {
		// crypto/rand failing is effectively unrecoverable; zero id is still
		// a valid (if non-unique) fallback rather than a panic.
		return fmt.Sprintf("%s-%s", nodeID, tid.String())
	}
	return fmt.Sprintf("%s-%s", nodeID, tid.String())
}

// AttachTraceID generates a traceID for nodeID and stores it in ctx.
// Returns the new context and the generated traceID.
func AttachTraceID(ctx context.Context, nodeID domain.ID) (context.Context, string) {
	traceID := GenerateTraceID(nodeID.String())
	return context.WithValue(ctx, traceKey{}, traceID), traceID
}

// GetTraceID retrieves the traceID from ctx, or "" if absent.
func GetTraceID(ctx context.Context) string {
	if v := ctx.Value(traceKey{}); v != nil {
		if id, ok := v.(string); ok && id != "" {
			return id
		}
	}
	return ""
}
