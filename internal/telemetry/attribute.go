package telemetry

import (
	"chorddht/internal/domain"

	"go.opentelemetry.io/otel/attribute"
)

// IdAttributes renders id as a set of span/resource attributes under prefix,
// in both decimal and hex form.
func IdAttributes(prefix string, id domain.ID) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String(prefix+".dec", id.ToBigInt().String()),
		attribute.String(prefix+".hex", id.ToHexString()),
	}
}
