package tracing

import (
	"go.opentelemetry.io/otel/attribute"
)

// Span attribute keys.
const (
	AttrSessionID   = "session.id"
	AttrNamespaceID = "namespace.id"
	AttrRequestID   = "request.id"
	AttrStep        = "step"
	AttrErrorType   = "error.type"
)

// SpanPrefixSession prefixes every orchestrator operation span.
const SpanPrefixSession = "session."

// SessionAttrs builds the attributes stamped on session spans.
func SessionAttrs(sessionID, namespaceID, requestID, step string) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String(AttrSessionID, sessionID),
		attribute.String(AttrNamespaceID, namespaceID),
		attribute.String(AttrRequestID, requestID),
		attribute.String(AttrStep, step),
	}
}

// AttrUpdateKind names the preview update a step produced.
const AttrUpdateKind = "step.update"
