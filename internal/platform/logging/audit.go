package logging

import (
	"context"
	"log/slog"
)

// LogAuditEvent logs a structured record of a state-changing operation.
func LogAuditEvent(ctx context.Context, action, resourceType, resourceID, result string, details map[string]any) {
	LoggerFromContext(ctx).LogAttrs(ctx, slog.LevelInfo, "audit event",
		slog.String("audit.action", action),
		slog.String("audit.resource_type", resourceType),
		slog.String("audit.resource_id", resourceID),
		slog.String("audit.result", result),
		slog.Any("audit.details", details),
	)
}
