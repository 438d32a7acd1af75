// Package entity holds the types shared by filters, stores and the query
// builder: records, filter predicates and the logger they report to.
package entity

import "context"

// Logger is the contextual, structured logger stores and registries log to.
// Key/value pairs follow msg, or err for errors.
type Logger interface {
	Info(ctx context.Context, msg string, kv ...any)
	Error(ctx context.Context, msg string, err error, kv ...any)
}
