package logging

import "context"

type fieldsKey struct{}

// WithFields returns a copy of ctx carrying extra key-value pairs. Every
// Logger call made with that context appends them to its own args, so a
// request id set by middleware shows up in handler logs.
func WithFields(ctx context.Context, args ...any) context.Context {
	if len(args) == 0 {
		return ctx
	}
	prev := Fields(ctx)
	merged := make([]any, 0, len(prev)+len(args))
	merged = append(merged, prev...)
	merged = append(merged, args...)
	return context.WithValue(ctx, fieldsKey{}, merged)
}

// Fields returns the pairs stored by WithFields, or nil.
func Fields(ctx context.Context) []any {
	if ctx == nil {
		return nil
	}
	f, _ := ctx.Value(fieldsKey{}).([]any)
	return f
}

// withContextFields puts the ctx fields in front of the call's own args.
func withContextFields(ctx context.Context, args []any) []any {
	f := Fields(ctx)
	if len(f) == 0 {
		return args
	}
	out := make([]any, 0, len(f)+len(args))
	out = append(out, f...)
	return append(out, args...)
}
