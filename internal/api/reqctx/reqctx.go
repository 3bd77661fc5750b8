package reqctx

import (
	"context"

	"github.com/oboratav/yk-proxy/internal/domain"
	"github.com/oboratav/yk-proxy/internal/ports"
)

// reqctx carries per-request values resolved by the middleware chain so
// handlers never re-parse headers or query parameters.

type ctxKey int

const (
	credentialsKey ctxKey = iota
	shapeKey
	environmentKey
)

// Environment selects which carrier deployment a request talks to.
type Environment int

const (
	EnvironmentProduction Environment = iota
	EnvironmentTest
)

func WithCredentials(ctx context.Context, creds ports.Credentials) context.Context {
	return context.WithValue(ctx, credentialsKey, creds)
}

func CredentialsFrom(ctx context.Context) (ports.Credentials, bool) {
	creds, ok := ctx.Value(credentialsKey).(ports.Credentials)
	return creds, ok
}

func WithShape(ctx context.Context, shape domain.Shape) context.Context {
	return context.WithValue(ctx, shapeKey, shape)
}

// ShapeFrom defaults to the flat shape when the middleware never ran.
func ShapeFrom(ctx context.Context) domain.Shape {
	shape, ok := ctx.Value(shapeKey).(domain.Shape)
	if !ok {
		return domain.ShapeFlat
	}
	return shape
}

func WithEnvironment(ctx context.Context, env Environment) context.Context {
	return context.WithValue(ctx, environmentKey, env)
}

// EnvironmentFrom defaults to production when the middleware never ran.
func EnvironmentFrom(ctx context.Context) Environment {
	env, ok := ctx.Value(environmentKey).(Environment)
	if !ok {
		return EnvironmentProduction
	}
	return env
}
