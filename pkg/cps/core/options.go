package core

import "context"

type OptionKey string

const (
	RoutingOptionKey OptionKey = "routing_options"
	WorkerOptionKey  OptionKey = "worker_options"
)

// Routing selects where a stage error is delivered: the near-universal
// convention routes it to the pipeline's own next; the alternate policy
// redirects it to the short-circuit continuation.
type Routing int

const (
	RouteToNext Routing = iota
	RouteToFinal
)

type RoutingOptions struct {
	StageErrors Routing
}

type MaxLimitOption struct {
	Value int
}
type WorkerOptions struct {
	MaxCount MaxLimitOption
}

func WithErrorRouting(ctx context.Context, r Routing) context.Context {
	return context.WithValue(ctx, RoutingOptionKey, RoutingOptions{StageErrors: r})
}

func WithWorkerOptions(ctx context.Context, maxWorkers int) context.Context {
	return context.WithValue(ctx, WorkerOptionKey, WorkerOptions{MaxLimitOption{Value: maxWorkers}})
}

func GetErrorRouting(ctx context.Context, defaultRouting Routing) Routing {
	options, ok := ctx.Value(RoutingOptionKey).(RoutingOptions)
	if ok {
		return options.StageErrors
	}
	return defaultRouting
}

func GetWorkerMaxCount(ctx context.Context, defaultMaxWorkers int) int {
	options, ok := ctx.Value(WorkerOptionKey).(WorkerOptions)
	if ok {
		return options.MaxCount.Value
	}
	return defaultMaxWorkers
}
