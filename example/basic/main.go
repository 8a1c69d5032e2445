// Package main demonstrates a complete Portal setup: a factory registry,
// a factory with lifecycle hooks, command routing, middleware, and an
// in-memory audit trail.
//
// Usage:
//
//	go run .
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/xraph/portal"
	"github.com/xraph/portal/audit"
	"github.com/xraph/portal/audit/memory"
	"github.com/xraph/portal/factory"
	"github.com/xraph/portal/middleware"
	"github.com/xraph/portal/observability"
)

// Order is the business entity managed by OrderFactory.
type Order struct {
	ID    string
	Total float64
}

// ShipOrder is a command payload: Update dispatches route it to Execute.
type ShipOrder struct {
	OrderID string
}

func (ShipOrder) IsCommand() {}

// OrderFactory performs the data operations for Order. It opts in to the
// pre-call hook to show ambient context flowing through.
type OrderFactory struct {
	logger *slog.Logger
}

func (f *OrderFactory) OnInvoking(_ context.Context, ambient any) error {
	f.logger.Info("invoking", slog.Any("ambient", ambient))
	return nil
}

func (f *OrderFactory) Create(_ context.Context) (*Order, error) {
	return &Order{ID: "ORD-NEW"}, nil
}

func (f *OrderFactory) Fetch(_ context.Context, criteria string) (*Order, error) {
	if criteria == "id=missing" {
		return nil, errors.New("order not found")
	}
	return &Order{ID: criteria, Total: 99.50}, nil
}

func (f *OrderFactory) Execute(_ context.Context, cmd ShipOrder) (string, error) {
	return "shipped " + cmd.OrderID, nil
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := context.Background()

	// ──────────────────────────────────────────────────
	// 1. Register factories
	// ──────────────────────────────────────────────────

	loader := factory.NewLoader(factory.ConfigFromEnv(), factory.WithLoaderLogger(logger))
	loader.Registry().Register("OrderFactory", func() any {
		return &OrderFactory{logger: logger}
	})

	// ──────────────────────────────────────────────────
	// 2. Build the dispatcher
	// ──────────────────────────────────────────────────

	trail := memory.New()
	d, err := portal.New(
		portal.WithResolver(loader),
		portal.WithLogger(logger),
		portal.WithExtension(audit.New(trail)),
		portal.WithExtension(observability.NewMetricsExtension()),
		portal.WithMiddleware(middleware.Logging(logger)),
		portal.WithMiddleware(middleware.Recover(logger)),
	)
	if err != nil {
		logger.Error("failed to create dispatcher", slog.String("error", err.Error()))
		os.Exit(1)
	}

	oc := portal.OperationContext{Factory: "OrderFactory", Ambient: "tenant-42"}

	// ──────────────────────────────────────────────────
	// 3. Dispatch operations
	// ──────────────────────────────────────────────────

	res, err := d.Create(ctx, "Order", portal.EmptyCriteria, oc)
	if err != nil {
		logger.Error("create failed", slog.String("error", err.Error()))
	} else {
		fmt.Printf("created: %+v\n", res.Value)
	}

	res, err = d.Fetch(ctx, "Order", "id=5", oc)
	if err != nil {
		logger.Error("fetch failed", slog.String("error", err.Error()))
	} else {
		fmt.Printf("fetched: %+v\n", res.Value)
	}

	// A command payload routes to Execute instead of Update.
	res, err = d.Update(ctx, ShipOrder{OrderID: "ORD-1"}, oc)
	if err != nil {
		logger.Error("ship failed", slog.String("error", err.Error()))
	} else {
		fmt.Printf("executed: %v\n", res.Value)
	}

	// A failing fetch comes back as the uniform failure shape.
	if _, err := d.Fetch(ctx, "Order", "id=missing", oc); err != nil {
		var perr *portal.Error
		if errors.As(err, &perr) {
			fmt.Printf("failure: %s (cause: %v)\n", perr.Error(), perr.Cause)
		}
	}

	// ──────────────────────────────────────────────────
	// 4. Inspect the audit trail
	// ──────────────────────────────────────────────────

	recs, _ := trail.List(ctx, 0)
	for _, rec := range recs {
		fmt.Printf("audit: %-7s %-7s %s\n", rec.Operation, rec.Outcome, rec.Method)
	}
}
