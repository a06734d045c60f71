package app

import (
	"context"
	"fmt"

	"github.com/vk/framectx/internal/ctxlog"
	"github.com/vk/framectx/internal/locator"
	"github.com/vk/framectx/internal/stacktrace"
)

// Run replays the scenario's events in order. Every time the builder reports
// a breakpoint the current stack is captured and written to the output. The
// first protocol violation aborts the replay.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	builder := stacktrace.NewBuilder(
		stacktrace.New(),
		locator.New(a.model.Workspace),
		a.model.BreakpointStore(),
	)
	a.stops = nil

	for i, ev := range a.model.Events {
		if err := ctx.Err(); err != nil {
			return err
		}
		bp, err := builder.Handle(ctx, ev)
		if err != nil {
			return fmt.Errorf("event #%d %s: %w", i, ev, err)
		}
		if bp == nil {
			continue
		}
		stop := newStop(bp, builder.Stack())
		a.stops = append(a.stops, stop)
		a.logger.Info("Breakpoint hit.", "breakpoint", bp.String(), "hits", bp.HitCount(), "depth", len(stop.Frames))
		if err := stop.Write(a.outW); err != nil {
			return fmt.Errorf("failed to write stop report: %w", err)
		}
	}

	if !builder.Stack().IsEmpty() {
		a.logger.Warn("Replay finished with frames still on the stack.", "stack", builder.Stack().String())
	}
	a.logger.Info("Replay finished.", "events", len(a.model.Events), "stops", len(a.stops))
	return nil
}
