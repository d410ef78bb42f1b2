package api

import (
	"context"

	"github.com/huynhanx03/go-linear/internal/simulator"
)

// Handler serves the simulator over HTTP.
type Handler struct {
	d *simulator.Dispatcher
}

func NewHandler(d *simulator.Dispatcher) *Handler {
	return &Handler{d: d}
}

// Operate runs one command.
func (h *Handler) Operate(ctx context.Context, req *OperateRequest) (*simulator.Result, error) {
	res, err := h.d.Execute(ctx, req.Command, req.RawValue())
	if err != nil {
		return nil, toAppError(req.Command, err, res)
	}
	return res, nil
}

// State returns the current state without running a command.
func (h *Handler) State(_ context.Context) (*simulator.Result, error) {
	return h.d.Snapshot(), nil
}

// SetMode switches between stack and queue.
func (h *Handler) SetMode(ctx context.Context, req *ModeRequest) (*simulator.Result, error) {
	res, err := h.d.Execute(ctx, simulator.OpSetMode.String(), req.Mode)
	if err != nil {
		return nil, toAppError(simulator.OpSetMode.String(), err, res)
	}
	return res, nil
}

func (h *Handler) Health(_ context.Context) (*HealthResponse, error) {
	return &HealthResponse{Status: "ok", Session: h.d.Session()}, nil
}
