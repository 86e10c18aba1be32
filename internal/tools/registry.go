package tools

import (
	"context"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/bobmcallan/retell-mcp/internal/common"
	"github.com/bobmcallan/retell-mcp/internal/schema"
	"github.com/bobmcallan/retell-mcp/internal/toolerr"
)

type entry struct {
	op       Operation
	contract *schema.Contract
}

// Registry maps tool names to compiled operations. It is built once and
// never modified, so concurrent dispatches share it without locking.
type Registry struct {
	entries map[string]*entry
	order   []string
	logger  *common.Logger
	metrics *Metrics
}

// NewRegistry compiles every operation contract. Duplicate names, missing
// handlers and delete operations without a confirmation are rejected.
func NewRegistry(logger *common.Logger, metrics *Metrics, ops ...Operation) (*Registry, error) {
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	r := &Registry{
		entries: make(map[string]*entry, len(ops)),
		order:   make([]string, 0, len(ops)),
		logger:  logger,
		metrics: metrics,
	}

	for _, op := range ops {
		if op.Name == "" {
			return nil, errors.New("operation without a name")
		}
		if _, dup := r.entries[op.Name]; dup {
			return nil, errors.Newf("operation %s registered twice", op.Name)
		}
		if op.Handler == nil {
			return nil, errors.Newf("operation %s has no handler", op.Name)
		}
		if op.Effect == EffectDelete && !strings.Contains(op.DeleteMessage, "{") {
			return nil, errors.Newf("delete operation %s must name the deleted id in its message", op.Name)
		}

		contract, err := schema.Compile(op.Name, op.Params)
		if err != nil {
			return nil, err
		}
		r.entries[op.Name] = &entry{op: op, contract: contract}
		r.order = append(r.order, op.Name)
	}

	return r, nil
}

// Names returns tool names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Operation returns the named operation and its compiled contract.
func (r *Registry) Operation(name string) (Operation, *schema.Contract, bool) {
	e, ok := r.entries[name]
	if !ok {
		return Operation{}, nil, false
	}
	return e.op, e.contract, true
}

// Dispatch validates raw against the named operation's contract, runs the
// handler and normalizes the outcome. Validation failures return before any
// platform request is made.
func (r *Registry) Dispatch(ctx context.Context, name string, raw map[string]any) (any, error) {
	start := time.Now()
	logger := r.logger.WithCorrelationId(uuid.NewString())

	e, ok := r.entries[name]
	if !ok {
		err := toolerr.NotFound("unknown tool %s", name)
		r.metrics.observe(unknownTool, err, time.Since(start))
		logFailure(logger, name, err)
		return nil, err
	}

	logger.Debug().Str("tool", name).Msg("tool call")

	args, err := e.contract.Validate(raw)
	var result any
	if err == nil {
		result, err = e.op.Handler(ctx, args)
	}
	result, err = normalize(logger, e.op, args, result, err)

	duration := time.Since(start)
	r.metrics.observe(name, err, duration)
	if err == nil {
		logger.Debug().Str("tool", name).Int64("duration_ms", duration.Milliseconds()).Msg("tool call completed")
	}
	return result, err
}
