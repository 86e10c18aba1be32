package tools

import (
	"github.com/bobmcallan/retell-mcp/internal/common"
	"github.com/bobmcallan/retell-mcp/internal/schema"
	"github.com/bobmcallan/retell-mcp/internal/toolerr"
)

// DeleteResult is the envelope returned by every delete operation.
type DeleteResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// normalize passes results through, replaces delete results with a
// DeleteResult and logs failures before returning them unchanged.
func normalize(logger *common.Logger, op Operation, args schema.Args, result any, err error) (any, error) {
	if err != nil {
		logFailure(logger, op.Name, err)
		return nil, err
	}
	if op.Effect == EffectDelete {
		return DeleteResult{Success: true, Message: expand(op.DeleteMessage, args)}, nil
	}
	return result, nil
}

func logFailure(logger *common.Logger, tool string, err error) {
	kind := toolerr.KindOf(err)
	event := logger.Error()
	if kind == toolerr.KindValidation || kind == toolerr.KindNotFound {
		event = logger.Warn()
	}
	event.Str("tool", tool).Str("kind", string(kind)).Str("error", err.Error()).Msg("tool call failed")
}
