package flow

import (
	"context"
	"encoding/json"

	"github.com/cockroachdb/errors"
	"github.com/tidwall/gjson"

	"github.com/bobmcallan/retell-mcp/internal/common"
)

// Store reads and writes whole conversation flow documents.
type Store interface {
	GetConversationFlow(ctx context.Context, flowID string, version *int) (json.RawMessage, error)
	UpdateConversationFlow(ctx context.Context, flowID string, fields any) (json.RawMessage, error)
}

// Patcher rewrites single node instructions.
//
// Each update is fetch, modify, then submit of the full node list. Two
// concurrent updates of the same flow race and the last submit wins.
type Patcher struct {
	store  Store
	logger *common.Logger
}

func NewPatcher(store Store, logger *common.Logger) *Patcher {
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	return &Patcher{store: store, logger: logger}
}

// UpdateNodeInstruction sets the instruction of nodeID in flowID and returns
// the platform's updated flow.
func (p *Patcher) UpdateNodeInstruction(ctx context.Context, flowID, nodeID, instruction string) (json.RawMessage, error) {
	doc, err := p.store.GetConversationFlow(ctx, flowID, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "fetch conversation flow %s", flowID)
	}

	var nodes json.RawMessage
	if r := gjson.GetBytes(doc, "nodes"); r.Exists() {
		nodes = json.RawMessage(r.Raw)
	}

	patched, err := PatchNodeInstruction(nodes, nodeID, instruction)
	if err != nil {
		return nil, err
	}

	p.logger.Debug().Str("flow_id", flowID).Str("node_id", nodeID).Msg("submitting patched nodes")

	updated, err := p.store.UpdateConversationFlow(ctx, flowID, map[string]json.RawMessage{"nodes": patched})
	if err != nil {
		return nil, errors.Wrapf(err, "submit conversation flow %s", flowID)
	}
	return updated, nil
}
