// Package flow edits conversation flow graphs in place.
//
// Flow nodes are deeply polymorphic, so they are handled as raw JSON: only
// the id and instruction of a node are ever read or written, and every other
// byte of the document passes through unchanged.
package flow

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/bobmcallan/retell-mcp/internal/toolerr"
)

// Node is one vertex of a flow graph.
type Node struct {
	ID   string
	Type string
	Raw  json.RawMessage
}

// ParseNodes splits a JSON array of nodes. A missing or non-array value
// yields no nodes.
func ParseNodes(raw json.RawMessage) []Node {
	arr := gjson.ParseBytes(raw)
	if !arr.IsArray() {
		return nil
	}
	var nodes []Node
	arr.ForEach(func(_, n gjson.Result) bool {
		nodes = append(nodes, Node{
			ID:   n.Get("id").String(),
			Type: n.Get("type").String(),
			Raw:  json.RawMessage(n.Raw),
		})
		return true
	})
	return nodes
}

// PatchNodeInstruction returns nodes with the instruction of nodeID replaced.
// Order and all other fields are preserved. When the existing instruction is
// an object, only its text is replaced.
func PatchNodeInstruction(nodes json.RawMessage, nodeID, instruction string) (json.RawMessage, error) {
	parsed := ParseNodes(nodes)
	if len(parsed) == 0 {
		return nil, toolerr.Logic("Conversation flow has no nodes. Cannot find node %s.", nodeID)
	}

	idx := -1
	ids := make([]string, 0, len(parsed))
	for i, n := range parsed {
		ids = append(ids, n.ID)
		if idx < 0 && n.ID == nodeID {
			idx = i
		}
	}
	if idx < 0 {
		return nil, toolerr.NotFound("Node %s not found in conversation flow. Available node IDs: %s",
			nodeID, strings.Join(ids, ", "))
	}

	path := strconv.Itoa(idx) + ".instruction"
	if gjson.GetBytes(parsed[idx].Raw, "instruction").IsObject() {
		path += ".text"
	}

	out, err := sjson.SetBytes(bytes.Clone(nodes), path, instruction)
	if err != nil {
		return nil, errors.Wrapf(err, "set instruction of node %s", nodeID)
	}
	return json.RawMessage(out), nil
}
