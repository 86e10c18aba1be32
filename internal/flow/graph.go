package flow

import (
	"encoding/json"
	"fmt"

	"github.com/bobmcallan/retell-mcp/internal/toolerr"
)

// CheckGraph reports node lists the platform would reject: nodes without an
// id, repeated ids, and a start node that is not in the list. An empty
// startNodeID skips the start check.
func CheckGraph(nodes json.RawMessage, startNodeID string) []toolerr.FieldError {
	var problems []toolerr.FieldError
	seen := make(map[string]bool)

	for i, n := range ParseNodes(nodes) {
		field := fmt.Sprintf("nodes[%d].id", i)
		switch {
		case n.ID == "":
			problems = append(problems, toolerr.FieldError{Field: field, Message: "node id is required"})
		case seen[n.ID]:
			problems = append(problems, toolerr.FieldError{Field: field, Message: "duplicate node id " + n.ID})
		}
		seen[n.ID] = true
	}

	if startNodeID != "" && !seen[startNodeID] {
		problems = append(problems, toolerr.FieldError{
			Field:   "start_node_id",
			Message: "references unknown node " + startNodeID,
		})
	}
	return problems
}
