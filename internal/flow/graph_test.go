package flow

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bobmcallan/retell-mcp/internal/toolerr"
)

func TestCheckGraph(t *testing.T) {
	tests := []struct {
		name  string
		nodes string
		start string
		want  []toolerr.FieldError
	}{
		{
			name:  "valid",
			nodes: `[{"id":"a"},{"id":"b"}]`,
			start: "a",
		},
		{
			name:  "start not checked when empty",
			nodes: `[{"id":"a"}]`,
		},
		{
			name:  "duplicate id",
			nodes: `[{"id":"a"},{"id":"a"}]`,
			start: "a",
			want:  []toolerr.FieldError{{Field: "nodes[1].id", Message: "duplicate node id a"}},
		},
		{
			name:  "missing id and unknown start",
			nodes: `[{"type":"end"}]`,
			start: "begin",
			want: []toolerr.FieldError{
				{Field: "nodes[0].id", Message: "node id is required"},
				{Field: "start_node_id", Message: "references unknown node begin"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckGraph(json.RawMessage(tt.nodes), tt.start))
		})
	}
}
