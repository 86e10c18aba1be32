package retell

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoute_Endpoint(t *testing.T) {
	tests := []struct {
		name  string
		route Route
		ids   []string
		want  string
	}{
		{"no params", RouteListConversationFlows, nil, "/list-conversation-flows"},
		{"single id", RouteGetAgent, []string{"agent_1"}, "/get-agent/agent_1"},
		{"escaped id", RouteGetPhoneNumber, []string{"+1 415/555"}, "/get-phone-number/+1%20415%2F555"},
		{"parent and child", RouteDeleteKnowledgeBaseSource, []string{"kb_1", "src_2"}, "/delete-knowledge-base-source/kb_1/src_2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ep := tt.route.Endpoint(tt.ids...)
			assert.Equal(t, tt.want, ep.Path)
			assert.Equal(t, tt.route.Method, ep.Method)
		})
	}
}

func TestRoute_Params(t *testing.T) {
	assert.Equal(t, []string{"knowledgeBaseId", "sourceId"}, RouteDeleteKnowledgeBaseSource.Params())
	assert.Equal(t, []string{"callId"}, RouteGetCall.Params())
	assert.Empty(t, RouteCreateAgent.Params())
}

func TestEndpoint_Target(t *testing.T) {
	ep := Route{http.MethodGet, "/get-conversation-flow/{id}"}.Endpoint("cf_1")
	assert.Equal(t, "/get-conversation-flow/cf_1", ep.target())

	ep = ep.WithQuery(map[string][]string{"version": {"3"}})
	assert.Equal(t, "/get-conversation-flow/cf_1?version=3", ep.target())
}
