package retell

import "net/http"

// Platform routes. Placeholders are filled by Route.Endpoint in order.
var (
	RouteCreatePhoneCall = Route{http.MethodPost, "/v2/create-phone-call"}
	RouteCreateWebCall   = Route{http.MethodPost, "/v2/create-web-call"}
	RouteGetCall         = Route{http.MethodGet, "/v2/get-call/{callId}"}
	RouteListCalls       = Route{http.MethodPost, "/v2/list-calls"}
	RouteUpdateCall      = Route{http.MethodPatch, "/v2/update-call/{callId}"}
	RouteDeleteCall      = Route{http.MethodDelete, "/v2/delete-call/{callId}"}

	RouteCreateAgent = Route{http.MethodPost, "/create-agent"}
	RouteGetAgent    = Route{http.MethodGet, "/get-agent/{agentId}"}
	RouteUpdateAgent = Route{http.MethodPatch, "/update-agent/{agentId}"}

	RouteCreatePhoneNumber = Route{http.MethodPost, "/create-phone-number"}
	RouteGetPhoneNumber    = Route{http.MethodGet, "/get-phone-number/{phoneNumber}"}
	RouteUpdatePhoneNumber = Route{http.MethodPatch, "/update-phone-number/{phoneNumber}"}

	RouteGetVoice = Route{http.MethodGet, "/get-voice/{voiceId}"}

	RouteListKnowledgeBases        = Route{http.MethodGet, "/list-knowledge-bases"}
	RouteCreateKnowledgeBase       = Route{http.MethodPost, "/create-knowledge-base"}
	RouteGetKnowledgeBase          = Route{http.MethodGet, "/get-knowledge-base/{knowledgeBaseId}"}
	RouteDeleteKnowledgeBase       = Route{http.MethodDelete, "/delete-knowledge-base/{knowledgeBaseId}"}
	RouteAddKnowledgeBaseSources   = Route{http.MethodPost, "/add-knowledge-base-sources/{knowledgeBaseId}"}
	RouteDeleteKnowledgeBaseSource = Route{http.MethodDelete, "/delete-knowledge-base-source/{knowledgeBaseId}/{sourceId}"}

	RouteCreateRetellLLM = Route{http.MethodPost, "/create-retell-llm"}
	RouteGetRetellLLM    = Route{http.MethodGet, "/get-retell-llm/{llmId}"}
	RouteUpdateRetellLLM = Route{http.MethodPatch, "/update-retell-llm/{llmId}"}

	RouteListConversationFlows  = Route{http.MethodGet, "/list-conversation-flows"}
	RouteGetConversationFlow    = Route{http.MethodGet, "/get-conversation-flow/{conversationFlowId}"}
	RouteUpdateConversationFlow = Route{http.MethodPatch, "/update-conversation-flow/{conversationFlowId}"}
	RouteDeleteConversationFlow = Route{http.MethodDelete, "/delete-conversation-flow/{conversationFlowId}"}

	RouteListSharedComponents  = Route{http.MethodGet, "/list-shared-components"}
	RouteCreateSharedComponent = Route{http.MethodPost, "/create-shared-component"}
	RouteGetSharedComponent    = Route{http.MethodGet, "/get-shared-component/{componentId}"}
	RouteUpdateSharedComponent = Route{http.MethodPatch, "/update-shared-component/{componentId}"}
	RouteDeleteSharedComponent = Route{http.MethodDelete, "/delete-shared-component/{componentId}"}

	RouteCreateBatchTest = Route{http.MethodPost, "/create-batch-test"}
	RouteGetBatchTest    = Route{http.MethodGet, "/get-batch-test/{batchTestId}"}
	RouteListBatchTests  = Route{http.MethodGet, "/list-batch-tests"}

	RouteCreateTestCase = Route{http.MethodPost, "/create-test-case"}
	RouteGetTestCase    = Route{http.MethodGet, "/get-test-case/{testCaseId}"}
	RouteUpdateTestCase = Route{http.MethodPatch, "/update-test-case/{testCaseId}"}
	RouteDeleteTestCase = Route{http.MethodDelete, "/delete-test-case/{testCaseId}"}
	RouteListTestCases  = Route{http.MethodGet, "/list-test-cases"}

	RouteGetConcurrency = Route{http.MethodGet, "/get-concurrency"}
)
