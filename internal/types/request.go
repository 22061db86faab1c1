package types

// ExecuteRequest represents a service execution request
type ExecuteRequest struct {
	ToolID string                 `json:"tool_id" binding:"required"`
	Params map[string]interface{} `json:"params" binding:"required"`
}

// DiscoverRequest asks the registry for services matching a query
type DiscoverRequest struct {
	Query string `json:"query" binding:"required"`
}
