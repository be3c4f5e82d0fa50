package handler

type createAgentRequest struct {
	UserID      string            `json:"userId" validate:"required"`
	Name        string            `json:"name"   validate:"required"`
	Description string            `json:"description"`
	Settings    map[string]string `json:"settings"`
}

// updateAgentRequest carries a partial update. The owning user is immutable,
// so a userId field here would be ignored; it is not even accepted.
type updateAgentRequest struct {
	Name        *string           `json:"name"`
	Description *string           `json:"description"`
	Settings    map[string]string `json:"settings"`
}
