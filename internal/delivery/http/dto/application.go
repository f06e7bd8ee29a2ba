package dto

type ApplicationStatusUpdateRequest struct {
	Status string `json:"status"`
}

// UpdateResponse is the Mongo-style update acknowledgment the frontend
// expects.
type UpdateResponse struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}
