package dto

import "github.com/google/uuid"

// InsertResponse is the Mongo-style insert acknowledgment the frontend
// expects.
type InsertResponse struct {
	Acknowledged bool      `json:"acknowledged"`
	InsertedID   uuid.UUID `json:"insertedId"`
}
