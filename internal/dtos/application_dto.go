package dtos

// ApplicationCreateRequest is a provider's proposal. The 50-character floor
// used to live in the browser only; it is enforced here now.
type ApplicationCreateRequest struct {
	Proposal          string   `json:"proposal" binding:"required,min=50"`
	ProposedRate      *float64 `json:"proposed_rate" binding:"omitempty,gte=0"`
	EstimatedDuration string   `json:"estimated_duration"`
}

type ApplicationDecisionRequest struct {
	Status string `json:"status" binding:"required,oneof=accepted rejected"`
}
