package dtos

type ReviewSubmitRequest struct {
	ProviderID string `json:"provider_id" binding:"required,uuid"`
	JobID      string `json:"job_id" binding:"required,uuid"`
	Rating     int    `json:"rating" binding:"required,min=1,max=5"`
	ReviewText string `json:"review_text"`
}

// ProviderRatingSummary is computed from review rows at read time; no
// denormalized rating is stored anywhere.
type ProviderRatingSummary struct {
	ProviderID string  `json:"provider_id"`
	Average    float64 `json:"average"`
	Count      int64   `json:"count"`
}
