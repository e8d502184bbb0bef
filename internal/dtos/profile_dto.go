package dtos

type ProfileUpdateRequest struct {
	FullName   *string  `json:"full_name"`
	Role       *string  `json:"role" binding:"omitempty,oneof=client provider"`
	Headline   *string  `json:"headline"`
	HourlyRate *float64 `json:"hourly_rate" binding:"omitempty,gte=0"`
	Skills     []string `json:"skills"`
}
