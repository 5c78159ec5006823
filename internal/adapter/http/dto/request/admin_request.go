package request

type StatusOverrideRequest struct {
	Status string `json:"status" binding:"required"`
}
