package request

type AdminUnlockRequest struct {
	AccessCode string `json:"access_code" binding:"required"`
}
