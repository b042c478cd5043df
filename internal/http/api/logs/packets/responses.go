package packets

type SuccessResponse struct {
	Success bool `json:"success"`
}
