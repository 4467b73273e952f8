package verify_tutor

// VerifyTutorRequest HTTP request model
type VerifyTutorRequest struct {
	Status string `json:"status"` // VERIFIED или REJECTED
}
