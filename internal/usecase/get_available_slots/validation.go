package get_available_slots

import (
	"fmt"

	"github.com/google/uuid"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.TutorID == uuid.Nil {
		return fmt.Errorf("%w: tutorID is required", ErrInvalidInput)
	}

	if req.HorizonDays < 0 {
		return fmt.Errorf("%w: horizonDays must not be negative", ErrInvalidInput)
	}

	return nil
}
