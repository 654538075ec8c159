package session

import (
	"errors"

	"github.com/phrazzld/scry-cli/internal/service"
)

// Action-level failures reported to the user.
var (
	// ErrSaveLog is returned when the transcript cannot be written.
	ErrSaveLog = errors.New("failed to save log")
)

// errorMessage returns the line printed to the user for a failed action.
// Internal details stay in the structured log.
func errorMessage(err error) string {
	var serviceErr *service.DeckServiceError

	switch {
	case errors.Is(err, service.ErrInvalidCount):
		return "Error: the number of questions must be an integer."
	case errors.Is(err, ErrSaveLog):
		return "Error: the log could not be saved."
	case errors.As(err, &serviceErr) && serviceErr.Operation == "export":
		return "Error: the cards could not be saved."
	case errors.As(err, &serviceErr) && serviceErr.Operation == "import":
		return "Error: the cards could not be loaded."
	default:
		return "Error: an unexpected error occurred."
	}
}
