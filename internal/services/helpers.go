package services

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"job-board-api/internal/models"
	"job-board-api/internal/storage"
)

// normalizeStatusToken maps employer-supplied status tokens onto
// ApplicationStatus values, case-insensitively. Cancelled is deliberately
// absent: only the applicant moves an application there, via cancel.
func normalizeStatusToken(token string) (models.ApplicationStatus, error) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "accept", "accepted":
		return models.ApplicationStatusAccepted, nil
	case "reject", "rejected":
		return models.ApplicationStatusRejected, nil
	case "pending":
		return models.ApplicationStatusPending, nil
	default:
		return "", fmt.Errorf("%w: unknown status token %q", ErrInvalidArgument, token)
	}
}

// mapRepoError maps storage errors to service errors
func mapRepoError(err error, operation string) error {
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrNotFound, operation)
	}
	if errors.Is(err, storage.ErrDuplicateEmail) {
		return fmt.Errorf("%w: %s (duplicate email)", ErrConflict, operation)
	}
	if errors.Is(err, storage.ErrConflict) {
		// The repo layer provides more context for conflict errors where possible
		return fmt.Errorf("%w: %s (%v)", ErrConflict, operation, err)
	}
	// Log other unexpected errors
	log.Printf("Unexpected repository error during %s: %v", operation, err)
	return fmt.Errorf("internal error during %s: %w", operation, err)
}
