package services

import (
	"context"
	"fmt"

	"skyshield/bastion/internal/constants"
	"skyshield/bastion/internal/db/repositories"
)

// ThreatService applies operator overrides to classified threats.
type ThreatService struct {
	threats *repositories.ThreatRepository
}

func NewThreatService(threats *repositories.ThreatRepository) *ThreatService {
	return &ThreatService{threats: threats}
}

// Override sets a threat's level manually, stamping the acting operator
// and source. Last write wins between concurrent overrides.
func (s *ThreatService) Override(ctx context.Context, threatID, operatorID int64, level constants.ThreatLevel) error {
	if !level.Valid() {
		return ErrInvalidThreatLevel
	}

	affected, err := s.threats.Override(ctx, threatID, operatorID, level)
	if err != nil {
		return fmt.Errorf("override threat %d: %w", threatID, err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
