package services

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"skyshield/bastion/internal/constants"
	"skyshield/bastion/internal/db/repositories"
	"skyshield/bastion/internal/models/dtos"
	"skyshield/bastion/internal/models/entities"
)

const serialAttempts = 10

// MissileService manages the bounded missile inventory.
type MissileService struct {
	missiles *repositories.MissileRepository
	rng      *rand.Rand
}

func NewMissileService(missiles *repositories.MissileRepository) *MissileService {
	return &MissileService{
		missiles: missiles,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// AddMissile inserts one Available missile unless the inventory cap is
// reached. The count check and insert are separate statements; the cap
// is an operator convenience, not a hard constraint.
func (s *MissileService) AddMissile(ctx context.Context, missileType string) (*dtos.MissileInfo, error) {
	count, err := s.missiles.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count missiles: %w", err)
	}
	if count >= constants.MaxMissileInventory {
		return nil, ErrInventoryFull
	}

	serial, err := s.uniqueSerial(ctx, missileType)
	if err != nil {
		return nil, err
	}

	id, err := s.missiles.Insert(ctx, missileType, serial)
	if err != nil {
		return nil, fmt.Errorf("insert missile: %w", err)
	}

	return &dtos.MissileInfo{
		MissileID:    id,
		MissileType:  missileType,
		SerialNumber: serial,
		Status:       string(constants.MissileAvailable),
	}, nil
}

func (s *MissileService) ListAvailable(ctx context.Context) ([]entities.AvailableMissile, error) {
	return s.missiles.ListAvailable(ctx)
}

// uniqueSerial draws serial numbers until one is free. serial_number is
// unique-indexed, so an unchecked colliding draw would fail the insert.
func (s *MissileService) uniqueSerial(ctx context.Context, missileType string) (string, error) {
	for i := 0; i < serialAttempts; i++ {
		serial := s.generateSerial(missileType)
		taken, err := s.missiles.SerialExists(ctx, serial)
		if err != nil {
			return "", fmt.Errorf("check serial %s: %w", serial, err)
		}
		if !taken {
			return serial, nil
		}
	}
	return "", fmt.Errorf("no free serial number for %q after %d attempts", missileType, serialAttempts)
}

// generateSerial builds "<TYPE3>-<100..999>" from the missile type's
// first three characters.
func (s *MissileService) generateSerial(missileType string) string {
	prefix := []rune(missileType)
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}
	return fmt.Sprintf("%s-%d", strings.ToUpper(string(prefix)), 100+s.rng.Intn(900))
}
