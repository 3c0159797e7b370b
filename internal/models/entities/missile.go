package entities

import (
	"time"

	"skyshield/bastion/internal/constants"
)

type Missile struct {
	MissileID           int64                   `db:"missile_id" json:"missile_id"`
	MissileType         string                  `db:"missile_type" json:"missile_type"`
	SerialNumber        string                  `db:"serial_number" json:"serial_number"`
	Status              constants.MissileStatus `db:"status" json:"status"`
	LastMaintenanceDate time.Time               `db:"last_maintenance_date" json:"-"`
}

// AvailableMissile is the trimmed projection served to the launch form.
type AvailableMissile struct {
	MissileID    int64  `db:"missile_id" json:"missile_id"`
	MissileType  string `db:"missile_type" json:"missile_type"`
	SerialNumber string `db:"serial_number" json:"serial_number"`
}
