package gorm

import "time"

// Missile is one inventory row. Status only ever moves
// Available -> Used.
type Missile struct {
	MissileID           int64     `gorm:"column:missile_id;primaryKey;autoIncrement"`
	MissileType         string    `gorm:"column:missile_type;not null"`
	SerialNumber        string    `gorm:"column:serial_number;uniqueIndex;not null"`
	Status              string    `gorm:"column:status;not null;default:Available"`
	LastMaintenanceDate time.Time `gorm:"column:last_maintenance_date;not null;default:CURRENT_TIMESTAMP"`
}

// TableName specifies the table name for GORM
func (Missile) TableName() string {
	return "missile_inventory"
}
