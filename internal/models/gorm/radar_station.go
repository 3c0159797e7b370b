package gorm

// RadarStation is one surveillance radar site.
type RadarStation struct {
	RadarID           int64   `gorm:"column:radar_id;primaryKey;autoIncrement"`
	StationName       string  `gorm:"column:station_name;not null"`
	Latitude          float64 `gorm:"column:latitude;not null"`
	Longitude         float64 `gorm:"column:longitude;not null"`
	OperationalStatus string  `gorm:"column:operational_status;not null;default:Operational"`
}

// TableName specifies the table name for GORM
func (RadarStation) TableName() string {
	return "radar_stations"
}
