package entities

type RadarStation struct {
	RadarID           int64   `db:"radar_id" json:"radar_id"`
	StationName       string  `db:"station_name" json:"station_name"`
	Latitude          float64 `db:"latitude" json:"latitude"`
	Longitude         float64 `db:"longitude" json:"longitude"`
	OperationalStatus string  `db:"operational_status" json:"operational_status"`
}
