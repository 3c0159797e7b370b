package dtos

import "time"

type ErrorResponse struct {
	Error string `json:"error"`
}

type OperatorInfo struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type LoginResponse struct {
	Message  string       `json:"message"`
	Operator OperatorInfo `json:"operator"`
	Token    string       `json:"token"`
}

type DetectAircraftResponse struct {
	Message            string `json:"message"`
	DetectionID        int64  `json:"detection_id"`
	AircraftIdentifier string `json:"aircraft_identifier"`
	InitialThreatLevel string `json:"initial_threat_level"`
}

type AircraftListEntry struct {
	DetectionID        int64   `json:"detection_id"`
	AircraftIdentifier string  `json:"aircraft_identifier"`
	DetectionTime      string  `json:"detection_time"`
	Latitude           float64 `json:"latitude"`
	Longitude          float64 `json:"longitude"`
	AltitudeFt         float64 `json:"altitude_ft"`
	SpeedKts           float64 `json:"speed_kts"`
	HeadingDeg         float64 `json:"heading_deg"`
	RadarStationName   string  `json:"radar_station_name"`
	ThreatID           int64   `json:"threat_id"`
	ThreatLevel        string  `json:"threat_level"`
	ClassificationTime string  `json:"classification_time"`
	Source             string  `json:"source"`
}

type OverrideThreatResponse struct {
	Message        string `json:"message"`
	ThreatID       int64  `json:"threatId"`
	NewThreatLevel string `json:"newThreatLevel"`
}

type InterceptionResponse struct {
	Message   string `json:"message"`
	LogID     int64  `json:"logId"`
	ThreatID  int64  `json:"threatId"`
	MissileID int64  `json:"missileId"`
}

type IncidentReportEntry struct {
	ReportID              int64  `json:"report_id"`
	LogID                 int64  `json:"log_id"`
	IncidentTime          string `json:"incident_time"`
	AircraftIdentifier    string `json:"aircraft_identifier"`
	ThreatLevelAtIncident string `json:"threat_level_at_incident"`
	MissileTypeUsed       string `json:"missile_type_used"`
	LaunchingOperator     string `json:"launching_operator_username"`
	InterceptionResult    string `json:"interception_result"`
	ReportSummary         string `json:"report_summary"`
	InterceptionDetails   string `json:"interception_details"`
}

type AlertEntry struct {
	AlertID            int64  `json:"alert_id"`
	ThreatID           int64  `json:"threat_id"`
	AlertTime          string `json:"alert_time"`
	Reason             string `json:"reason"`
	IsAcknowledged     bool   `json:"is_acknowledged"`
	AircraftIdentifier string `json:"aircraft_identifier"`
	ThreatLevel        string `json:"threat_level"`
}

type GenerateAlertResponse struct {
	Message            string `json:"message"`
	AlertID            int64  `json:"alertId"`
	ThreatID           int64  `json:"threatId"`
	AircraftIdentifier string `json:"aircraftIdentifier"`
}

type AcknowledgeAlertResponse struct {
	Message        string `json:"message"`
	AlertID        int64  `json:"alertId"`
	IsAcknowledged bool   `json:"is_acknowledged"`
}

type MissileInfo struct {
	MissileID    int64  `json:"missile_id"`
	MissileType  string `json:"missile_type"`
	SerialNumber string `json:"serial_number"`
	Status       string `json:"status"`
}

type AddMissileResponse struct {
	Message string      `json:"message"`
	Missile MissileInfo `json:"missile"`
}

// FormatTime renders timestamps the way list endpoints serve them.
func FormatTime(t time.Time) string {
	return t.UTC().Format("2006-01-02 15:04:05 -07:00")
}
