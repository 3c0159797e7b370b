package dtos

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// DetectAircraftRequest carries one radar observation. Numeric fields
// are pointers so an absent field is distinguishable from zero.
type DetectAircraftRequest struct {
	AircraftIdentifier string   `json:"aircraft_identifier"`
	Latitude           *float64 `json:"latitude"`
	Longitude          *float64 `json:"longitude"`
	AltitudeFt         *float64 `json:"altitude_ft"`
	SpeedKts           *float64 `json:"speed_kts"`
	HeadingDeg         *float64 `json:"heading_deg"`
	RadarID            *int64   `json:"radar_id"`
}

// Complete reports whether every detection field was submitted.
func (r *DetectAircraftRequest) Complete() bool {
	return r.AircraftIdentifier != "" &&
		r.Latitude != nil &&
		r.Longitude != nil &&
		r.AltitudeFt != nil &&
		r.SpeedKts != nil &&
		r.HeadingDeg != nil &&
		r.RadarID != nil
}

// Fields returns the submission as the classifier's field set, keyed by
// the wire names rules refer to.
func (r *DetectAircraftRequest) Fields() map[string]interface{} {
	return map[string]interface{}{
		"aircraft_identifier": r.AircraftIdentifier,
		"latitude":            *r.Latitude,
		"longitude":           *r.Longitude,
		"altitude_ft":         *r.AltitudeFt,
		"speed_kts":           *r.SpeedKts,
		"heading_deg":         *r.HeadingDeg,
		"radar_id":            *r.RadarID,
	}
}

type OverrideThreatRequest struct {
	NewThreatLevel string `json:"newThreatLevel"`
	OperatorID     int64  `json:"operatorId"`
}

type InterceptionRequest struct {
	ThreatID          int64  `json:"threatId"`
	MissileID         int64  `json:"missileId"`
	OperatorID        int64  `json:"operatorId"`
	InterceptionNotes string `json:"interceptionNotes"`
}

type AddMissileRequest struct {
	MissileType string `json:"missile_type"`
}

type AcknowledgeAlertRequest struct {
	OperatorID int64 `json:"operatorId"`
}
