package constants

const (
	MsgRadarFetchFailed      = "Failed to fetch data from the database"
	MsgLoginFieldsRequired   = "Username and password are required."
	MsgInvalidCredentials    = "Invalid username or password."
	MsgLoginFailed           = "Login failed due to server error."
	MsgDetectionFieldsNeeded = "All aircraft detection fields are required."
	MsgDetectionFailed       = "Failed to detect aircraft due to server error."
	MsgOverrideFieldsNeeded  = "Valid threatId, newThreatLevel, and operatorId are required."
	MsgInvalidThreatLevel    = "Invalid newThreatLevel provided."
	MsgOverrideFailed        = "Failed to override threat level due to server error."
	MsgInterceptFieldsNeeded = "Valid threatId, missileId, and operatorId are required for interception."
	MsgMissileUnavailable    = "Selected missile is not available or does not exist."
	MsgIncidentDetailsNotF   = "Could not find all details for incident report generation."
	MsgInterceptFailed       = "Failed to initiate interception or create incident report due to server error."
	MsgNoThreatToAlert       = "No unintercepted high/critical threats found to generate an alert for."
	MsgAlertGenFailed        = "Failed to generate automated alert due to server error."
	MsgMissileTypeRequired   = "Missile type is required."
	MsgMissileAddFailed      = "Failed to add new missile due to server error."
	MsgAckFieldsNeeded       = "Valid alertId and operatorId are required."
	MsgAckFailed             = "Failed to acknowledge alert due to server error."
	MsgAircraftListFailed    = "Failed to fetch detected aircraft data."
	MsgMissileListFailed     = "Failed to fetch available missile data."
	MsgIncidentListFailed    = "Failed to fetch incident reports."
	MsgAlertListFailed       = "Failed to fetch automated alerts."
	MsgSummaryFailed         = "Failed to fetch surveillance summary."
	MsgRulesListFailed       = "Failed to fetch classification rules."
)
