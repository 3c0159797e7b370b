package constants

const (
	ListRadarStations = `
	SELECT radar_id, station_name, latitude, longitude, operational_status
	FROM radar_stations
	ORDER BY station_name
	`

	GetOperatorByUsername = `
	SELECT operator_id, username, role, password_hash
	FROM operator_login_access
	WHERE username = $1
	`

	TouchOperatorLastLogin = `
	UPDATE operator_login_access
	SET last_login_time = CURRENT_TIMESTAMP
	WHERE operator_id = $1
	`

	InsertDetection = `
	INSERT INTO detected_aircraft
		(aircraft_identifier, latitude, longitude, altitude_ft, speed_kts, heading_deg, radar_id)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING detection_id
	`

	ListEnabledRules = `
	SELECT rule_id, parameter_name, operator, value, assigned_threat_level, is_enabled
	FROM threat_classification_rules
	WHERE is_enabled = TRUE
	ORDER BY rule_id
	`

	ListAllRules = `
	SELECT rule_id, parameter_name, operator, value, assigned_threat_level, is_enabled
	FROM threat_classification_rules
	ORDER BY rule_id
	`

	InsertClassifiedThreat = `
	INSERT INTO classified_threats (detection_id, threat_level, source, rule_id)
	VALUES ($1, $2, $3, $4)
	RETURNING threat_id
	`

	ListDetectedAircraft = `
	SELECT
		da.detection_id,
		da.aircraft_identifier,
		da.detection_time,
		da.latitude,
		da.longitude,
		da.altitude_ft,
		da.speed_kts,
		da.heading_deg,
		rs.station_name AS radar_station_name,
		ct.threat_id,
		ct.threat_level,
		ct.classification_time,
		ct.source
	FROM detected_aircraft da
	JOIN radar_stations rs ON da.radar_id = rs.radar_id
	JOIN classified_threats ct ON da.detection_id = ct.detection_id
	ORDER BY da.detection_time DESC
	`

	OverrideThreatLevel = `
	UPDATE classified_threats
	SET
		threat_level = $1,
		source = 'Operator Override',
		classification_time = CURRENT_TIMESTAMP,
		operator_id = $2
	WHERE threat_id = $3
	`

	ListAvailableMissiles = `
	SELECT missile_id, missile_type, serial_number
	FROM missile_inventory
	WHERE status = 'Available'
	ORDER BY missile_id
	`

	CountMissiles = `
	SELECT COUNT(*) FROM missile_inventory
	`

	CountMissilesBySerial = `
	SELECT COUNT(*) FROM missile_inventory WHERE serial_number = $1
	`

	InsertMissile = `
	INSERT INTO missile_inventory (missile_type, serial_number, status, last_maintenance_date)
	VALUES ($1, $2, 'Available', CURRENT_TIMESTAMP)
	RETURNING missile_id
	`

	InsertInterceptionLog = `
	INSERT INTO interception_log (threat_id, missile_id, operator_id, result_details)
	VALUES ($1, $2, $3, $4)
	RETURNING log_id
	`

	ConsumeAvailableMissile = `
	UPDATE missile_inventory
	SET status = 'Used'
	WHERE missile_id = $1 AND status = 'Available'
	`

	IncidentSnapshot = `
	SELECT
		da.aircraft_identifier,
		ct.threat_level,
		mi.missile_type,
		ola.username AS launching_operator_username
	FROM detected_aircraft da
	JOIN classified_threats ct ON da.detection_id = ct.detection_id
	JOIN missile_inventory mi ON mi.missile_id = $1
	JOIN operator_login_access ola ON ola.operator_id = $2
	WHERE ct.threat_id = $3
	`

	InsertIncidentReport = `
	INSERT INTO incident_reports
		(log_id, incident_time, aircraft_identifier, threat_level_at_incident,
		 missile_type_used, launching_operator_username, interception_result, report_summary)
	VALUES ($1, CURRENT_TIMESTAMP, $2, $3, $4, $5, 'Pending', $6)
	RETURNING report_id
	`

	ListIncidentReports = `
	SELECT
		ir.report_id,
		ir.log_id,
		ir.incident_time,
		ir.aircraft_identifier,
		ir.threat_level_at_incident,
		ir.missile_type_used,
		ir.launching_operator_username,
		ir.interception_result,
		ir.report_summary,
		il.result_details AS interception_details
	FROM incident_reports ir
	JOIN interception_log il ON ir.log_id = il.log_id
	ORDER BY ir.incident_time DESC
	`

	ListAutomatedAlerts = `
	SELECT
		aa.alert_id,
		aa.threat_id,
		aa.alert_time,
		aa.reason,
		aa.is_acknowledged,
		da.aircraft_identifier,
		ct.threat_level
	FROM automated_alerts aa
	JOIN classified_threats ct ON aa.threat_id = ct.threat_id
	JOIN detected_aircraft da ON ct.detection_id = da.detection_id
	ORDER BY aa.alert_time DESC
	`

	FindThreatNeedingAlert = `
	SELECT ct.threat_id, da.aircraft_identifier, ct.threat_level
	FROM classified_threats ct
	JOIN detected_aircraft da ON ct.detection_id = da.detection_id
	LEFT JOIN interception_log il ON ct.threat_id = il.threat_id
	LEFT JOIN automated_alerts aa ON ct.threat_id = aa.threat_id
	WHERE il.threat_id IS NULL
	  AND aa.threat_id IS NULL
	  AND ct.threat_level IN ('High', 'Critical')
	ORDER BY ct.threat_id ASC
	LIMIT 1
	`

	InsertAutomatedAlert = `
	INSERT INTO automated_alerts (threat_id, alert_time, reason, is_acknowledged)
	VALUES ($1, CURRENT_TIMESTAMP, $2, FALSE)
	RETURNING alert_id
	`

	AcknowledgeAlert = `
	UPDATE automated_alerts
	SET is_acknowledged = TRUE, acknowledged_by_operator_id = $1
	WHERE alert_id = $2 AND is_acknowledged = FALSE
	`

	SurveillanceSummary = `
	SELECT
		rs.station_name,
		rs.operational_status,
		COUNT(DISTINCT da.detection_id) AS detected_aircraft_count,
		COUNT(CASE WHEN ct.threat_level IN ('High', 'Critical') THEN ct.threat_id ELSE NULL END) AS high_threat_count,
		MAX(da.altitude_ft) AS max_altitude_ft,
		MIN(da.altitude_ft) AS min_altitude_ft,
		COALESCE(AVG(da.speed_kts), 0) AS avg_speed_kts
	FROM radar_stations rs
	LEFT JOIN detected_aircraft da ON rs.radar_id = da.radar_id
	LEFT JOIN classified_threats ct ON da.detection_id = ct.detection_id
	GROUP BY rs.station_name, rs.operational_status
	ORDER BY rs.station_name
	`
)
