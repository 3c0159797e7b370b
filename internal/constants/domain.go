package constants

import (
	"database/sql/driver"
	"fmt"
)

type (
	ThreatLevel   string
	MissileStatus string
	ThreatSource  string
	CachePrefix   string
)

const (
	ThreatUnknown  ThreatLevel = "Unknown"
	ThreatLow      ThreatLevel = "Low"
	ThreatModerate ThreatLevel = "Moderate"
	ThreatHigh     ThreatLevel = "High"
	ThreatCritical ThreatLevel = "Critical"

	MissileAvailable MissileStatus = "Available"
	MissileUsed      MissileStatus = "Used"

	SourceAutoClassified   ThreatSource = "Auto-classified"
	SourceOperatorOverride ThreatSource = "Operator Override"

	CachePrefixEnabledRules CachePrefix = "RULES_ENABLED"
)

// MaxMissileInventory caps the missile_inventory row count.
const MaxMissileInventory = 16

// RuleOperators are the comparison operators a classification rule may carry.
var RuleOperators = map[string]struct{}{
	"<": {},
	">": {},
	"=": {},
}

func (t ThreatLevel) String() string { return string(t) }

// Valid reports whether t is one of the five fixed levels.
func (t ThreatLevel) Valid() bool {
	switch t {
	case ThreatUnknown, ThreatLow, ThreatModerate, ThreatHigh, ThreatCritical:
		return true
	}
	return false
}

// Scan implements the sql.Scanner interface
func (t *ThreatLevel) Scan(src interface{}) error {
	if src == nil {
		*t = ""
		return nil
	}
	switch v := src.(type) {
	case string:
		*t = ThreatLevel(v)
	case []byte:
		*t = ThreatLevel(v)
	default:
		return fmt.Errorf("ThreatLevel: cannot scan type %T", src)
	}
	return nil
}

// Value implements the driver.Valuer interface
func (t ThreatLevel) Value() (driver.Value, error) { return string(t), nil }

func (s MissileStatus) String() string { return string(s) }

// Scan implements the sql.Scanner interface
func (s *MissileStatus) Scan(src interface{}) error {
	if src == nil {
		*s = ""
		return nil
	}
	switch v := src.(type) {
	case string:
		*s = MissileStatus(v)
	case []byte:
		*s = MissileStatus(v)
	default:
		return fmt.Errorf("MissileStatus: cannot scan type %T", src)
	}
	return nil
}

// Value implements the driver.Valuer interface
func (s MissileStatus) Value() (driver.Value, error) { return string(s), nil }
