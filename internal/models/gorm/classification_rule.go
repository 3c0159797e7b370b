package gorm

// ClassificationRule is one row of the threat rule table. Rules are
// evaluated in rule_id order, first match wins.
type ClassificationRule struct {
	RuleID              int64  `gorm:"column:rule_id;primaryKey;autoIncrement"`
	ParameterName       string `gorm:"column:parameter_name;not null"`
	Operator            string `gorm:"column:operator;not null"`
	Value               string `gorm:"column:value;not null"`
	AssignedThreatLevel string `gorm:"column:assigned_threat_level;not null"`
	IsEnabled           bool   `gorm:"column:is_enabled;not null;default:true"`
}

// TableName specifies the table name for GORM
func (ClassificationRule) TableName() string {
	return "threat_classification_rules"
}
