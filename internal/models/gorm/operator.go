package gorm

import "time"

// Operator is an operator login account. PasswordHash is a bcrypt hash.
type Operator struct {
	OperatorID    int64      `gorm:"column:operator_id;primaryKey;autoIncrement"`
	Username      string     `gorm:"column:username;uniqueIndex;not null"`
	PasswordHash  string     `gorm:"column:password_hash;not null"`
	Role          string     `gorm:"column:role;not null;default:operator"`
	LastLoginTime *time.Time `gorm:"column:last_login_time"`
}

// TableName specifies the table name for GORM
func (Operator) TableName() string {
	return "operator_login_access"
}
