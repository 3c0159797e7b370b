package entities

import "time"

type Operator struct {
	OperatorID    int64      `db:"operator_id"`
	Username      string     `db:"username"`
	Role          string     `db:"role"`
	PasswordHash  string     `db:"password_hash"`
	LastLoginTime *time.Time `db:"last_login_time"`
}
