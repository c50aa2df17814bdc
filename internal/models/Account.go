package models

import "time"

// Account roles. Each account owns at most one profile row in the
// table matching its role.
const (
	RolePassenger   = "passenger"
	RoleBusOperator = "bus_operator"
)

type Account struct {
	ID         uint      `gorm:"column:user_id;primaryKey" json:"user_id"`
	Email      string    `gorm:"column:email;uniqueIndex;not null" json:"email"`
	Password   string    `gorm:"column:password;not null" json:"-"`
	UserType   string    `gorm:"column:user_type;not null" json:"user_type"` // "passenger" or "bus_operator"
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
	IsVerified bool      `gorm:"column:is_verified;default:false" json:"is_verified"`

	// Role-specific relations
	Passenger   *Passenger   `gorm:"foreignKey:UserID" json:"passenger,omitempty"`
	BusOperator *BusOperator `gorm:"foreignKey:UserID" json:"bus_operator,omitempty"`
}

func (Account) TableName() string {
	return "users"
}
