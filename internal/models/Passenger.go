package models

// Passenger is the profile row for a passenger account. One per account,
// enforced by the unique index on user_id.
type Passenger struct {
	ID               uint   `gorm:"column:passenger_id;primaryKey" json:"passenger_id"`
	UserID           uint   `gorm:"column:user_id;uniqueIndex" json:"user_id"`
	FullName         string `gorm:"column:full_name;not null" json:"full_name"`
	Phone            string `gorm:"column:phone_number" json:"phone_number"`
	DateOfBirth      string `gorm:"column:date_of_birth" json:"date_of_birth"`
	Gender           string `gorm:"column:gender" json:"gender"`
	Address          string `gorm:"column:address" json:"address"`
	EmergencyContact string `gorm:"column:emergency_contact" json:"emergency_contact"`
	EmergencyPhone   string `gorm:"column:emergency_phone" json:"emergency_phone"`
	BloodType        string `gorm:"column:blood_type" json:"blood_type"`
}

func (Passenger) TableName() string {
	return "passengers"
}
