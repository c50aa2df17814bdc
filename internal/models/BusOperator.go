package models

// BusOperator is the profile row for a bus_operator account.
type BusOperator struct {
	ID                  uint   `gorm:"column:operator_id;primaryKey" json:"operator_id"`
	UserID              uint   `gorm:"column:user_id;uniqueIndex" json:"user_id"`
	FullName            string `gorm:"column:full_name;not null" json:"full_name"`
	Phone               string `gorm:"column:phone_number" json:"phone_number"`
	DateOfBirth         string `gorm:"column:date_of_birth" json:"date_of_birth"`
	Gender              string `gorm:"column:gender" json:"gender"`
	Address             string `gorm:"column:address" json:"address"`
	LicenseNumber       string `gorm:"column:license_number;not null" json:"license_number"`
	VehicleRegistration string `gorm:"column:vehicle_registration;not null" json:"vehicle_registration"`
	RouteNumber         string `gorm:"column:route_number" json:"route_number"`
	YearsExperience     int    `gorm:"column:years_experience" json:"years_experience"`
	VehicleType         string `gorm:"column:vehicle_type" json:"vehicle_type"`
	OperatingCompany    string `gorm:"column:operating_company" json:"operating_company"`
	EmergencyContact    string `gorm:"column:emergency_contact" json:"emergency_contact"`
	EmergencyPhone      string `gorm:"column:emergency_phone" json:"emergency_phone"`
}

func (BusOperator) TableName() string {
	return "bus_operators"
}
