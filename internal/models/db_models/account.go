package db_models

const (
	RoleStudent    = "student"
	RoleInstructor = "instructor"
)

type Account struct {
	BaseModel
	Name         string
	Email        string `gorm:"unique"`
	PasswordHash string
	Role         string `gorm:"default:student;index"`

	Enrollments []Enrollment `gorm:"foreignKey:BuyerID"`
}
