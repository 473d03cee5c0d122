package db_models

import (
	"github.com/google/uuid"
)

type Course struct {
	BaseModel
	Title        string `gorm:"index"`
	Description  *string
	CoverImage   string
	PriceMinor   int64     // 1500000 = ARS 15000.00
	Currency     string    `gorm:"size:3"` // ISO 4217 (e.g., "ARS","USD")
	InstructorID uuid.UUID `gorm:"index"`
	IsPublished  bool      `gorm:"default:true"`

	Instructor Account `gorm:"foreignKey:InstructorID"`
}
