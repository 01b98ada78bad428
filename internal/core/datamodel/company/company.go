package company

import "time"

// Company is a row of the companies table. Properties is an open attribute
// bag stored as JSON; filter it with query.AttributeEquals.
type Company struct {
	ID         int64                  `gorm:"primaryKey"`
	Name       string                 `gorm:"column:name;not null"`
	Properties map[string]interface{} `gorm:"column:properties;type:jsonb;serializer:json"`
	CreatedAt  time.Time              `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time              `gorm:"column:updated_at;autoUpdateTime"`
}

func (Company) TableName() string {
	return "companies"
}
