package model

type Organization struct {
	BaseModel
	Name      string `gorm:"unique;not null;type:text" json:"name" form:"name" binding:"required"`
	IsDefault bool   `gorm:"not null;default:false" json:"isDefault" form:"isDefault"`
}

func (o Organization) TableName() string {
	return "organizations"
}
