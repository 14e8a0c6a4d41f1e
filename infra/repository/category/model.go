package category

// Category represents a category record in the database.
type Category struct {
	ID        int64  `gorm:"primaryKey"`
	UserID    int64  `gorm:"not null;index"`
	Name      string `gorm:"size:50;not null"`
	Type      string `gorm:"size:10;not null"`
	IsDefault bool   `gorm:"not null"`
}

// TableName specifies the table name for the Category model.
func (Category) TableName() string {
	return "categories"
}
