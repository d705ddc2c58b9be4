package model

// Category groups tasks by area (work, health, study, etc.).
// Names are unique across the whole board.
type Category struct {
	ID   int64  `db:"id" gorm:"primaryKey"`
	Name string `db:"name" gorm:"uniqueIndex;not null"`

	Tasks []Task `db:"-" gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
}
