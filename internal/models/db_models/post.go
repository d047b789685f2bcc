package db_models

import "github.com/google/uuid"

type Post struct {
	BaseModel
	Title    string
	Content  string
	AuthorID uuid.UUID `gorm:"type:uuid;index"`
	Author   *Account  `gorm:"foreignKey:AuthorID"`
}
