package db_models

type Place struct {
	BaseModel
	Name        string `gorm:"index"`
	Location    string
	Description string
	ImageURL    string
}
