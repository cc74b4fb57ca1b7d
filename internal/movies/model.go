package movies

// Movie is one entry in the user's collection. Title carries the uniqueness
// constraint; a second insert with the same title fails at the database.
// Ranking is stored and defaulted to 0 but not recomputed anywhere yet.
type Movie struct {
	ID          uint    `gorm:"primaryKey"`
	Title       string  `gorm:"size:250;uniqueIndex;not null"`
	Slug        string  `gorm:"size:250;index"`
	Year        int     `gorm:"not null"`
	Description string  `gorm:"size:1000"`
	Rating      float64 `gorm:"not null;default:0"`
	Ranking     int     `gorm:"not null;default:0"`
	Review      string  `gorm:"size:250"`
	ImgURL      string  `gorm:"size:250;not null"`
}
