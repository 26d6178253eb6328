package favorites

type Favorite struct {
	UserID    uint `gorm:"primaryKey;autoIncrement:false"`
	PokemonID int  `gorm:"primaryKey;autoIncrement:false"`
}
