package favorites

import (
	"net/http"
	"strconv"

	"github.com/VSayann/PokeScope-v2/internal/auth"
	"github.com/VSayann/PokeScope-v2/internal/database"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm/clause"
)

type favoriteResponse struct {
	PokemonID int `json:"pokemonId"`
}

func ListHandler(c *gin.Context) {
	var favs []Favorite
	if err := database.DB.Where("user_id = ?", auth.UserID(c)).Find(&favs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "server error"})
		return
	}

	out := make([]favoriteResponse, 0, len(favs))
	for _, f := range favs {
		out = append(out, favoriteResponse{PokemonID: f.PokemonID})
	}
	c.JSON(http.StatusOK, out)
}

func AddHandler(c *gin.Context) {
	pokemonID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid pokemon id"})
		return
	}

	fav := Favorite{UserID: auth.UserID(c), PokemonID: pokemonID}
	// duplicate pairs are a silent no-op, not a conflict
	if err := database.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&fav).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "server error"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "favorite added"})
}

func RemoveHandler(c *gin.Context) {
	pokemonID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid pokemon id"})
		return
	}

	// deleting an absent pair succeeds with no effect
	if err := database.DB.Where("user_id = ? AND pokemon_id = ?", auth.UserID(c), pokemonID).
		Delete(&Favorite{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "favorite removed"})
}
