package auth

import (
	"errors"
	"net/http"
	"time"

	"github.com/VSayann/PokeScope-v2/internal/database"
	"github.com/VSayann/PokeScope-v2/internal/session"
	"github.com/VSayann/PokeScope-v2/internal/users"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// postgres unique_violation, raised when the uniqueness pre-check races
// with a concurrent registration
const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

type Handler struct {
	Sessions session.Store
	TTL      time.Duration
}

func NewHandler(store session.Store, ttl time.Duration) *Handler {
	return &Handler{Sessions: store, TTL: ttl}
}

type registerDTO struct {
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"required,min=2"`
	Password string `json:"password" binding:"required"`
}

type loginDTO struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

type profileDTO struct {
	Username        *string `json:"username"`
	ProfileImageURL *string `json:"profileImageUrl"`
}

// openSession creates a session for the user and sets the signed cookie.
func (h *Handler) openSession(c *gin.Context, userID uint) error {
	sessionID, err := h.Sessions.Create(c.Request.Context(), userID, h.TTL)
	if err != nil {
		return err
	}
	token, err := SignSessionToken(sessionID, h.TTL)
	if err != nil {
		return err
	}
	c.SetCookie(CookieName, token, int(h.TTL.Seconds()), "/", "", false, true)
	return nil
}

func (h *Handler) Register(c *gin.Context) {
	var dto registerDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid username, email or password"})
		return
	}

	var count int64
	if err := database.DB.Model(&users.User{}).
		Where("email = ? OR username = ?", dto.Email, dto.Username).
		Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "server error"})
		return
	}
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"message": "email or username already taken"})
		return
	}

	hashed, err := users.HashPassword(dto.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to hash password"})
		return
	}

	user := users.User{
		Email:        dto.Email,
		Username:     dto.Username,
		PasswordHash: hashed,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		if isUniqueViolation(err) {
			c.JSON(http.StatusConflict, gin.H{"message": "email or username already taken"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "server error"})
		return
	}

	if err := h.openSession(c, user.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to create session"})
		return
	}

	c.JSON(http.StatusCreated, users.ToResponse(&user))
}

func (h *Handler) Login(c *gin.Context) {
	var dto loginDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "identifier and password are required"})
		return
	}

	var u users.User
	err := database.DB.First(&u, "email = ? OR username = ?", dto.Identifier, dto.Identifier).Error
	if err != nil || !users.CheckPassword(u.PasswordHash, dto.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid credentials"})
		return
	}

	if err := h.openSession(c, u.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to create session"})
		return
	}

	c.JSON(http.StatusOK, users.ToResponse(&u))
}

func (h *Handler) Logout(c *gin.Context) {
	sessionID := c.GetString("session_id")
	if err := h.Sessions.Destroy(c.Request.Context(), sessionID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to destroy session"})
		return
	}
	c.SetCookie(CookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

func (h *Handler) Me(c *gin.Context) {
	var u users.User
	if err := database.DB.First(&u, UserID(c)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "server error"})
		return
	}
	c.JSON(http.StatusOK, users.ToResponse(&u))
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	var dto profileDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid body"})
		return
	}

	userID := UserID(c)

	if dto.Username != nil {
		var count int64
		if err := database.DB.Model(&users.User{}).
			Where("username = ? AND id <> ?", *dto.Username, userID).
			Count(&count).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "server error"})
			return
		}
		if count > 0 {
			c.JSON(http.StatusConflict, gin.H{"message": "username already taken"})
			return
		}
	}

	// only the provided fields are touched
	updates := map[string]interface{}{}
	if dto.Username != nil {
		updates["username"] = *dto.Username
	}
	if dto.ProfileImageURL != nil {
		updates["profile_image_url"] = *dto.ProfileImageURL
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&users.User{}).Where("id = ?", userID).
			Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "server error"})
			return
		}
	}

	var u users.User
	if err := database.DB.First(&u, userID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "server error"})
		return
	}
	c.JSON(http.StatusOK, users.ToResponse(&u))
}
