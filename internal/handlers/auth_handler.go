package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/barberbook/booking-api/internal/config"
	"github.com/barberbook/booking-api/internal/middleware"
	"github.com/barberbook/booking-api/internal/models"
	"github.com/barberbook/booking-api/internal/validators"
)

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{db: db, config: cfg}
}

// --------- Requests ---------

type RegisterRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	Phone     string `json:"phone"`
	Role      string `json:"role"`

	// barber profile fields, used when role is BARBER
	ShopName string `json:"shop_name"`
	Address  string `json:"address"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Default weekly availability for a freshly registered barber.
const (
	defaultWorkStart  = "09:00"
	defaultWorkEnd    = "18:00"
	defaultLunchStart = "13:00"
	defaultLunchEnd   = "14:00"
)

var defaultWorkingDays = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday",
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !validators.IsEmailDomainValid(email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_email_domain"})
		return
	}

	var count int64
	h.db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "email_already_registered"})
		return
	}

	role := strings.ToUpper(strings.TrimSpace(req.Role))
	if role != middleware.RoleBarber {
		role = middleware.RoleUser
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_hash_password"})
		return
	}

	user := models.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        email,
		PasswordHash: string(hashed),
		Phone:        req.Phone,
		Role:         role,
	}

	if err := h.db.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_user"})
		return
	}

	var barber *models.Barber
	if role == middleware.RoleBarber {
		b := models.Barber{
			UserID:   user.ID,
			ShopName: req.ShopName,
			Address:  req.Address,
		}
		if err := h.db.Create(&b).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_barber"})
			return
		}
		barber = &b

		h.seedDefaultSchedule(b.ID)
	}

	token, err := h.generateToken(&user, barber)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	resp := gin.H{
		"user": gin.H{
			"id":         user.ID,
			"first_name": user.FirstName,
			"last_name":  user.LastName,
			"email":      user.Email,
			"phone":      user.Phone,
			"role":       user.Role,
		},
		"token": token,
	}
	if barber != nil {
		resp["barber"] = barber
	}

	c.JSON(http.StatusCreated, resp)
}

// seedDefaultSchedule gives a new barber the stock Mon-Sat week so they
// are bookable before configuring anything.
func (h *AuthHandler) seedDefaultSchedule(barberID uint) {
	rows := make([]models.Schedule, 0, len(defaultWorkingDays))
	for _, day := range defaultWorkingDays {
		rows = append(rows, models.Schedule{
			BarberID:   barberID,
			Day:        day,
			StartTime:  defaultWorkStart,
			EndTime:    defaultWorkEnd,
			LunchStart: defaultLunchStart,
			LunchEnd:   defaultLunchEnd,
			IsWorking:  true,
		})
	}
	h.db.Create(&rows)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
		return
	}

	if err := bcrypt.CompareHashAndPassword(
		[]byte(user.PasswordHash),
		[]byte(req.Password),
	); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
		return
	}

	var barber *models.Barber
	if user.Role == middleware.RoleBarber {
		var b models.Barber
		if err := h.db.Where("user_id = ?", user.ID).First(&b).Error; err == nil {
			barber = &b
		}
	}

	token, err := h.generateToken(&user, barber)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":         user.ID,
			"first_name": user.FirstName,
			"last_name":  user.LastName,
			"email":      user.Email,
			"role":       user.Role,
		},
		"token": token,
	})
}

func (h *AuthHandler) generateToken(user *models.User, barber *models.Barber) (string, error) {
	claims := jwt.MapClaims{
		"sub":  float64(user.ID),
		"role": user.Role,
		"exp":  time.Now().Add(7 * 24 * time.Hour).Unix(),
	}
	if barber != nil {
		claims["barberId"] = float64(barber.ID)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
