package services

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"portal-service/internal/models"
	"portal-service/pkg/common"
)

// 11-digit local mobile format, e.g. 017XXXXXXXX.
var phonePattern = regexp.MustCompile(`^01[3-9]\d{8}$`)

// Payout wallet providers accepted on a profile.
var walletProviders = map[string]struct{}{
	"bKash":  {},
	"Nagad":  {},
	"Rocket": {},
}

const (
	minPasswordLen = 6
	tokenLifetime  = 24 * time.Hour

	// Account id collisions are resolved by regenerating; the space is
	// six digits so a handful of retries is plenty.
	accountIDRetries = 5
)

type AuthService struct {
	DB *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{DB: db}
}

func jwtSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "dev-secret-change-me"
	}
	return []byte(secret)
}

func ValidatePhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

// Register creates a profile with a hashed password, a zero balance and a
// fresh BT account code. A duplicate phone number returns
// ErrDuplicateAccount.
func (s *AuthService) Register(phone, password string) (models.Profile, error) {
	phone = strings.TrimSpace(phone)
	password = strings.TrimSpace(password)

	if !ValidatePhone(phone) {
		return models.Profile{}, fmt.Errorf("phone must be 11 digits in local format: %w", ErrValidation)
	}
	if len(password) < minPasswordLen {
		return models.Profile{}, fmt.Errorf("password must be at least %d characters: %w", minPasswordLen, ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.Profile{}, err
	}

	profile := models.Profile{
		PhoneNumber:  phone,
		PasswordHash: string(hash),
		Email:        phone + "@bractrading.com",
		Balance:      0,
	}

	for attempt := 0; attempt < accountIDRetries; attempt++ {
		profile.AccountID = common.GenerateAccountID()
		err = s.DB.Create(&profile).Error
		if err == nil {
			return profile, nil
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// The phone index and the account id index share the same
			// error; check which one tripped.
			var existing models.Profile
			if lookupErr := s.DB.Where("phone_number = ?", phone).First(&existing).Error; lookupErr == nil {
				return models.Profile{}, ErrDuplicateAccount
			}
			continue // account id collision, regenerate
		}
		return models.Profile{}, err
	}
	return models.Profile{}, fmt.Errorf("could not allocate account id: %w", err)
}

// Login verifies the credential pair. Unknown phone and wrong password
// are indistinguishable to the caller.
func (s *AuthService) Login(phone, password string) (models.Profile, error) {
	phone = strings.TrimSpace(phone)

	var profile models.Profile
	err := s.DB.Where("phone_number = ?", phone).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Profile{}, ErrAuthFailure
	}
	if err != nil {
		return models.Profile{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(strings.TrimSpace(password))) != nil {
		return models.Profile{}, ErrAuthFailure
	}

	return profile, nil
}

// IssueToken signs a session token carrying the profile id and admin flag.
func (s *AuthService) IssueToken(profile models.Profile) (string, error) {
	claims := jwt.MapClaims{
		"sub": fmt.Sprintf("%d", profile.ID),
		"adm": profile.IsAdmin,
		"exp": time.Now().Add(tokenLifetime).Unix(),
		"iat": time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

// TokenClaims is the decoded session identity.
type TokenClaims struct {
	UserID  uint
	IsAdmin bool
}

// ParseToken validates a session token and extracts its identity.
func ParseToken(tokenString string) (TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return jwtSecret(), nil
	})
	if err != nil || !token.Valid {
		return TokenClaims{}, ErrAuthFailure
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return TokenClaims{}, ErrAuthFailure
	}

	sub, _ := claims["sub"].(string)
	var userID uint
	if _, err := fmt.Sscanf(sub, "%d", &userID); err != nil || userID == 0 {
		return TokenClaims{}, ErrAuthFailure
	}
	isAdmin, _ := claims["adm"].(bool)

	return TokenClaims{UserID: userID, IsAdmin: isAdmin}, nil
}

// GetProfile fetches a profile by id.
func (s *AuthService) GetProfile(userID uint) (models.Profile, error) {
	var profile models.Profile
	err := s.DB.First(&profile, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return profile, fmt.Errorf("profile %d: %w", userID, ErrNotFound)
	}
	return profile, err
}

// SetWallet links a payout wallet (provider + number) to the profile.
func (s *AuthService) SetWallet(userID uint, provider, number string) (models.Profile, error) {
	provider = strings.TrimSpace(provider)
	number = strings.TrimSpace(number)

	if _, ok := walletProviders[provider]; !ok {
		return models.Profile{}, fmt.Errorf("unknown wallet provider %q: %w", provider, ErrValidation)
	}
	if !ValidatePhone(number) {
		return models.Profile{}, fmt.Errorf("wallet number must be 11 digits in local format: %w", ErrValidation)
	}

	if err := s.DB.Model(&models.Profile{}).Where("id = ?", userID).
		Updates(map[string]interface{}{
			"wallet_provider": provider,
			"wallet_number":   number,
		}).Error; err != nil {
		return models.Profile{}, err
	}

	return s.GetProfile(userID)
}
