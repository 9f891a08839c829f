package auth

import (
	"github.com/avtanos/provider-map/internal/database"
	"github.com/avtanos/provider-map/internal/models"
	"github.com/avtanos/provider-map/internal/utils"
)

// Authenticate resolves a username/password pair to a user. Unknown
// username and wrong password are indistinguishable to the caller: both
// return (nil, false), and the password comparison runs either way.
func Authenticate(username, password string) (*models.User, bool) {
	var u models.User
	if err := database.DB.Where("username = ?", username).First(&u).Error; err != nil {
		utils.CheckPasswordHash(password, dummyHash)
		return nil, false
	}

	if !utils.CheckPasswordHash(password, u.PasswordHash) {
		return nil, false
	}

	if !u.IsActive {
		return nil, false
	}

	return &u, true
}
