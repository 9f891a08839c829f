package utils_test

import (
	"strings"
	"testing"

	"github.com/avtanos/provider-map/internal/utils"
	"github.com/stretchr/testify/assert"
)

func TestGenerateAndParseJWT(t *testing.T) {
	token, err := utils.GenerateJWT("bob", "user")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	username, err := utils.ParseJWT(token)
	assert.NoError(t, err)
	assert.Equal(t, "bob", username)
}

func TestParseJWT_Invalid(t *testing.T) {
	t.Run("Garbage token", func(t *testing.T) {
		_, err := utils.ParseJWT("not.a.token")
		assert.Error(t, err)
	})

	t.Run("Tampered signature", func(t *testing.T) {
		token, err := utils.GenerateJWT("bob", "user")
		assert.NoError(t, err)

		parts := strings.Split(token, ".")
		assert.Len(t, parts, 3)
		prefix := "AAAA"
		if strings.HasPrefix(parts[2], prefix) {
			prefix = "BBBB"
		}
		tampered := parts[0] + "." + parts[1] + "." + prefix + parts[2][4:]

		_, err = utils.ParseJWT(tampered)
		assert.Error(t, err)
	})

	t.Run("Empty token", func(t *testing.T) {
		_, err := utils.ParseJWT("")
		assert.Error(t, err)
	})
}
