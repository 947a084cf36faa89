package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invorya-panel/internal/domain"
	"github.com/jhoicas/invorya-panel/internal/domain/validation"
)

func TestUsername(t *testing.T) {
	cases := []struct {
		name     string
		username string
		wantErr  string // vacío = válido
	}{
		{"válido simple", "admin1", ""},
		{"válido con underscore", "user_name_99", ""},
		{"válido con espacios alrededor", "  admin1  ", ""},
		{"vacío", "", "Username is required"},
		{"solo espacios", "   ", "Username is required"},
		{"muy corto", "ab", "Username must be at least 3 characters"},
		{"muy largo", "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", "Username must be less than 50 characters"},
		{"con espacio interno", "has space", "Username can only contain letters, numbers, and underscores"},
		{"con guion", "user-name", "Username can only contain letters, numbers, and underscores"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validation.Username(tc.username)
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tc.wantErr, err.Error())
			assert.NotNil(t, domain.AsValidation(err), "debe ser un ValidationError")
		})
	}
}

func TestPassword(t *testing.T) {
	assert.NoError(t, validation.Password("secret1"))
	assert.EqualError(t, validation.Password(""), "Password is required")
	assert.EqualError(t, validation.Password("12345"), "Password must be at least 6 characters")

	long := make([]byte, 256)
	for i := range long {
		long[i] = 'x'
	}
	assert.EqualError(t, validation.Password(string(long)), "Password is too long")
}

func TestEmail(t *testing.T) {
	assert.NoError(t, validation.Email("user@example.com"))
	assert.NoError(t, validation.Email("  user@example.com  "))
	assert.EqualError(t, validation.Email(""), "Email is required")
	assert.EqualError(t, validation.Email("not-an-email"), "Please enter a valid email address")
	assert.EqualError(t, validation.Email("user@nodomain"), "Please enter a valid email address")
	assert.EqualError(t, validation.Email("user @example.com"), "Please enter a valid email address")
}

func TestFullName(t *testing.T) {
	assert.NoError(t, validation.FullName("Juan Pérez"))
	assert.EqualError(t, validation.FullName(""), "Full name is required")
	assert.EqualError(t, validation.FullName("J"), "Full name must be at least 2 characters")
}

func TestProductName(t *testing.T) {
	assert.NoError(t, validation.ProductName("Teclado mecánico"))
	assert.EqualError(t, validation.ProductName(""), "Product name is required")
	assert.EqualError(t, validation.ProductName("ab"), "Product name must be at least 3 characters")
}

// Límites de precio y cantidad del modelo de datos.
func TestPriceYQuantity(t *testing.T) {
	assert.NoError(t, validation.Price(1))
	assert.NoError(t, validation.Price(999_999_999))
	assert.EqualError(t, validation.Price(0), "Price must be greater than 0")
	assert.EqualError(t, validation.Price(-5), "Price must be greater than 0")
	assert.EqualError(t, validation.Price(1_000_000_000), "Price is too high")

	assert.NoError(t, validation.Quantity(0))
	assert.NoError(t, validation.Quantity(999_999))
	assert.EqualError(t, validation.Quantity(-1), "Quantity cannot be negative")
	assert.EqualError(t, validation.Quantity(1_000_000), "Quantity is too high")
}

func TestCategoryName(t *testing.T) {
	assert.NoError(t, validation.CategoryName("Periféricos"))
	assert.EqualError(t, validation.CategoryName(""), "Category name is required")
	assert.EqualError(t, validation.CategoryName("a"), "Category name must be at least 2 characters")
}
