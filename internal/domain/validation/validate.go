// Package validation contiene las reglas de campo del panel de inventario.
// Funciones puras, sin efectos: retornan nil o un *domain.ValidationError con el
// mensaje de la primera regla violada. Se invocan antes de cada escritura.
package validation

import (
	"regexp"
	"strings"

	"github.com/jhoicas/invorya-panel/internal/domain"
)

// Límites de campos.
const (
	UsernameMinLen     = 3
	UsernameMaxLen     = 50
	PasswordMinLen     = 6
	PasswordMaxLen     = 255
	FullNameMinLen     = 2
	FullNameMaxLen     = 255
	ProductNameMinLen  = 3
	ProductNameMaxLen  = 255
	CategoryNameMinLen = 2
	CategoryNameMaxLen = 100
	MaxPrice           = 999_999_999
	MaxQuantity        = 999_999
)

var (
	usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	// Forma simple local@dominio.tld; no se pretende validar RFC 5322 completo.
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// Username valida el nombre de usuario (trim, largo, charset).
func Username(username string) error {
	trimmed := strings.TrimSpace(username)
	if trimmed == "" {
		return domain.NewValidationError("username", "Username is required")
	}
	if len(trimmed) < UsernameMinLen {
		return domain.NewValidationError("username", "Username must be at least 3 characters")
	}
	if len(trimmed) > UsernameMaxLen {
		return domain.NewValidationError("username", "Username must be less than 50 characters")
	}
	if !usernameRe.MatchString(trimmed) {
		return domain.NewValidationError("username", "Username can only contain letters, numbers, and underscores")
	}
	return nil
}

// Password valida la contraseña. No se hace trim: los espacios son parte de ella.
func Password(password string) error {
	if password == "" {
		return domain.NewValidationError("password", "Password is required")
	}
	if len(password) < PasswordMinLen {
		return domain.NewValidationError("password", "Password must be at least 6 characters")
	}
	if len(password) > PasswordMaxLen {
		return domain.NewValidationError("password", "Password is too long")
	}
	return nil
}

// Email valida el correo electrónico.
func Email(email string) error {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return domain.NewValidationError("email", "Email is required")
	}
	if !emailRe.MatchString(trimmed) {
		return domain.NewValidationError("email", "Please enter a valid email address")
	}
	return nil
}

// FullName valida el nombre completo.
func FullName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return domain.NewValidationError("full_name", "Full name is required")
	}
	if len(trimmed) < FullNameMinLen {
		return domain.NewValidationError("full_name", "Full name must be at least 2 characters")
	}
	if len(trimmed) > FullNameMaxLen {
		return domain.NewValidationError("full_name", "Full name is too long")
	}
	return nil
}

// ProductName valida el nombre de producto.
func ProductName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return domain.NewValidationError("name", "Product name is required")
	}
	if len(trimmed) < ProductNameMinLen {
		return domain.NewValidationError("name", "Product name must be at least 3 characters")
	}
	if len(trimmed) > ProductNameMaxLen {
		return domain.NewValidationError("name", "Product name is too long")
	}
	return nil
}

// Price valida el precio unitario (entero positivo con tope).
func Price(price int64) error {
	if price <= 0 {
		return domain.NewValidationError("unit_price", "Price must be greater than 0")
	}
	if price > MaxPrice {
		return domain.NewValidationError("unit_price", "Price is too high")
	}
	return nil
}

// Quantity valida la cantidad (entero no negativo con tope).
func Quantity(quantity int) error {
	if quantity < 0 {
		return domain.NewValidationError("quantity", "Quantity cannot be negative")
	}
	if quantity > MaxQuantity {
		return domain.NewValidationError("quantity", "Quantity is too high")
	}
	return nil
}

// CategoryName valida el nombre de categoría.
func CategoryName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return domain.NewValidationError("name", "Category name is required")
	}
	if len(trimmed) < CategoryNameMinLen {
		return domain.NewValidationError("name", "Category name must be at least 2 characters")
	}
	if len(trimmed) > CategoryNameMaxLen {
		return domain.NewValidationError("name", "Category name is too long")
	}
	return nil
}
