package password

const (
	// MinLength is the shortest password accepted by the registration forms
	MinLength = 6
)

// ValidatePassword checks if password meets requirements
func ValidatePassword(password string) bool {
	return len(password) >= MinLength
}

// Matches reports whether the confirmation equals the password
func Matches(password, confirmation string) bool {
	return password == confirmation
}
