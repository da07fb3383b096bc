package constants

const (
	UserNameMaxLength     = 50
	UserPasswordMinLength = 6
)
