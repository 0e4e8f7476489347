package constvars

const (
	RegexContainAtLeastOneSpecialChar = `[!@#$%^&*(),.?":{}|<>_\-+=]`
	RegexContainAtLeastOneUppercase   = `[A-Z]`
	RegexNotNameCharacters            = `[^a-zA-Z\x{00C0}-\x{00FF}\s]`
	RegexNotDigits                    = `\D`
	RegexUsername                     = `^[a-zA-Z0-9._-]+$`
)
