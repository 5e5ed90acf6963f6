package desensitize

var (
	// BearerRule masks bearer credentials (Bearer abc123 -> Bearer ******)
	BearerRule = MustNewContentRule(
		"bearer",
		`(?i)(bearer\s+)[A-Za-z0-9._~+/=-]+`,
		"${1}******",
	)

	// APIKeyRule masks "apiKey" / "api_key" JSON fields
	APIKeyRule = MustNewFieldRule("api_key", "******", "apiKey", "api_key")

	// AuthorizationRule masks "authorization" JSON fields
	AuthorizationRule = MustNewFieldRule("authorization", "******", "authorization")
)

// BuiltinRules returns the rules every meeting client logger should carry
func BuiltinRules() []Rule {
	return []Rule{
		BearerRule,
		APIKeyRule,
		AuthorizationRule,
	}
}
