package dto

// Claims are the identity fields carried in an access token.
type Claims struct {
	// Subject identifies the caller, for example an economist's login.
	Subject string `json:"sub"`
	// Roles lists the caller's roles. The economist role may change the
	// pricing configuration.
	Roles []string `json:"roles"`
}

// HasRole reports whether the claims include role.
func (c *Claims) HasRole(role string) bool {
	for _, r := range c.Roles {
		if r == role {
			return true
		}
	}
	return false
}
