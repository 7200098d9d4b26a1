package config

import "fmt"

// ValidateLogin checks that a login carries everything an ingestion
// run needs. The returned error names the offending key and login so
// the problem is attributable; the caller skips the login and keeps
// going.
func (c *Config) ValidateLogin(i int) error {
	l := c.Logins[i]

	missing := func(key string) error {
		return fmt.Errorf("login #%d (bank %q user %q): missing required key %q", i+1, l.BLZ, l.User, key)
	}

	if l.BLZ == "" {
		return missing("blz")
	}
	if l.User == "" {
		return missing("user")
	}
	if l.PIN == "" {
		return missing("pin")
	}

	access, ok := c.Access[l.BLZ]
	if !ok || access.URL == "" {
		return fmt.Errorf("login #%d (bank %q user %q): no access url configured for bank %q", i+1, l.BLZ, l.User, l.BLZ)
	}

	return nil
}
