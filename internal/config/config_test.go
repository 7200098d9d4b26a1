package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testConfig() *Config {
	return &Config{
		Logins: []LoginConfig{
			{BLZ: "10010010", User: "user1", PIN: "secret"},
		},
		Access: map[string]AccessConfig{
			"10010010": {URL: "https://gateway.local"},
		},
	}
}

func TestValidateLogin_OK(t *testing.T) {
	assert.NoError(t, testConfig().ValidateLogin(0))
}

func TestValidateLogin_ReportsKeyAndLogin(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"missing blz", func(c *Config) { c.Logins[0].BLZ = "" }, `missing required key "blz"`},
		{"missing user", func(c *Config) { c.Logins[0].User = "" }, `missing required key "user"`},
		{"missing pin", func(c *Config) { c.Logins[0].PIN = "" }, `missing required key "pin"`},
		{"missing access", func(c *Config) { delete(c.Access, "10010010") }, "no access url configured"},
		{"empty access url", func(c *Config) { c.Access["10010010"] = AccessConfig{} }, "no access url configured"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			tt.mutate(cfg)

			err := cfg.ValidateLogin(0)
			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), tt.want)
				assert.Contains(t, err.Error(), "login #1", "error must name the login")
			}
		})
	}
}

func TestWantsAccount(t *testing.T) {
	l := &LoginConfig{}
	assert.True(t, l.WantsAccount("123"))

	l = &LoginConfig{Ignore: []string{"123"}}
	assert.False(t, l.WantsAccount("123"))
	assert.True(t, l.WantsAccount("456"))

	l = &LoginConfig{Only: []string{"123"}}
	assert.True(t, l.WantsAccount("123"))
	assert.False(t, l.WantsAccount("456"))

	// only wins over ignore
	l = &LoginConfig{Only: []string{"123"}, Ignore: []string{"123"}}
	assert.True(t, l.WantsAccount("123"))
}
