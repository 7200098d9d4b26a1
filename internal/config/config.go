package config

type Config struct {
	Days       int                     `mapstructure:"days"`
	Debug      bool                    `mapstructure:"debug"`
	DryRun     bool                    `mapstructure:"dry_run"`
	Database   DatabaseConfig          `mapstructure:"database"`
	Logins     []LoginConfig           `mapstructure:"logins"`
	Access     map[string]AccessConfig `mapstructure:"access"`
	Notify     NotifyConfig            `mapstructure:"notify"`
	ConfigPath string                  `mapstructure:"-"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// LoginConfig is one bank login. Only/Ignore filter the accounts the
// login can see by account number; Only wins when both are set.
type LoginConfig struct {
	BLZ    string   `mapstructure:"blz"`
	User   string   `mapstructure:"user"`
	PIN    string   `mapstructure:"pin"`
	Only   []string `mapstructure:"only"`
	Ignore []string `mapstructure:"ignore"`
}

// AccessConfig describes how to reach one bank, keyed by BLZ.
type AccessConfig struct {
	URL string `mapstructure:"url"`
}

type NotifyConfig struct {
	Stdout   bool            `mapstructure:"stdout"`
	Telegram *TelegramConfig `mapstructure:"telegram"`
}

type TelegramConfig struct {
	BotToken string `mapstructure:"bot_token"`
	ChatID   string `mapstructure:"chat_id"`
}

func NewDefault() *Config {
	return &Config{
		Days:     7,
		Database: DatabaseConfig{Path: ""},
		Notify:   NotifyConfig{Stdout: true},
	}
}

// WantsAccount applies the login's only/ignore filters.
func (l *LoginConfig) WantsAccount(number string) bool {
	if len(l.Only) > 0 {
		for _, n := range l.Only {
			if n == number {
				return true
			}
		}
		return false
	}
	for _, n := range l.Ignore {
		if n == number {
			return false
		}
	}
	return true
}
