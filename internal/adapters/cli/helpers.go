package cli

import (
	"fmt"
	"net/url"

	"gorm.io/gorm"

	"github.com/andrescamacho/studiosim-go/internal/domain/shared"
	"github.com/andrescamacho/studiosim-go/internal/infrastructure/config"
	"github.com/andrescamacho/studiosim-go/internal/infrastructure/database"
)

const rule = "─────────────────────────────────────────────────────────────────────────────"

// resolveSessionID resolves the session to inspect.
// Priority: --session flag > last played session from user config
func resolveSessionID() (shared.SessionID, error) {
	if sessionID != "" {
		return shared.ParseSessionID(sessionID)
	}

	userConfigHandler, err := config.NewUserConfigHandler()
	if err != nil {
		return shared.SessionID{}, fmt.Errorf("no session specified and failed to load user config: %w", err)
	}

	userCfg, err := userConfigHandler.Load()
	if err != nil {
		return shared.SessionID{}, fmt.Errorf("no session specified and failed to load user config: %w", err)
	}

	if userCfg.LastSessionID == "" {
		return shared.SessionID{}, fmt.Errorf("no session specified: use --session or play a session first")
	}
	return shared.ParseSessionID(userCfg.LastSessionID)
}

// openDatabase loads configuration and connects to the journal database,
// creating the tables on first use.
func openDatabase() (*config.Config, *gorm.DB, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		_ = database.Close(db)
		return nil, nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return cfg, db, nil
}

// maskPassword hides the password of a connection URL
func maskPassword(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.User == nil {
		return raw
	}
	if _, ok := u.User.Password(); ok {
		u.User = url.UserPassword(u.User.Username(), "****")
	}
	return u.String()
}

// formatAmount formats an amount with +/- sign
func formatAmount(amount int) string {
	if amount >= 0 {
		return fmt.Sprintf("+%s", formatMoney(amount))
	}
	return formatMoney(amount)
}

// formatMoney formats money with a dollar sign and thousands separator
func formatMoney(money int) string {
	if money < 0 {
		return "-$" + addThousandsSeparator(-money)
	}
	return "$" + addThousandsSeparator(money)
}

// addThousandsSeparator adds commas to a number (e.g., 1234567 -> "1,234,567")
func addThousandsSeparator(n int) string {
	str := fmt.Sprintf("%d", n)
	if len(str) <= 3 {
		return str
	}

	// Insert commas from right to left
	var result []byte
	for i, c := range str {
		if i > 0 && (len(str)-i)%3 == 0 {
			result = append(result, ',')
		}
		result = append(result, byte(c))
	}
	return string(result)
}
