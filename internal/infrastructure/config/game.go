package config

// GameConfig holds the economy and content settings of a new session
type GameConfig struct {
	StartingMoney        int `mapstructure:"starting_money" validate:"min=0"`
	StartingReputation   int `mapstructure:"starting_reputation" validate:"min=0"`
	SigningFeeMultiplier int `mapstructure:"signing_fee_multiplier" validate:"min=1,max=10"`
	SalaryIntervalDays   int `mapstructure:"salary_interval_days" validate:"min=1"`

	// Generated pools offered at the start of a session
	CandidatePoolSize int `mapstructure:"candidate_pool_size" validate:"min=0,max=20"`
	ProjectPoolSize   int `mapstructure:"project_pool_size" validate:"min=0,max=20"`

	// Seed for the content generator; 0 picks a random seed
	Seed int64 `mapstructure:"seed"`

	// Optional YAML catalog replacing the built-in one
	CatalogPath string `mapstructure:"catalog_path" validate:"omitempty,file"`

	StartingFocus FocusConfig `mapstructure:"starting_focus"`
}

// FocusConfig is a focus split in percent. It must total 100.
type FocusConfig struct {
	Performance  int `mapstructure:"performance" validate:"min=0,max=100"`
	SoundCapture int `mapstructure:"sound_capture" validate:"min=0,max=100"`
	Layering     int `mapstructure:"layering" validate:"min=0,max=100"`
}

// Sum returns the total of the three parts
func (f FocusConfig) Sum() int {
	return f.Performance + f.SoundCapture + f.Layering
}

// IsZero reports whether no focus was configured
func (f FocusConfig) IsZero() bool {
	return f == FocusConfig{}
}
