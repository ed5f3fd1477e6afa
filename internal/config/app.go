package config

type AppConfig struct {
	StrictMonth bool `yaml:"strict-month-total"`
}

func (s *AppConfig) StrictMonthTotal() bool {
	return s.StrictMonth
}
