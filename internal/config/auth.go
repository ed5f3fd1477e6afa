package config

type AuthConfig struct {
	SigningSecret   string `yaml:"secret"`
	TokenTTLMinutes int64  `yaml:"token-ttl-minutes"`
}

func (s *AuthConfig) Secret() string {
	return s.SigningSecret
}

func (s *AuthConfig) TTLMinutes() int64 {
	return s.TokenTTLMinutes
}
