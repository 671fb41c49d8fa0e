package utils

import (
	"github.com/joho/godotenv"
)

// LoadEnv reads .env into the process environment. It reports false when
// there is no file, in which case the system environment is used as is.
func LoadEnv() bool {
	return godotenv.Load() == nil
}
