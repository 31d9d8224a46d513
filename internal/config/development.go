package config

import "os"

func Development() bool {
	development, ok := os.LookupEnv("MINES_DEVELOPMENT")
	if !ok {
		return false
	}
	return development != "0"
}
