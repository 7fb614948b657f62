package configs

import "errors"

var ErrValueNotFound = errors.New("config value not found")
