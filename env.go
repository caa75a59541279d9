package fig

import "os"

// Env is the environment variable table the loader writes to.
type Env interface {
	Setenv(key, value string) error
}

// OSEnv writes to the process environment.
type OSEnv struct{}

// Setenv calls os.Setenv.
func (OSEnv) Setenv(key, value string) error {
	return os.Setenv(key, value)
}

// MapEnv is an in-memory Env. The zero value is not usable; make the map first.
type MapEnv map[string]string

// Setenv stores value under key.
func (m MapEnv) Setenv(key, value string) error {
	m[key] = value
	return nil
}
