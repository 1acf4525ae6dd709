package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// lookupFunc matches os.LookupEnv; tests substitute a map.
type lookupFunc func(string) (string, bool)

// env reads typed values through a lookupFunc and remembers the first
// problem so Load can report every required variable in one pass.
type env struct {
	lookup  lookupFunc
	missing []string
	invalid []string
}

func newEnv(lookup lookupFunc) *env {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	return &env{lookup: lookup}
}

func (e *env) get(key string) string {
	v, _ := e.lookup(key)
	return strings.TrimSpace(v)
}

// must retrieves a required variable and records it when unset.
func (e *env) must(key string) string {
	v := e.get(key)
	if v == "" {
		e.missing = append(e.missing, key)
	}
	return v
}

// mustInt is like must() but converts the value into an integer.
func (e *env) mustInt(key string) int {
	s := e.must(key)
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		e.invalid = append(e.invalid, fmt.Sprintf("%s=%q", key, s))
	}
	return n
}

func (e *env) str(key, def string) string {
	if v := e.get(key); v != "" {
		return v
	}
	return def
}

func (e *env) boolean(key string, def bool) bool {
	switch strings.ToLower(e.get(key)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	return def
}

func (e *env) integer(key string, def int) int {
	if n, err := strconv.Atoi(e.get(key)); err == nil {
		return n
	}
	return def
}

func (e *env) duration(key string, def time.Duration) time.Duration {
	if d, err := time.ParseDuration(e.get(key)); err == nil {
		return d
	}
	return def
}

func (e *env) err() error {
	var parts []string
	if len(e.missing) > 0 {
		parts = append(parts, "missing required env vars: "+strings.Join(e.missing, ", "))
	}
	if len(e.invalid) > 0 {
		parts = append(parts, "invalid values: "+strings.Join(e.invalid, ", "))
	}
	if len(parts) == 0 {
		return nil
	}
	return fmt.Errorf("config: %s", strings.Join(parts, "; "))
}
