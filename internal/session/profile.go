package session

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"podlauncher/internal/model"
)

// Cookie keys of the persisted profile fields.
const (
	KeyGaspard = "gaspard"
	KeyEmail   = "email"
	KeyUID     = "uid"
	KeyGID     = "gid"
)

// LoadProfile reads the stored profile. Missing keys yield "" or 0. A stored
// integer that does not parse also yields 0 and is reported to logger when one
// is given.
func LoadProfile(store Store, logger echo.Logger) model.Profile {
	return model.Profile{
		Gaspard: String(store, KeyGaspard),
		Email:   String(store, KeyEmail),
		UID:     Int(store, KeyUID, logger),
		GID:     Int(store, KeyGID, logger),
	}
}

// SaveProfile writes all four profile fields, whatever their values.
func SaveProfile(store Store, p model.Profile, ttl time.Duration, now time.Time) {
	expires := now.Add(ttl)
	store.Set(KeyGaspard, p.Gaspard, expires)
	store.Set(KeyEmail, p.Email, expires)
	store.Set(KeyUID, strconv.Itoa(p.UID), expires)
	store.Set(KeyGID, strconv.Itoa(p.GID), expires)
}

// String returns the stored value for key or "".
func String(store Store, key string) string {
	v, _ := store.Get(key)
	return v
}

// Int returns the stored value for key parsed as an integer, or 0.
func Int(store Store, key string, logger echo.Logger) int {
	v, ok := store.Get(key)
	if !ok || v == "" {
		return 0
	}
	n, err := ParseInt(v)
	if err != nil {
		if logger != nil {
			logger.Warnf("ignoring stored %s=%q: %v", key, v, err)
		}
		return 0
	}
	return n
}

// ParseInt parses a decimal integer, accepting integral floats such as "2.0".
// Fractional values are truncated toward zero.
func ParseInt(v string) (int, error) {
	if n, err := strconv.Atoi(v); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, err
	}
	return int(f), nil
}
