package model

import "strings"

// Profile is the identity part of the form, persisted in browser cookies.
type Profile struct {
	Gaspard string `json:"gaspard"`
	Email   string `json:"email"`
	UID     int    `json:"uid"`
	GID     int    `json:"gid"`
}

// Normalize trims and lowercases the free-text fields.
func (p Profile) Normalize() Profile {
	p.Gaspard = strings.ToLower(strings.TrimSpace(p.Gaspard))
	p.Email = strings.ToLower(strings.TrimSpace(p.Email))
	return p
}

// EmailPrefix returns the part of the email before the first "@".
func (p Profile) EmailPrefix() string {
	prefix, _, _ := strings.Cut(p.Email, "@")
	return prefix
}
