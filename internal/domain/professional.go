package domain

import "strings"

type Professional struct {
	ID         int64  `json:"id"`
	FullName   string `json:"full_name"`
	Profession string `json:"profession"`
	Region     string `json:"region"`
}

// Matches reports whether the professional has the given profession and region, ignoring case.
func (p Professional) Matches(profession, region string) bool {
	return strings.EqualFold(p.Profession, profession) && strings.EqualFold(p.Region, region)
}
