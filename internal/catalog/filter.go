// Package catalog implements search and filtering over the gallery and team lists.
//
// Every function here is pure: the record lists are read-only inputs and results
// keep the original list order.
package catalog

import (
	"slices"
	"sort"
	"strings"

	"barbershop-catalog/internal/entities"
)

// Filter returns the records accepted by keep, in their original order.
func Filter[T any](records []T, keep func(T) bool) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

// MatchesQuery reports whether text contains query, ignoring case and surrounding
// whitespace of the query. An empty query matches everything.
func MatchesQuery(query, text string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(text), q)
}

// HasAllTags reports whether tags contains every element of required.
func HasAllTags(tags, required []string) bool {
	for _, t := range required {
		if !slices.Contains(tags, t) {
			return false
		}
	}
	return true
}

// FilterGallery keeps items whose alt text matches query and which carry every active tag.
func FilterGallery(items []entities.GalleryItem, query string, active []string) []entities.GalleryItem {
	return Filter(items, func(it entities.GalleryItem) bool {
		return MatchesQuery(query, it.Alt) && HasAllTags(it.Tags, active)
	})
}

// MemberSearchText is the text a team query is matched against: name, role and tags.
func MemberSearchText(m entities.TeamMember) string {
	parts := make([]string, 0, len(m.Tags)+2)
	parts = append(parts, m.Name, string(m.Role))
	parts = append(parts, m.Tags...)
	return strings.Join(parts, " ")
}

// FilterTeam keeps members matching query whose role is any of roles.
// Unlike FilterGallery, a member passes when a single selected role matches.
func FilterTeam(members []entities.TeamMember, query string, roles []string) []entities.TeamMember {
	return Filter(members, func(m entities.TeamMember) bool {
		if !MatchesQuery(query, MemberSearchText(m)) {
			return false
		}
		return len(roles) == 0 || slices.Contains(roles, string(m.Role))
	})
}

// GalleryTags returns the distinct tags of items, sorted.
func GalleryTags(items []entities.GalleryItem) []string {
	seen := make(map[string]struct{})
	tags := make([]string, 0)
	for _, it := range items {
		for _, t := range it.Tags {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			tags = append(tags, t)
		}
	}
	sort.Strings(tags)
	return tags
}

// TeamRoles returns the distinct roles of members in order of first appearance.
func TeamRoles(members []entities.TeamMember) []entities.Role {
	roles := make([]entities.Role, 0)
	for _, m := range members {
		if !slices.Contains(roles, m.Role) {
			roles = append(roles, m.Role)
		}
	}
	return roles
}
