package validator

import (
	"slices"
	"strings"
)

// RequiredFields lists top-level keys every record must define, in check order.
var RequiredFields = []string{
	"id", "name", "category", "description", "maintainer",
	"repository", "authentication", "endpoints", "capabilities",
	"tags", "active",
}

// Categories lists the accepted record categories.
var Categories = []string{
	"development", "data-analysis", "communication", "payments",
	"cloud", "productivity", "security", "database", "ai-ml", "monitoring",
}

// AuthTypes lists the accepted authentication types.
var AuthTypes = []string{"oauth2", "api-key", "none"}

// VerificationStatuses lists the accepted verification states.
var VerificationStatuses = []string{"verified", "pending", "unverified"}

// RepositorySchemes lists URL prefixes accepted for repository.url.
var RepositorySchemes = []string{"http://", "https://"}

// EndpointSchemes lists URL prefixes accepted for endpoints.production.
var EndpointSchemes = []string{"ws://", "wss://", "http://", "https://"}

// Description length bounds, inclusive, in characters.
const (
	MinDescriptionLength = 50
	MaxDescriptionLength = 200
)

func oneOf(value string, allowed []string) bool {
	return slices.Contains(allowed, value)
}

func hasAnyPrefix(value string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(value, prefix) {
			return true
		}
	}
	return false
}

func listing(values []string) string {
	return strings.Join(values, ", ")
}
