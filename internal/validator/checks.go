package validator

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"mcpregistry/internal/record"
)

func checkRequired(rec *record.Record, add issueAdder) {
	for _, field := range RequiredFields {
		if !rec.Has(field) {
			add(field, "Missing required field: "+field)
		}
	}
}

func checkID(id record.Field, add issueAdder) {
	if !id.Present() {
		return
	}
	value, ok := id.Text()
	if ok && validID(value) {
		return
	}
	add("id", fmt.Sprintf("Invalid ID format: %s (use lowercase letters, digits, and hyphens only)", id.Display()))
}

// validID accepts letters and digits separated by hyphens, with no
// uppercase letters. An ID made only of hyphens has nothing left to check
// and is rejected.
func validID(id string) bool {
	stripped := strings.ReplaceAll(id, "-", "")
	if stripped == "" {
		return false
	}
	for _, r := range stripped {
		if !unicode.IsLetter(r) && !unicode.IsNumber(r) {
			return false
		}
	}
	return strings.ToLower(id) == id
}

func checkCategory(category record.Field, add issueAdder) {
	if !category.Present() {
		return
	}
	if value, ok := category.Text(); ok && oneOf(value, Categories) {
		return
	}
	add("category", fmt.Sprintf("Invalid category: %s (must be one of %s)", category.Display(), listing(Categories)))
}

func checkDescription(description record.Field, add issueAdder) {
	if !description.Present() {
		return
	}
	value, ok := description.Text()
	if !ok {
		add("description", "Description must be a string")
		return
	}
	length := utf8.RuneCountInString(value)
	if length < MinDescriptionLength || length > MaxDescriptionLength {
		add("description", fmt.Sprintf("Description must be %d-%d characters (current: %d)",
			MinDescriptionLength, MaxDescriptionLength, length))
	}
}

func checkAuthentication(auth record.Section[record.Authentication], add issueAdder) {
	authType := auth.Fields().Type
	if !authType.Present() {
		return
	}
	if value, ok := authType.Text(); ok && oneOf(value, AuthTypes) {
		return
	}
	add("authentication.type", fmt.Sprintf("Invalid auth type: %s (must be one of %s)", authType.Display(), listing(AuthTypes)))
}

func checkVerification(verification record.Section[record.Verification], add issueAdder) {
	status := verification.Fields().Status
	if !status.Present() {
		return
	}
	if value, ok := status.Text(); ok && oneOf(value, VerificationStatuses) {
		return
	}
	add("verification.status", fmt.Sprintf("Invalid verification status: %s (must be one of %s)",
		status.Display(), listing(VerificationStatuses)))
}

func checkLastUpdated(metrics record.Section[record.Metrics], add issueAdder) {
	lastUpdated := metrics.Fields().LastUpdated
	if !lastUpdated.Present() {
		return
	}
	if value, ok := lastUpdated.Text(); ok && validISODate(value) {
		return
	}
	add("metrics.last_updated", "Invalid date format for last_updated: "+lastUpdated.Display())
}

func checkRepositoryURL(repository record.Section[record.Repository], add issueAdder) {
	url := repository.Fields().URL
	if !url.Present() {
		return
	}
	if value, ok := url.Text(); ok && hasAnyPrefix(value, RepositorySchemes) {
		return
	}
	add("repository.url", "Invalid repository URL: "+url.Display())
}

func checkProductionEndpoint(endpoints record.Section[record.Endpoints], add issueAdder) {
	production := endpoints.Fields().Production
	if !production.Present() {
		return
	}
	if value, ok := production.Text(); ok && hasAnyPrefix(value, EndpointSchemes) {
		return
	}
	add("endpoints.production", "Invalid production endpoint: "+production.Display())
}
