package main

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var fixtureCategories = []string{"development", "data-analysis", "cloud", "security", "database", "monitoring"}

// deterministicID derives a stable UUID from a kind and index.
func deterministicID(kind string, index int) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("%s-%d", kind, index))).String()
}

// serverYAML renders one server file. Invalid files break the category and
// the production endpoint.
func serverYAML(index int, invalid bool) string {
	category := fixtureCategories[index%len(fixtureCategories)]
	endpoint := fmt.Sprintf("wss://fixture-%d.example.com/mcp", index)
	if invalid {
		category = "unknown"
		endpoint = "tcp://fixture.example.com"
	}
	description := fmt.Sprintf("Fixture server number %d used for load testing the registry validator.", index)
	var b strings.Builder
	fmt.Fprintf(&b, "id: fixture-%d\n", index)
	fmt.Fprintf(&b, "name: Fixture %d\n", index)
	fmt.Fprintf(&b, "category: %s\n", category)
	fmt.Fprintf(&b, "description: %q\n", description)
	b.WriteString("maintainer: Fixture Team\n")
	fmt.Fprintf(&b, "repository:\n  url: https://example.com/fixture-%d\n", index)
	b.WriteString("authentication:\n  type: none\n")
	fmt.Fprintf(&b, "endpoints:\n  production: %s\n", endpoint)
	b.WriteString("capabilities:\n  - read\ntags:\n  - fixture\nactive: true\n")
	b.WriteString("verification:\n  status: pending\n")
	fmt.Fprintf(&b, "metrics:\n  last_updated: \"2026-01-%02dT00:00:00Z\"\n", index%28+1)
	return b.String()
}
