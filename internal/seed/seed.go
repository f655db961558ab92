// Package seed bundles the fixture content used to bootstrap an empty
// store. Accessors decode on every call so callers receive fresh copies
// they can mutate freely.
package seed

import (
	"embed"
	"encoding/json"
	"fmt"

	"github.com/noah-isme/sd-cms-api/internal/models"
)

//go:embed data/*.json
var fixtures embed.FS

// EventsVersion is the schema-version marker written alongside the event
// fixtures. Bump it to force existing installations to re-seed; this is a
// destructive content reset, not a migration.
const EventsVersion = "2"

// Events returns the bundled featured-event fixtures.
func Events() []models.Event {
	var events []models.Event
	mustDecode("data/events.json", &events)
	return events
}

// Announcements returns the bundled announcement fixtures.
func Announcements() []models.Announcement {
	var announcements []models.Announcement
	mustDecode("data/announcements.json", &announcements)
	return announcements
}

// Principal returns the bundled principal record.
func Principal() models.Principal {
	var principal models.Principal
	mustDecode("data/principal.json", &principal)
	return principal
}

// Teachers returns the bundled teacher roster.
func Teachers() []models.Teacher {
	var teachers []models.Teacher
	mustDecode("data/teachers.json", &teachers)
	return teachers
}

func mustDecode(name string, v interface{}) {
	raw, err := fixtures.ReadFile(name)
	if err != nil {
		panic(fmt.Sprintf("seed: missing fixture %s: %v", name, err))
	}
	if err := json.Unmarshal(raw, v); err != nil {
		panic(fmt.Sprintf("seed: corrupt fixture %s: %v", name, err))
	}
}
