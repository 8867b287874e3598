package dex

import (
	"reflect"
	"testing"
)

func TestNormalizeEncountersOrderIndependent(t *testing.T) {
	rows := []EncounterRow{
		{LocationArea: "viridian-forest", Version: "red"},
		{LocationArea: "power-plant", Version: "red"},
		{LocationArea: "viridian-forest", Version: "firered"},
		{LocationArea: "cerulean-cave", Version: "firered"},
	}
	perm := []EncounterRow{rows[3], rows[1], rows[0], rows[2]}
	a := NormalizeEncounters(rows)
	b := NormalizeEncounters(perm)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("normalize not order-independent:\n%v\n%v", a, b)
	}
	if !reflect.DeepEqual(a.Versions, []string{"firered", "red"}) {
		t.Fatalf("versions not sorted by display label: %v", a.Versions)
	}
	if !reflect.DeepEqual(a.ByVersion["red"], []string{"power-plant", "viridian-forest"}) {
		t.Fatalf("locations not sorted: %v", a.ByVersion["red"])
	}
}

func TestNormalizeEncountersDeduplicates(t *testing.T) {
	rows := []EncounterRow{
		{LocationArea: "route-1", Version: "yellow"},
		{LocationArea: "route-1", Version: "yellow"},
	}
	em := NormalizeEncounters(rows)
	if len(em.ByVersion["yellow"]) != 1 {
		t.Fatalf("expected one location after dedupe, got %v", em.ByVersion["yellow"])
	}
}

func TestNormalizeEncountersEmpty(t *testing.T) {
	em := NormalizeEncounters(nil)
	if !em.Empty() {
		t.Fatalf("expected empty map for no rows")
	}
}

func TestVersionLabel(t *testing.T) {
	if got := VersionLabel("firered"); got != "FireRed" {
		t.Fatalf("firered label: %q", got)
	}
	if got := VersionLabel("ultra-sun"); got != "Ultra Sun" {
		t.Fatalf("ultra-sun label: %q", got)
	}
	if got := TitleSlug("kanto-route-2"); got != "Kanto Route 2" {
		t.Fatalf("title slug: %q", got)
	}
}
