package panicinfo

import (
	"strings"
	"testing"
)

func TestLocateExplicitPanic(t *testing.T) {
	site := panicky(func() { panic("boom") })

	if !strings.HasSuffix(site.File, "panic_test.go") {
		t.Fatalf("expected site in panic_test.go, got %s", site)
	}
	if !strings.Contains(site.Function, "TestLocateExplicitPanic") {
		t.Fatalf("expected site in TestLocateExplicitPanic, got %s", site)
	}
}

func TestLocateRuntimePanic(t *testing.T) {
	var m map[string]int
	site := panicky(func() { m["x"] = 1 })

	if strings.HasPrefix(site.Function, "runtime.") {
		t.Fatalf("expected runtime frames to be skipped, got %s", site)
	}
	if !strings.HasSuffix(site.File, "panic_test.go") {
		t.Fatalf("expected site in panic_test.go, got %s", site)
	}
}

func TestLocateNothing(t *testing.T) {
	if site := Locate(nil); site.String() != "unknown" {
		t.Fatalf("expected unknown site, got %s", site)
	}
}

func panicky(fn func()) (site Site) {
	defer func() {
		site = Locate(recover())
	}()
	fn()
	return site
}
