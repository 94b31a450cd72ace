package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"eventify/models"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := newApp(&out).Run(append([]string{"plannerctl"}, args...))
	return out.String(), err
}

func TestRecommendCommand(t *testing.T) {
	out, err := run(t, "recommend", "any", "venue", "under", "1000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Here are all available services in Venues under €1000:") || !strings.Contains(out, "Community Hall") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestPackageCommandJSON(t *testing.T) {
	out, err := run(t, "--format", "json", "package", "--budget", "1000", "--category", "Venues", "--category", "Catering Services")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var pkg models.Package
	if err := json.Unmarshal([]byte(out), &pkg); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if pkg.Total != 800 || len(pkg.Items) != 2 {
		t.Fatalf("unexpected package %+v", pkg)
	}
}

func TestPackageCommandTable(t *testing.T) {
	out, err := run(t, "package", "--budget", "1000", "--category", "Venues", "--category", "Catering Services")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "(80.0% of budget)") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestBudgetShare(t *testing.T) {
	if got := budgetShare(4900, 5000); got != "98.0" {
		t.Fatalf("expected 98.0, got %s", got)
	}
}
