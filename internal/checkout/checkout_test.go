package checkout

import (
	"strings"
	"testing"
)

func TestParsePlan(t *testing.T) {
	tests := []struct {
		input   string
		want    Plan
		wantErr bool
	}{
		{"monthly", PlanMonthly, false},
		{"yearly", PlanYearly, false},
		{"weekly", "", true},
		{"", "", true},
		{"MONTHLY", "", true},
	}

	for _, tt := range tests {
		got, err := ParsePlan(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParsePlan(%q): expected error", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParsePlan(%q): unexpected error: %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("ParsePlan(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestCreateSessionDemoMode(t *testing.T) {
	c := New("", "price_monthly", "price_yearly", "https://example.test")
	if !c.Demo() {
		t.Fatal("expected demo mode without a secret key")
	}

	url, err := c.CreateSession(PlanYearly)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(url, "/checkout-demo?") {
		t.Errorf("expected demo checkout URL, got %q", url)
	}
	if !strings.Contains(url, "plan=yearly") {
		t.Errorf("expected plan in URL, got %q", url)
	}
	if !strings.Contains(url, "session_id=") {
		t.Errorf("expected session id in URL, got %q", url)
	}

	// Session ids are unique per call.
	second, err := c.CreateSession(PlanYearly)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if url == second {
		t.Error("expected distinct demo session URLs")
	}
}

func TestCreateSessionRejectsUnknownPlan(t *testing.T) {
	c := New("", "price_monthly", "price_yearly", "https://example.test")
	if _, err := c.CreateSession(Plan("weekly")); err == nil {
		t.Error("expected error for unknown plan")
	}
}
