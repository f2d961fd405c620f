package label

import (
	"strings"
	"testing"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			"quoted name extracted",
			"The component name is called 'LLM interface' in this diagram",
			"LLM interface",
		},
		{
			"refusal becomes sentinel",
			"I am unable to determine the component name",
			Sentinel,
		},
		{
			"apology becomes sentinel",
			"Sorry, there is no visible text in this region",
			Sentinel,
		},
		{
			"this-is-a prefix stripped",
			"this is a Load Balancer.",
			"Load Balancer",
		},
		{
			"name prefix stripped",
			"Name: Redis Cache",
			"Redis Cache",
		},
		{
			"trailing component suffix stripped",
			"It is an authentication service component",
			"authentication service",
		},
		{
			"whitespace collapsed",
			"Database   \n\t  Server",
			"Database Server",
		},
		{
			"capped at three words",
			"primary message queue broker node",
			"primary message queue",
		},
		{
			"long name cut at word boundary",
			"Sophisticated Orchestration Infrastructure",
			"Sophisticated Orchestration",
		},
		{
			"single long token hard truncated",
			strings.Repeat("a", 50),
			strings.Repeat("a", 40),
		},
		{"plain unknown passes through", "Unknown", "Unknown"},
		{"empty becomes sentinel", "", Sentinel},
		{"blank becomes sentinel", "   \n ", Sentinel},
		{"pure punctuation becomes sentinel", "...", Sentinel},
		{"clean name untouched", "CPU", "CPU"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.raw); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestIsSentinel(t *testing.T) {
	tests := []struct {
		label string
		want  bool
	}{
		{"", true},
		{"  ", true},
		{"Unknown", true},
		{"unknown", true},
		{"Unlabeled", true},
		{"component_1", true},
		{"Component_12", true},
		{"CPU", false},
		{"Load Balancer", false},
		{"componentX", false},
	}

	for _, tt := range tests {
		if got := IsSentinel(tt.label); got != tt.want {
			t.Errorf("IsSentinel(%q) = %v, want %v", tt.label, got, tt.want)
		}
	}
}
