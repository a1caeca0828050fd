package entities

import (
	"errors"
	"testing"
)

func TestBusinessPriority_ServiceLevel(t *testing.T) {
	testCases := []struct {
		priority BusinessPriority
		expected float64
	}{
		{High, 0.99},
		{Standard, 0.95},
		{LowMargin, 0.90},
	}

	for _, tc := range testCases {
		t.Run(tc.priority.String(), func(t *testing.T) {
			level, err := tc.priority.ServiceLevel()
			if err != nil {
				t.Fatalf("Expected service level lookup to succeed: %v", err)
			}
			if level != tc.expected {
				t.Errorf("Expected service level %v, got %v", tc.expected, level)
			}
		})
	}
}

func TestBusinessPriority_ServiceLevelUnknown(t *testing.T) {
	_, err := BusinessPriority(99).ServiceLevel()
	if err == nil {
		t.Fatal("Expected error for unknown priority, but got none")
	}

	var confErr *ConfigurationError
	if !errors.As(err, &confErr) {
		t.Errorf("Expected ConfigurationError, got %T", err)
	}
	if err.Error() != "configuration error: no service level mapped for business priority 99" {
		t.Errorf("Unexpected error message: %s", err.Error())
	}
}

func TestParseBusinessPriority(t *testing.T) {
	for _, priority := range []BusinessPriority{High, Standard, LowMargin} {
		parsed, err := ParseBusinessPriority(priority.String())
		if err != nil {
			t.Fatalf("Expected %s to parse: %v", priority, err)
		}
		if parsed != priority {
			t.Errorf("Expected %v, got %v", priority, parsed)
		}
	}

	_, err := ParseBusinessPriority("urgent")
	if err == nil {
		t.Fatal("Expected error for unknown priority string, but got none")
	}
	var paramErr *InvalidParameterError
	if !errors.As(err, &paramErr) {
		t.Errorf("Expected InvalidParameterError, got %T", err)
	}
}
