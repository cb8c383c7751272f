package model

import "testing"

func TestItemStatus_IsActive(t *testing.T) {
	tests := []struct {
		status   ItemStatus
		expected bool
	}{
		{StatusPending, false},
		{StatusDownloading, true},
		{StatusCompleted, false},
		{StatusError, false},
	}

	for _, test := range tests {
		result := test.status.IsActive()
		if result != test.expected {
			t.Errorf("ItemStatus(%s).IsActive() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestItemStatus_IsFinished(t *testing.T) {
	tests := []struct {
		status   ItemStatus
		expected bool
	}{
		{StatusPending, false},
		{StatusDownloading, false},
		{StatusCompleted, true},
		{StatusError, true},
	}

	for _, test := range tests {
		result := test.status.IsFinished()
		if result != test.expected {
			t.Errorf("ItemStatus(%s).IsFinished() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestItemStatus_String(t *testing.T) {
	status := StatusDownloading
	expected := "Downloading"
	result := status.String()

	if result != expected {
		t.Errorf("ItemStatus.String() = %s, expected %s", result, expected)
	}
}

func TestAgentKind_Other(t *testing.T) {
	tests := []struct {
		kind     AgentKind
		expected AgentKind
	}{
		{AgentInstagram, AgentYTDLP},
		{AgentYTDLP, AgentInstagram},
	}

	for _, test := range tests {
		result := test.kind.Other()
		if result != test.expected {
			t.Errorf("AgentKind(%s).Other() = %s, expected %s", test.kind, result, test.expected)
		}
	}
}
