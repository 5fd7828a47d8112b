package model

import "testing"

func TestInvocationStatus_IsActive(t *testing.T) {
	tests := []struct {
		status   InvocationStatus
		expected bool
	}{
		{StatusPending, true},
		{StatusRunning, true},
		{StatusSucceeded, false},
		{StatusFailed, false},
	}

	for _, test := range tests {
		result := test.status.IsActive()
		if result != test.expected {
			t.Errorf("InvocationStatus(%s).IsActive() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestInvocationStatus_IsFinished(t *testing.T) {
	tests := []struct {
		status   InvocationStatus
		expected bool
	}{
		{StatusPending, false},
		{StatusRunning, false},
		{StatusSucceeded, true},
		{StatusFailed, true},
	}

	for _, test := range tests {
		result := test.status.IsFinished()
		if result != test.expected {
			t.Errorf("InvocationStatus(%s).IsFinished() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestInvocationStatus_String(t *testing.T) {
	status := StatusRunning
	expected := "Running"
	result := status.String()

	if result != expected {
		t.Errorf("InvocationStatus.String() = %s, expected %s", result, expected)
	}
}
