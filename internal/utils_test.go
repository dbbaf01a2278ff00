package internal

import (
	"errors"
	"testing"
)

type testData struct {
	Query string
}

func TestParsePrompt(t *testing.T) {
	testCases := []struct {
		name           string
		promptTemplate string
		data           interface{}
		expected       string
		expectedErr    error
	}{
		{
			name:           "Valid template and data",
			promptTemplate: `The user asked: "{{.Query}}".`,
			data:           testData{Query: "what is my wifi password"},
			expected:       `The user asked: "what is my wifi password".`,
			expectedErr:    nil,
		},
		{
			name:           "Invalid template",
			promptTemplate: "The user asked: {{.Query.",
			data:           testData{Query: "anything"},
			expected:       "",
			expectedErr:    errors.New("template: prompt:1: unexpected \".\" in operand"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := ParsePrompt(tc.promptTemplate, tc.data)
			if result != tc.expected {
				t.Errorf("Expected: %s, Got: %s", tc.expected, result)
			}
			if (err == nil) != (tc.expectedErr == nil) ||
				(err != nil && err.Error() != tc.expectedErr.Error()) {
				t.Errorf("Expected error: %v, Got error: %v", tc.expectedErr, err)
			}
		})
	}
}
