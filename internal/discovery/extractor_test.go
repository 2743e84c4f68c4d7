package discovery

import (
	"reflect"
	"testing"
)

func TestExtractor_Extract(t *testing.T) {
	extractor := NewExtractor()

	tests := []struct {
		name     string
		content  string
		expected []string
	}{
		{
			name: "methods in textual order",
			content: `<?php

class UserTest extends TestCase
{
    public function testAlpha()
    {
    }

    public function testBeta()
    {
    }
}
`,
			expected: []string{"testAlpha", "testBeta"},
		},
		{
			name:     "no matches",
			content:  "<?php class Helper { public function doThing() {} }",
			expected: nil,
		},
		{
			name:     "capital T does not match",
			content:  "public function TestAlpha() {}",
			expected: nil,
		},
		{
			name:     "underscored names",
			content:  "function test_user_login() {}",
			expected: []string{"test_user_login"},
		},
		{
			name:     "duplicates are kept",
			content:  "function testAlpha() {}\nfunction testAlpha() {}",
			expected: []string{"testAlpha", "testAlpha"},
		},
		{
			name:     "empty content",
			content:  "",
			expected: nil,
		},
		{
			name:     "binary content degrades to empty",
			content:  string([]byte{0x00, 0xff, 0xfe, 0x7f, 0x00}),
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := extractor.Extract(tt.content)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestExtractor_Extract_OrderOfFirstOccurrence(t *testing.T) {
	extractor := NewExtractor()

	content := `
function testGamma() {}
function testAlpha() {}
function testBeta() {}
`
	expected := []string{"testGamma", "testAlpha", "testBeta"}
	result := extractor.Extract(content)
	if !reflect.DeepEqual(result, expected) {
		t.Errorf("expected %v, got %v", expected, result)
	}
}
