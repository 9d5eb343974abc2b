package search

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	parser := NewParser()

	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "simple words",
			input:    "alice bob",
			expected: []string{"alice", "bob"},
		},
		{
			name:     "quoted value keeps spaces",
			input:    `label:"cold storage" goerli`,
			expected: []string{`label:"cold storage"`, "goerli"},
		},
		{
			name:     "repeated spaces",
			input:    "  alice   bob ",
			expected: []string{"alice", "bob"},
		},
		{
			name:     "empty",
			input:    "",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parser.tokenize(tt.input)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("tokenize(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParse(t *testing.T) {
	parser := NewParser()

	tests := []struct {
		name       string
		input      string
		conditions []Condition
		logic      []Operator
	}{
		{
			name:       "bare word",
			input:      "alice",
			conditions: []Condition{{Field: FieldAny, Value: "alice"}},
		},
		{
			name:  "fields with implicit AND",
			input: "label:alice network:Goerli",
			conditions: []Condition{
				{Field: FieldLabel, Value: "alice"},
				{Field: FieldNetwork, Value: "Goerli"},
			},
			logic: []Operator{OperatorAND},
		},
		{
			name:  "OR and NOT",
			input: "alice OR NOT notes:old",
			conditions: []Condition{
				{Field: FieldAny, Value: "alice"},
				{Field: FieldNotes, Value: "old", Negate: true},
			},
			logic: []Operator{OperatorOR},
		},
		{
			name:       "dash negation and aliases",
			input:      `-addr:0xdead`,
			conditions: []Condition{{Field: FieldAddress, Value: "0xdead", Negate: true}},
		},
		{
			name:       "quoted value",
			input:      `label:"cold storage"`,
			conditions: []Condition{{Field: FieldLabel, Value: "cold storage"}},
		},
		{
			name:       "url stays one word",
			input:      "https://rpc.example.org",
			conditions: []Condition{{Field: FieldAny, Value: "https://rpc.example.org"}},
		},
		{
			name:  "unknown prefix is a word",
			input: "color:red label:bob",
			conditions: []Condition{
				{Field: FieldAny, Value: "color:red"},
				{Field: FieldLabel, Value: "bob"},
			},
			logic: []Operator{OperatorAND},
		},
		{
			name:       "double NOT cancels",
			input:      "NOT NOT alice",
			conditions: []Condition{{Field: FieldAny, Value: "alice"}},
		},
		{
			name:  "empty query",
			input: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := parser.Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.input, err)
			}
			if !reflect.DeepEqual(q.Conditions, tt.conditions) {
				t.Errorf("conditions = %+v, want %+v", q.Conditions, tt.conditions)
			}
			if !reflect.DeepEqual(q.Logic, tt.logic) {
				t.Errorf("logic = %v, want %v", q.Logic, tt.logic)
			}
			if q.Raw != tt.input {
				t.Errorf("raw = %q, want %q", q.Raw, tt.input)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	parser := NewParser()

	for _, input := range []string{
		"AND alice",
		"alice OR",
		"NOT",
		"alice NOT",
		"alice OR AND bob",
		"alice AND OR bob",
		"alice OR OR bob",
		"alice NOT AND bob",
		"alice NOT OR bob",
	} {
		t.Run(input, func(t *testing.T) {
			if _, err := parser.Parse(input); err == nil {
				t.Errorf("Parse(%q) expected an error", input)
			}
		})
	}
}
