// Package search implements the address book query language: bare words,
// field:value conditions and AND/OR/NOT operators.
package search

import (
	"fmt"
	"regexp"
	"strings"
)

// FieldType represents the entry field a condition applies to
type FieldType string

const (
	FieldAny     FieldType = "any"
	FieldLabel   FieldType = "label"
	FieldAddress FieldType = "address"
	FieldNetwork FieldType = "network"
	FieldNotes   FieldType = "notes"
)

// Operator joins conditions
type Operator string

const (
	OperatorAND Operator = "AND"
	OperatorOR  Operator = "OR"
)

// Condition represents a single search condition
type Condition struct {
	Field  FieldType
	Value  string
	Negate bool
}

// Query represents a parsed search query
type Query struct {
	Conditions []Condition
	Logic      []Operator // Logic operators between conditions
	Raw        string     // Original query string
}

// Empty reports whether the query matches everything.
func (q *Query) Empty() bool {
	return len(q.Conditions) == 0
}

// Parser handles parsing of search queries
type Parser struct {
	fieldPattern  *regexp.Regexp
	quotedPattern *regexp.Regexp
}

// NewParser creates a new search query parser
func NewParser() *Parser {
	return &Parser{
		fieldPattern:  regexp.MustCompile(`^(\w+):(.+)$`),
		quotedPattern: regexp.MustCompile(`^"([^"]*)"$`),
	}
}

// Parse parses a search query string into a Query object
func (p *Parser) Parse(input string) (*Query, error) {
	query := &Query{Raw: input}
	if err := p.parseTokens(p.tokenize(input), query); err != nil {
		return nil, err
	}
	return query, nil
}

// tokenize splits the input on spaces outside double quotes
func (p *Parser) tokenize(input string) []string {
	var tokens []string
	var current strings.Builder
	inQuotes := false

	for _, r := range input {
		switch {
		case r == '"':
			inQuotes = !inQuotes
			current.WriteRune(r)
		case r == ' ' && !inQuotes:
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}
		default:
			current.WriteRune(r)
		}
	}
	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}
	return tokens
}

func (p *Parser) parseTokens(tokens []string, query *Query) error {
	pending := OperatorAND
	negate := false
	// last is the previous operator token, or "" after a condition.
	last := ""

	for i, token := range tokens {
		switch upper := strings.ToUpper(token); upper {
		case "AND", "OR":
			switch {
			case last == "NOT":
				return fmt.Errorf("NOT operator requires a condition")
			case last != "":
				return fmt.Errorf("operator %s cannot follow %s", token, last)
			case len(query.Conditions) == 0 || i == len(tokens)-1:
				return fmt.Errorf("operator %s needs a condition on both sides", token)
			}
			pending = Operator(upper)
			last = upper
			continue
		case "NOT":
			if i == len(tokens)-1 {
				return fmt.Errorf("NOT operator requires a condition")
			}
			negate = !negate
			last = upper
			continue
		}

		cond := p.parseCondition(token)
		cond.Negate = cond.Negate != negate
		if len(query.Conditions) > 0 {
			query.Logic = append(query.Logic, pending)
		}
		query.Conditions = append(query.Conditions, cond)
		pending, negate, last = OperatorAND, false, ""
	}
	return nil
}

// parseCondition reads a word or a field:value pair. A prefix that names no
// field, as in "https://rpc.example", leaves the whole token a plain word.
func (p *Parser) parseCondition(token string) Condition {
	negate := false
	if strings.HasPrefix(token, "-") && len(token) > 1 {
		negate = true
		token = token[1:]
	}

	if matches := p.fieldPattern.FindStringSubmatch(token); len(matches) == 3 {
		if field, ok := fieldAliases[strings.ToLower(matches[1])]; ok {
			return Condition{Field: field, Value: p.unquote(matches[2]), Negate: negate}
		}
	}
	return Condition{Field: FieldAny, Value: p.unquote(token), Negate: negate}
}

var fieldAliases = map[string]FieldType{
	"label":   FieldLabel,
	"name":    FieldLabel,
	"address": FieldAddress,
	"addr":    FieldAddress,
	"network": FieldNetwork,
	"net":     FieldNetwork,
	"notes":   FieldNotes,
	"note":    FieldNotes,
}

// unquote removes quotes from a string if present
func (p *Parser) unquote(s string) string {
	if matches := p.quotedPattern.FindStringSubmatch(s); len(matches) == 2 {
		return matches[1]
	}
	return s
}
