package search

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/pluqqy/walletdeck/pkg/models"
)

// MaxFuzzyDistance is the largest label edit distance a bare word may be from
// a label and still match it.
const MaxFuzzyDistance = 2

// minFuzzyLength keeps very short words from matching almost any label.
const minFuzzyLength = 3

// Engine filters address book entries with parsed queries.
type Engine struct {
	parser *Parser
}

func NewEngine() *Engine {
	return &Engine{parser: NewParser()}
}

// Search returns the entries matching query, in their original order.
func (e *Engine) Search(entries []models.AddressBookEntry, query string) ([]models.AddressBookEntry, error) {
	q, err := e.parser.Parse(query)
	if err != nil {
		return nil, err
	}
	var out []models.AddressBookEntry
	for _, entry := range entries {
		if Matches(entry, q) {
			out = append(out, entry)
		}
	}
	return out, nil
}

// Matches evaluates q against entry. Conditions combine left to right.
func Matches(entry models.AddressBookEntry, q *Query) bool {
	if q.Empty() {
		return true
	}
	result := evaluateCondition(entry, q.Conditions[0])
	for i, op := range q.Logic {
		next := evaluateCondition(entry, q.Conditions[i+1])
		if op == OperatorOR {
			result = result || next
		} else {
			result = result && next
		}
	}
	return result
}

func evaluateCondition(entry models.AddressBookEntry, cond Condition) bool {
	value := strings.ToLower(cond.Value)
	var match bool

	switch cond.Field {
	case FieldLabel:
		match = contains(entry.Label, value)
	case FieldAddress:
		match = contains(entry.Address, value)
	case FieldNetwork:
		match = contains(entry.Network, value)
	case FieldNotes:
		match = contains(entry.Notes, value)
	default:
		match = contains(entry.Label, value) ||
			contains(entry.Address, value) ||
			contains(entry.Network, value) ||
			contains(entry.Notes, value) ||
			fuzzyLabel(entry.Label, value)
	}

	if cond.Negate {
		return !match
	}
	return match
}

func contains(field, lowerValue string) bool {
	return strings.Contains(strings.ToLower(field), lowerValue)
}

// fuzzyLabel matches a word against the whole label or any word in it.
func fuzzyLabel(label, lowerValue string) bool {
	if len(lowerValue) < minFuzzyLength {
		return false
	}
	label = strings.ToLower(label)
	if levenshtein.ComputeDistance(label, lowerValue) <= MaxFuzzyDistance {
		return true
	}
	for _, word := range strings.Fields(label) {
		if levenshtein.ComputeDistance(word, lowerValue) <= MaxFuzzyDistance {
			return true
		}
	}
	return false
}
