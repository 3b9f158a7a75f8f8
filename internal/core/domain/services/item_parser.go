package services

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"orderdesk/internal/core/domain/model/catalog"
)

// Entry-level parse failures. ItemParser wraps them with the offending entry.
var (
	ErrMalformedEntry = errors.New("malformed entry")
	ErrUnknownItem    = errors.New("not found in menu")
	ErrOutOfStock     = errors.New("out of stock")
)

// entryPattern matches "<qty>[kg] <name>" with an optional space before kg.
var entryPattern = regexp.MustCompile(`(?i)^(\d+(?:\.\d+)?)\s*(kg)?\s+(\S.*)$`)

// ParsedLine is one resolved entry of a free-text order.
type ParsedLine struct {
	Item     catalog.Item
	Quantity float64
}

// ItemParser turns free text such as "1kg surmai, 2 prawns" into catalog lines.
//
// Entries are comma separated. Each entry is a positive decimal quantity, an
// optional "kg" and a name. The name matches the first menu item (in menu
// order) whose name or SKU contains it, ignoring case. Blank entries are
// skipped.
//
// Parse never stops at the first bad entry: it returns every line it could
// resolve together with one error per entry it could not. Callers decide
// whether a partial result is acceptable.
type ItemParser struct{}

func NewItemParser() ItemParser {
	return ItemParser{}
}

func (p ItemParser) Parse(text string, menu []catalog.Item) ([]ParsedLine, []error) {
	var (
		lines     []ParsedLine
		entryErrs []error
	)

	for _, raw := range strings.Split(text, ",") {
		entry := strings.TrimSpace(raw)
		if entry == "" {
			continue
		}

		line, err := p.parseEntry(entry, menu)
		if err != nil {
			entryErrs = append(entryErrs, err)
			continue
		}
		lines = append(lines, line)
	}

	return lines, entryErrs
}

func (p ItemParser) parseEntry(entry string, menu []catalog.Item) (ParsedLine, error) {
	m := entryPattern.FindStringSubmatch(entry)
	if m == nil {
		return ParsedLine{}, fmt.Errorf("'%s': %w, expected '<quantity>[kg] <item>'", entry, ErrMalformedEntry)
	}

	qty, err := strconv.ParseFloat(m[1], 64)
	if err != nil || qty <= 0 {
		return ParsedLine{}, fmt.Errorf("'%s': %w, quantity must be positive", entry, ErrMalformedEntry)
	}

	name := strings.TrimSpace(m[3])
	for _, item := range menu {
		if !item.Matches(name) {
			continue
		}
		if !item.Available() {
			return ParsedLine{}, fmt.Errorf("'%s' is %w", item.Name(), ErrOutOfStock)
		}
		return ParsedLine{Item: item, Quantity: qty}, nil
	}

	return ParsedLine{}, fmt.Errorf("'%s' %w", name, ErrUnknownItem)
}
