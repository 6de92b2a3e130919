package layout

import (
	"fmt"
	"strconv"
	"strings"
)

// RowLabeler maps zero-based row indexes to printable row identifiers and
// back.  Capacity is the number of rows it can name; the Validator rejects
// configs with more rows than that.
type RowLabeler interface {
	Label(row int) (string, error)
	Index(label string) (int, error)
	Capacity() int
}

// LetterLabeler is the canonical scheme: one uppercase letter per row, A–Z.
type LetterLabeler struct{}

// LetterCapacity is the number of rows LetterLabeler can name.
const LetterCapacity = 26

func (LetterLabeler) Capacity() int { return LetterCapacity }

func (LetterLabeler) Label(row int) (string, error) {
	if row < 0 || row >= LetterCapacity {
		return "", &LabelSpaceError{Rows: row + 1, Capacity: LetterCapacity}
	}
	return string(rune('A' + row)), nil
}

func (LetterLabeler) Index(label string) (int, error) {
	s := normalizeRowLabel(label)
	if len(s) != 1 {
		return -1, fmt.Errorf("%w: row label %q", ErrInvalidSeatID, label)
	}
	return int(s[0] - 'A'), nil
}

// ExtendedLabeler continues past Z with two letters (A..Z, AA..ZZ), the
// same numbering spreadsheet columns use.
type ExtendedLabeler struct{}

// ExtendedCapacity covers every one and two letter label.
const ExtendedCapacity = 26 + 26*26

func (ExtendedLabeler) Capacity() int { return ExtendedCapacity }

func (ExtendedLabeler) Label(row int) (string, error) {
	if row < 0 || row >= ExtendedCapacity {
		return "", &LabelSpaceError{Rows: row + 1, Capacity: ExtendedCapacity}
	}
	res := []rune{}
	for {
		res = append(res, rune('A'+row%26))
		row = row/26 - 1
		if row < 0 {
			break
		}
	}
	for j, k := 0, len(res)-1; j < k; j, k = j+1, k-1 {
		res[j], res[k] = res[k], res[j]
	}
	return string(res), nil
}

func (ExtendedLabeler) Index(label string) (int, error) {
	s := normalizeRowLabel(label)
	if s == "" || len(s) > 2 {
		return -1, fmt.Errorf("%w: row label %q", ErrInvalidSeatID, label)
	}
	n := 0
	for i := 0; i < len(s); i++ {
		n = n*26 + int(s[i]-'A'+1)
	}
	return n - 1, nil
}

// normalizeRowLabel keeps ASCII letters only, upper-cased.
func normalizeRowLabel(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r - 32)
		} else if r >= 'A' && r <= 'Z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// parseSeatID splits ids like "A3" or " b12 " into a zero-based row and a
// seat number using l to resolve the row label.
func parseSeatID(l RowLabeler, id string) (Position, error) {
	s := strings.TrimSpace(id)
	i := 0
	for i < len(s) && ((s[i] >= 'A' && s[i] <= 'Z') || (s[i] >= 'a' && s[i] <= 'z')) {
		i++
	}
	if i == 0 || i == len(s) {
		return Position{}, fmt.Errorf("%w: %q", ErrInvalidSeatID, id)
	}
	row, err := l.Index(s[:i])
	if err != nil {
		return Position{}, err
	}
	n, err := strconv.Atoi(s[i:])
	if err != nil || n < 1 {
		return Position{}, fmt.Errorf("%w: %q", ErrInvalidSeatID, id)
	}
	return Position{Row: row, Seat: n}, nil
}
