// Package verification implements the 6-digit email verification code
// flow: assembling the code from six ordered input cells (typing, deleting
// and pasting) and driving the send/verify/resend calls against the API.
package verification

import "strings"

// CodeLength is the number of digit cells in a verification code.
const CodeLength = 6

// CodeInput models the six ordered single-digit cells plus the index of the
// currently focused cell. The assembled code is always exactly the
// concatenation of the cells in index order; each cell holds a single digit
// or nothing. Transitions are plain methods so they are testable without
// any UI harness.
type CodeInput struct {
	cells [CodeLength]string
	focus int
}

// Cells returns a copy of the current cell values.
func (in *CodeInput) Cells() [CodeLength]string {
	return in.cells
}

// Focus returns the index of the focused cell.
func (in *CodeInput) Focus() int {
	return in.focus
}

// Code assembles the canonical code string from the cells in index order.
func (in *CodeInput) Code() string {
	return strings.Join(in.cells[:], "")
}

// Complete reports whether all six cells are filled.
func (in *CodeInput) Complete() bool {
	return len(in.Code()) == CodeLength
}

// EnterDigit sets cell i to value and advances focus. A cell accepts only a
// single digit or the empty string (which clears it); anything else is
// ignored. Entering a digit into cell i moves focus to i+1 unless i is the
// last cell.
func (in *CodeInput) EnterDigit(i int, value string) {
	if i < 0 || i >= CodeLength || !validCell(value) {
		return
	}
	in.cells[i] = value
	in.focus = i
	if value != "" && i < CodeLength-1 {
		in.focus = i + 1
	}
}

// Backspace handles a delete in cell i: an empty cell moves focus back to
// i-1, a filled cell is cleared in place.
func (in *CodeInput) Backspace(i int) {
	if i < 0 || i >= CodeLength {
		return
	}
	if in.cells[i] == "" {
		if i > 0 {
			in.focus = i - 1
		}
		return
	}
	in.cells[i] = ""
	in.focus = i
}

// Paste distributes pasted text across the cells: non-digits are stripped,
// the rest truncated to six characters and written left-to-right from cell
// 0. Focus lands on the cell after the last filled one, or on the last cell
// when the paste filled all six.
func (in *CodeInput) Paste(text string) {
	digits := make([]string, 0, CodeLength)
	for _, r := range text {
		if r >= '0' && r <= '9' {
			digits = append(digits, string(r))
			if len(digits) == CodeLength {
				break
			}
		}
	}
	for i, d := range digits {
		in.cells[i] = d
	}
	in.focus = len(digits)
	if in.focus >= CodeLength {
		in.focus = CodeLength - 1
	}
}

// Clear empties every cell and refocuses cell 0.
func (in *CodeInput) Clear() {
	in.cells = [CodeLength]string{}
	in.focus = 0
}

func validCell(value string) bool {
	if value == "" {
		return true
	}
	return len(value) == 1 && value[0] >= '0' && value[0] <= '9'
}
