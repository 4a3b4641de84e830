package text

import (
	"strings"
)

// Line is a single line of a text, aware of its neighbours.
type Line struct {
	Text   string
	Number int // 1-based

	lines []string
}

// MissingLine is returned when moving before the first or after the last line.
// It behaves like a blank line so that l.Next().Next().IsBlank() is safe to call.
var MissingLine = Line{
	Text:   "",
	Number: -1,
}

func (l Line) IsBlank() bool {
	return IsBlank(l.Text)
}

func (l Line) Next() Line {
	return l.at(l.Number + 1)
}

func (l Line) Prev() Line {
	return l.at(l.Number - 1)
}

func (l Line) IsLast() bool {
	return l.Number == len(l.lines)
}

func (l Line) at(number int) Line {
	if l.Number < 1 || number < 1 || number > len(l.lines) {
		return MissingLine
	}
	return Line{
		Text:   l.lines[number-1],
		Number: number,
		lines:  l.lines,
	}
}

// LineIterator iterates over the lines of a text.
type LineIterator struct {
	lines []string
	next  int // 0-based index of the next line
}

func NewLineIteratorFromText(text string) *LineIterator {
	return &LineIterator{
		lines: strings.Split(text, "\n"),
	}
}

func (it *LineIterator) HasNext() bool {
	return it.next < len(it.lines)
}

// Peek is like Next but does not move the iterator.
func (it *LineIterator) Peek() Line {
	if !it.HasNext() {
		return MissingLine
	}
	return Line{
		Text:   it.lines[it.next],
		Number: it.next + 1,
		lines:  it.lines,
	}
}

func (it *LineIterator) Next() Line {
	line := it.Peek()
	if it.HasNext() {
		it.next++
	}
	return line
}

// SkipBlankLines moves the iterator to the next non-blank line.
func (it *LineIterator) SkipBlankLines() {
	for it.HasNext() && it.Peek().IsBlank() {
		it.next++
	}
}
