// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package expect parses z8t test specification files.
//
// Each line of interest has the form
//
//	CMD: value
//
// where CMD is one or more upper case letters naming a register field,
// and value is a hexadecimal number. All other lines are ignored.
package expect

import (
	"bufio"
	"errors"
	"io"
	"iter"
	"log"
	"math"
	"regexp"
	"strconv"
)

const (
	MaxTokenLength = 255 // Longest accepted command or value token.
)

var lineExp = regexp.MustCompile(`^([A-Z]+):\s+([0-9a-fx:,]+)`)

// Line is a single parsed expectation.
type Line struct {
	LineNo  int    // Line number in the source, from 1.
	Text    string // Source text.
	Command string // Register command, e.g. "BC".
	Value   uint32 // Expected value.
}

// Length of the command, in letters.
func (line Line) Length() int {
	return len(line.Command)
}

// Hex converts the leading hexadecimal digits of token, after an
// optional 0x prefix. Trailing characters are ignored, a token without
// digits is zero, and an overflow saturates.
func Hex(token string) (value uint32) {
	digits := token
	if len(digits) > 2 && digits[0] == '0' && (digits[1] == 'x' || digits[1] == 'X') && isHex(digits[2]) {
		digits = digits[2:]
	}

	end := 0
	for end < len(digits) && isHex(digits[end]) {
		end++
	}
	if end == 0 {
		return
	}

	v64, err := strconv.ParseUint(digits[:end], 16, 32)
	if errors.Is(err, strconv.ErrRange) {
		return math.MaxUint32
	}

	return uint32(v64)
}

func isHex(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// ParseLine parses one line of text.
func ParseLine(lineno int, text string) (line Line, err error) {
	match := lineExp.FindStringSubmatch(text)
	if match == nil {
		err = &ErrSyntax{LineNo: lineno, Line: text, Err: ErrNoMatch}
		return
	}

	command, value := match[1], match[2]
	if len(command) > MaxTokenLength || len(value) > MaxTokenLength {
		err = &ErrSyntax{LineNo: lineno, Line: text, Err: ErrTokenLength}
		return
	}

	line = Line{
		LineNo:  lineno,
		Text:    text,
		Command: command,
		Value:   Hex(value),
	}

	return
}

// MaxLineLength bounds the text kept from one line. The remainder of a
// longer line is discarded, and the kept prefix is still parsed.
const MaxLineLength = 64 * 1024

// lineReader splits a stream into lines of at most MaxLineLength bytes.
type lineReader struct {
	reader *bufio.Reader
	err    error
}

// next returns the next line, and whether it was cut at MaxLineLength.
// ok is false once the stream is exhausted or has failed.
func (lr *lineReader) next() (text string, long bool, ok bool) {
	if lr.err != nil {
		return
	}

	var buf []byte
	for {
		chunk, more, err := lr.reader.ReadLine()
		if err != nil {
			lr.err = err
			break
		}
		ok = true

		room := MaxLineLength - len(buf)
		if len(chunk) > room {
			chunk = chunk[:room]
			long = true
		}
		buf = append(buf, chunk...)

		if !more {
			break
		}
	}

	text = string(buf)
	return
}

// Parser streams expectations from a specification file.
type Parser struct {
	Verbose bool // If set, logs every skipped line.
}

// Lines returns an iterator over the expectations of input, in order.
// Lines that are not expectations are skipped. A read failure is
// yielded last.
func (p *Parser) Lines(input io.Reader) iter.Seq2[Line, error] {
	return func(yield func(line Line, err error) bool) {
		lr := &lineReader{reader: bufio.NewReader(input)}

		var lineno int
		for {
			text, long, ok := lr.next()
			if !ok {
				break
			}
			lineno++

			if long {
				log.Printf("expect: line %d: %v", lineno, ErrLineLength)
			}

			line, err := ParseLine(lineno, text)
			if errors.Is(err, ErrTokenLength) {
				log.Printf("expect: %v", err)
				continue
			}
			if err != nil {
				if p.Verbose {
					log.Printf("expect: %v", err)
				}
				continue
			}

			if !yield(line, nil) {
				return
			}
		}

		if lr.err != nil && !errors.Is(lr.err, io.EOF) {
			yield(Line{}, &ErrRead{LineNo: lineno, Err: lr.err})
		}
	}
}
