package loader

import (
	"strconv"
	"strings"

	"github.com/gostonefire/twohashtable/internal/conf"
	"github.com/gostonefire/twohashtable/internal/model"
)

// scanner states
const (
	stateIdentifier = iota
	stateDescriptionStart
	stateUnquoted
	stateQuoted
	stateQuoteInQuoted
)

// ParseLine - Splits one dataset line into a record. The line has the form <identifier>,<description> where the
// description may be wrapped in double quotes, in which case doubled quotes inside it stand for one literal quote.
// A quoted description must end the line. An unquoted description is taken as is up to the end of the line.
//
// It returns:
//   - record is the parsed record with the description unescaped
//   - err is of type MalformedLine if the line could not be parsed
func ParseLine(line string) (record model.Record, err error) {
	line = strings.TrimRight(line, "\r\n")

	var desc strings.Builder
	var idEnd int
	state := stateIdentifier

scan:
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch state {
		case stateIdentifier:
			if c == conf.FieldSeparator {
				idEnd = i
				state = stateDescriptionStart
			} else if c < '0' || c > '9' {
				err = MalformedLine{msg: "identifier must be digits only"}
				return
			}
		case stateDescriptionStart:
			if c == conf.QuoteChar {
				state = stateQuoted
			} else {
				desc.WriteString(line[i:])
				state = stateUnquoted
				break scan
			}
		case stateQuoted:
			if c == conf.QuoteChar {
				state = stateQuoteInQuoted
			} else {
				desc.WriteByte(c)
			}
		case stateQuoteInQuoted:
			if c == conf.QuoteChar {
				desc.WriteByte(c)
				state = stateQuoted
			} else {
				err = MalformedLine{msg: "unexpected text after closing quote"}
				return
			}
		}
	}

	switch state {
	case stateIdentifier:
		err = MalformedLine{msg: "no field separator"}
		return
	case stateQuoted:
		err = MalformedLine{msg: "unterminated quoted description"}
		return
	}

	if idEnd == 0 {
		err = MalformedLine{msg: "empty identifier"}
		return
	}

	id, e := strconv.ParseInt(line[:idEnd], 10, 64)
	if e != nil {
		err = MalformedLine{msg: e.Error()}
		return
	}

	record = model.Record{Identifier: id, Description: desc.String()}

	return
}
