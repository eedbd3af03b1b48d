package prompt

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

const (
	inputStreamClosedMessageConstant = "input stream closed"
	lineFeedConstant                 = "\n"
	carriageReturnConstant           = "\r"
)

// ErrInputStreamClosed indicates the input ended before a line was available.
var ErrInputStreamClosed = errors.New(inputStreamClosedMessageConstant)

// IOLineReader reads operator answers from an io.Reader, writing prompts to an optional io.Writer.
type IOLineReader struct {
	reader *bufio.Reader
	writer io.Writer
}

// NewIOLineReader constructs a line reader from the provided input and output streams.
func NewIOLineReader(input io.Reader, output io.Writer) *IOLineReader {
	return &IOLineReader{reader: bufio.NewReader(input), writer: output}
}

// ReadLine writes prompt and returns the next line without its terminator. The rest of the line is returned verbatim.
func (lineReader *IOLineReader) ReadLine(prompt string) (string, error) {
	if lineReader.writer != nil && len(prompt) > 0 {
		if _, writeError := io.WriteString(lineReader.writer, prompt); writeError != nil {
			return "", writeError
		}
	}

	line, readError := lineReader.reader.ReadString('\n')
	if readError != nil {
		if !errors.Is(readError, io.EOF) {
			return "", readError
		}
		if len(line) == 0 {
			return "", ErrInputStreamClosed
		}
	}

	line = strings.TrimSuffix(line, lineFeedConstant)
	line = strings.TrimSuffix(line, carriageReturnConstant)
	return line, nil
}
