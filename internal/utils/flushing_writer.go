package utils

import (
	"io"
	"sync"
)

type flusher interface {
	Flush() error
}

// FlushingWriter serializes writes and flushes buffered destinations after each one, so prompts appear before input is read.
type FlushingWriter struct {
	mutex       sync.Mutex
	destination io.Writer
	flusher     flusher
}

// NewFlushingWriter wraps destination. Writers that are already flushing and nil writers are returned unchanged.
func NewFlushingWriter(destination io.Writer) io.Writer {
	switch typedDestination := destination.(type) {
	case nil:
		return nil
	case *FlushingWriter:
		return typedDestination
	}

	wrapped := &FlushingWriter{destination: destination}
	if destinationFlusher, canFlush := destination.(flusher); canFlush {
		wrapped.flusher = destinationFlusher
	}
	return wrapped
}

// Write forwards data to the destination and flushes it when the destination buffers output.
func (writer *FlushingWriter) Write(data []byte) (int, error) {
	if writer == nil || writer.destination == nil {
		return 0, nil
	}

	writer.mutex.Lock()
	defer writer.mutex.Unlock()

	writtenCount, writeError := writer.destination.Write(data)
	if writeError != nil || writer.flusher == nil {
		return writtenCount, writeError
	}
	return writtenCount, writer.flusher.Flush()
}
