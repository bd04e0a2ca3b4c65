// Package input turns raw terminal bytes into pointer and key events.
package input

import (
	"bufio"
	"strconv"
	"sync"
)

// maxSGRLength bounds an SGR mouse report: ESC [ < btn ; col ; row M.
const maxSGRLength = 32

// EventType identifies the kind of input event.
type EventType int

const (
	EventPointer EventType = iota // Pointer moved or clicked
	EventQuit                     // q, Q, Ctrl-C or a lone Escape
	EventKey                      // Any other single byte
)

// Event is a single input occurrence. Pointer events carry 0-based
// terminal cell coordinates.
type Event struct {
	Type EventType
	Col  int
	Row  int
	Key  byte
}

// Stream delivers input bytes via a channel and keeps incomplete escape
// sequences between reads.
type Stream struct {
	ch       chan byte
	done     chan struct{}
	finished chan struct{}
	stopOnce sync.Once
	pending  []byte
	closed   bool
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
// The channel is closed when r returns an error (e.g. the connection ends).
// After Stop the goroutine drops bytes instead of blocking on a full channel.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch:       make(chan byte, 1024),
		done:     make(chan struct{}),
		finished: make(chan struct{}),
	}
	go func() {
		defer close(s.finished)
		defer close(s.ch)
		for {
			b, err := r.ReadByte()
			if err != nil {
				return
			}
			select {
			case s.ch <- b:
			case <-s.done:
				return
			}
		}
	}()
	return s
}

// Stop tells the reader goroutine that nobody reads the stream any more.
// It returns at the next byte it would have delivered, or when the reader
// fails. Safe to call more than once.
func (s *Stream) Stop() {
	s.stopOnce.Do(func() { close(s.done) })
}

// Closed reports whether the underlying reader has ended.
func (s *Stream) Closed() bool {
	return s.closed
}

// ReadEvents drains all available bytes from the stream (non-blocking) and
// returns the parsed events in arrival order.
func ReadEvents(s *Stream) []Event {
	buf := s.pending
	fresh := 0

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
			fresh++
		default:
			break drain
		}
	}

	// An escape byte that saw nothing follow it for a whole frame was a
	// key press, not the start of a sequence.
	if fresh == 0 && len(buf) == 1 && buf[0] == '\x1b' {
		s.pending = nil
		return []Event{{Type: EventQuit, Key: '\x1b'}}
	}

	events, rest := Parse(buf)
	s.pending = append(s.pending[:0:0], rest...)
	return events
}

// Parse decodes as many complete events as possible from buf. Bytes that
// start an unfinished escape sequence are returned as rest.
func Parse(buf []byte) (events []Event, rest []byte) {
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		if b != '\x1b' {
			events = append(events, keyEvent(b))
			continue
		}

		if i+1 >= len(buf) {
			return events, buf[i:]
		}
		if buf[i+1] != '[' {
			// Escape followed by a regular byte: treat the escape as a key.
			events = append(events, Event{Type: EventQuit, Key: '\x1b'})
			continue
		}
		if i+2 >= len(buf) {
			return events, buf[i:]
		}

		if buf[i+2] == '<' {
			n, ev, ok, complete := parseSGRMouse(buf[i:])
			if !complete {
				return events, buf[i:]
			}
			if ok {
				events = append(events, ev)
			}
			i += n - 1
			continue
		}

		// Other CSI sequences (arrows, focus, ...) are skipped.
		n, complete := skipCSI(buf[i:])
		if !complete {
			return events, buf[i:]
		}
		i += n - 1
	}
	return events, nil
}

func keyEvent(b byte) Event {
	switch b {
	case 'q', 'Q', 0x03:
		return Event{Type: EventQuit, Key: b}
	default:
		return Event{Type: EventKey, Key: b}
	}
}

// parseSGRMouse parses ESC [ < btn ; col ; row (M|m) at the start of data.
// n is the length consumed. complete is false when more bytes are needed;
// ok is false for well-formed reports that are not pointer positions (wheel)
// and for garbage, which is consumed.
func parseSGRMouse(data []byte) (n int, ev Event, ok, complete bool) {
	end := 3
	for end < len(data) && end < maxSGRLength {
		if data[end] == 'M' || data[end] == 'm' {
			break
		}
		end++
	}
	if end >= len(data) {
		if len(data) < maxSGRLength {
			return 0, Event{}, false, false
		}
		return maxSGRLength, Event{}, false, true
	}
	if data[end] != 'M' && data[end] != 'm' {
		return end, Event{}, false, true
	}

	btn, col, row, valid := parseSGRParams(data[3:end])
	if !valid || btn&64 != 0 {
		return end + 1, Event{}, false, true
	}
	return end + 1, Event{Type: EventPointer, Col: col - 1, Row: row - 1}, true, true
}

// parseSGRParams parses "btn;col;row".
func parseSGRParams(params []byte) (btn, col, row int, ok bool) {
	var fields [3]int
	idx := 0
	start := 0
	for i := 0; i <= len(params); i++ {
		if i < len(params) && params[i] != ';' {
			continue
		}
		if idx >= len(fields) {
			return 0, 0, 0, false
		}
		v, err := strconv.Atoi(string(params[start:i]))
		if err != nil || v < 0 {
			return 0, 0, 0, false
		}
		fields[idx] = v
		idx++
		start = i + 1
	}
	if idx != len(fields) || fields[1] < 1 || fields[2] < 1 {
		return 0, 0, 0, false
	}
	return fields[0], fields[1], fields[2], true
}

// skipCSI returns the length of the CSI sequence at the start of data.
func skipCSI(data []byte) (n int, complete bool) {
	for i := 2; i < len(data); i++ {
		if data[i] >= 0x40 && data[i] <= 0x7e {
			return i + 1, true
		}
	}
	return 0, false
}
