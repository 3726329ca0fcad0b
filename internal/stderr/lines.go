package stderr

import (
	"bufio"
	"io"
	"strings"
)

const (
	alsaPrefix   = "ALSA lib "
	devicePrefix = "audio device: "
)

// deviceLine turns a raw backend line into a UI message. ALSA's
// "ALSA lib file.c:N:(func) text" location is dropped. Blank lines yield "".
func deviceLine(raw string) string {
	line := strings.TrimSpace(raw)
	if line == "" {
		return ""
	}
	if rest, ok := strings.CutPrefix(line, alsaPrefix); ok {
		if _, text, found := strings.Cut(rest, ") "); found && strings.TrimSpace(text) != "" {
			line = strings.TrimSpace(text)
		}
	}
	return devicePrefix + line
}

// forward sends each non-blank line of r to out until r is exhausted.
// Lines are dropped while out is full.
func forward(r io.Reader, out chan<- string) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		msg := deviceLine(scanner.Text())
		if msg == "" {
			continue
		}
		select {
		case out <- msg:
		default:
		}
	}
}
