//nolint:goconst // test cases intentionally repeat strings for readability
package errmsg

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpSourceLoad,
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with operation",
			op:       OpSourceLoad,
			err:      errors.New("file not found"),
			expected: "Failed to load sound: file not found",
		},
		{
			name:     "buffer operation",
			op:       OpSourceBuffer,
			err:      errors.New("too long"),
			expected: "Failed to buffer sound: too long",
		},
		{
			name:     "queue operation",
			op:       OpQueueAdd,
			err:      errors.New("player deleted"),
			expected: "Failed to add to queue: player deleted",
		},
		{
			name:     "device operation",
			op:       OpDeviceOpen,
			err:      errors.New("busy"),
			expected: "Failed to open audio device: busy",
		},
		{
			name:     "playback operation",
			op:       OpPlaybackStart,
			err:      errors.New("no audio device"),
			expected: "Failed to start playback: no audio device",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.op, tt.err)
			if result != tt.expected {
				t.Errorf("Format(%q, %v) = %q, want %q", tt.op, tt.err, result, tt.expected)
			}
		})
	}
}

func TestFormatWith(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		context  string
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpSourceLoad,
			context:  "song.mp3",
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with context",
			op:       OpSourceLoad,
			context:  "song.mp3",
			err:      errors.New("permission denied"),
			expected: "Failed to load sound 'song.mp3': permission denied",
		},
		{
			name:     "empty context falls back to Format",
			op:       OpSourceLoad,
			context:  "",
			err:      errors.New("permission denied"),
			expected: "Failed to load sound: permission denied",
		},
		{
			name:     "check with name context",
			op:       OpScenarioRun,
			context:  "pause-sound",
			err:      errors.New("context canceled"),
			expected: "Failed to run check 'pause-sound': context canceled",
		},
		{
			name:     "render with path context",
			op:       OpRender,
			context:  "/tmp/out.wav",
			err:      errors.New("directory not found"),
			expected: "Failed to render check '/tmp/out.wav': directory not found",
		},
		{
			name:     "load with filename context",
			op:       OpSourceLoad,
			context:  "receive.flac",
			err:      errors.New("unsupported format"),
			expected: "Failed to load sound 'receive.flac': unsupported format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatWith(tt.op, tt.context, tt.err)
			if result != tt.expected {
				t.Errorf("FormatWith(%q, %q, %v) = %q, want %q", tt.op, tt.context, tt.err, result, tt.expected)
			}
		})
	}
}

func TestOpConstants(t *testing.T) {
	// Verify that Op constants are non-empty and produce valid messages
	ops := []Op{
		OpSourceLoad, OpSourceBuffer,
		OpQueueAdd, OpPlaybackStart, OpPlaybackAudio,
		OpDeviceOpen,
		OpScenarioRun, OpRender,
		OpConfigLoad, OpInitialize,
	}

	testErr := errors.New("test error")

	for _, op := range ops {
		t.Run(string(op), func(t *testing.T) {
			if op == "" {
				t.Error("Op constant should not be empty")
			}

			result := Format(op, testErr)
			if result == "" {
				t.Error("Format should return non-empty string for non-nil error")
			}

			// Verify the format includes the operation
			expected := "Failed to " + string(op) + ": test error"
			if result != expected {
				t.Errorf("Format = %q, want %q", result, expected)
			}
		})
	}
}
