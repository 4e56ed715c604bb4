package testutil

import (
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func AssertLines(t *testing.T, expected string, actual string) {
	t.Helper()

	expectedLines := strings.Split(expected, "\n")
	actualLines := strings.Split(actual, "\n")

	for i := 0; i < len(expectedLines); i = i + 1 {
		if i > len(actualLines)-1 {
			t.Fatalf("Expected %s, but got no line", expectedLines[i])
		} else if strings.TrimSpace(expectedLines[i]) == "" && strings.TrimSpace(actualLines[i]) == "" {
			continue
		} else if !assert.Equal(t, expectedLines[i], actualLines[i], "Mismatch on line "+strconv.Itoa(i)) {
			break
		}
	}

	if len(expectedLines) != len(actualLines) {
		t.Fatalf("Expected %d lines, but got %d lines", len(expectedLines), len(actualLines))
	}
}

// Recorder is an io.Writer keeping every Write call separately.
type Recorder struct {
	mu     sync.Mutex
	writes []string
}

func (r *Recorder) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.writes = append(r.writes, string(p))
	return len(p), nil
}

// Writes returns a copy of every write so far.
func (r *Recorder) Writes() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]string(nil), r.writes...)
}

// String joins every write.
func (r *Recorder) String() string {
	return strings.Join(r.Writes(), "")
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.writes = nil
}
