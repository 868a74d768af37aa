package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/Apurer/retail-catalog/internal/domains/catalog/domain"
)

var _ domain.Confirmer = (*Confirmer)(nil)

// Confirmer asks questions on a writer and reads one line per answer. An
// exhausted reader yields io.EOF, which products treat as a refusal.
type Confirmer struct {
	mu     sync.Mutex
	in     *bufio.Reader
	prompt io.Writer
}

// NewConfirmer reads answers from in and writes questions to prompt. A nil
// prompt discards the questions.
func NewConfirmer(in io.Reader, prompt io.Writer) *Confirmer {
	if prompt == nil {
		prompt = io.Discard
	}
	return &Confirmer{in: bufio.NewReader(in), prompt: prompt}
}

// Confirm prints question and returns the next input line without its line
// terminator. A final line lacking a terminator is still returned.
func (c *Confirmer) Confirm(question string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := fmt.Fprint(c.prompt, question); err != nil {
		return "", err
	}
	line, err := c.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
