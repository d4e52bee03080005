package squidconf

import (
	"bytes"
	"io"

	"github.com/firefly-engineering/squid-in-a-can/internal/config"
	"github.com/firefly-engineering/squid-in-a-can/internal/logging"
)

// Document is a squid.conf ready to be written.
type Document struct {
	// Template is copied first; nil in directives-only mode.
	Template []byte

	// Directives are written one per line after the template.
	Directives []string

	// Raw is appended last, exactly as given.
	Raw string
}

// New assembles the document for opts. template is only used when
// directives-only mode is off.
func New(opts *config.Options, settings *config.Settings, template []byte) *Document {
	doc := &Document{Raw: opts.Directives}
	if opts.DirectivesOnly {
		return doc
	}

	doc.Template = template
	doc.Directives = Directives(opts, settings)
	return doc
}

// Bytes returns the rendered file contents.
func (d *Document) Bytes() []byte {
	var buf bytes.Buffer
	_, _ = d.WriteTo(&buf)
	return buf.Bytes()
}

// WriteTo writes the rendered file to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}

	cw.put(d.Template)
	// Keep the first directive off the template's last line.
	if n := len(d.Template); n > 0 && d.Template[n-1] != '\n' && len(d.Directives) > 0 {
		cw.put([]byte{'\n'})
	}
	for _, line := range d.Directives {
		cw.put([]byte(line + "\n"))
	}
	if d.Raw != "" {
		cw.put([]byte(d.Raw))
	}

	return cw.n, cw.err
}

// Announce prints what is being appended to squid.conf with credentials
// masked.
func (d *Document) Announce() {
	for _, line := range d.Directives {
		logging.UserInfo("Appending to squid.conf: [%s]", HidePassword(line))
	}
	if d.Raw != "" {
		logging.UserInfo("Appending squid directives to squid.conf")
		logging.UserText(HidePassword(d.Raw))
	}
}

// countingWriter remembers the first error and stops writing after it.
type countingWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (c *countingWriter) put(p []byte) {
	if c.err != nil || len(p) == 0 {
		return
	}
	n, err := c.w.Write(p)
	c.n += int64(n)
	c.err = err
}
