package progress

import (
	"bytes"
	"strings"
	"testing"

	"github.com/slint-ui/cross/internal/shell"
)

func testLine(v shell.Verbosity, terminal bool, width int) (*Line, *bytes.Buffer) {
	sh := shell.New(shell.ColorNever, v)
	buf := &bytes.Buffer{}
	sh.SetStreams(nil, shell.NewStream(buf, func() bool { return terminal }, nil))
	l := New(sh)
	l.width = func() int { return width }
	return l, buf
}

func TestUpdateWritesInPlaceLine(t *testing.T) {
	l, buf := testLine(shell.Normal, true, 80)

	if err := l.Update("compiling stage 1"); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "\r\x1b[Kcompiling stage 1"; got != want {
		t.Errorf("stream = %q, want %q", got, want)
	}
	if strings.HasSuffix(buf.String(), "\n") {
		t.Error("progress line must stay unterminated")
	}
}

func TestUpdateTruncatesToWidth(t *testing.T) {
	l, buf := testLine(shell.Normal, true, 11)

	if err := l.Update("a very long progress message"); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "\r\x1b[Ka very lon"; got != want {
		t.Errorf("stream = %q, want %q", got, want)
	}
}

func TestUpdateSkippedWhenQuiet(t *testing.T) {
	l, buf := testLine(shell.Quiet, true, 80)

	if err := l.Update("hidden"); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("quiet progress wrote %q", buf.String())
	}
}

func TestUpdateSkippedWithoutTerminal(t *testing.T) {
	l, buf := testLine(shell.Normal, false, 80)

	if err := l.Update("hidden"); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("non-terminal progress wrote %q", buf.String())
	}
}

func TestDoneErasesPendingLine(t *testing.T) {
	l, buf := testLine(shell.Normal, true, 80)

	if err := l.Update("working"); err != nil {
		t.Fatal(err)
	}
	buf.Reset()

	if err := l.Done("finished"); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "\x1b[Kfinished\n"; got != want {
		t.Errorf("stream = %q, want erase then final line %q", got, want)
	}
}

func TestNextShellMessageOverwritesProgress(t *testing.T) {
	l, buf := testLine(shell.Normal, true, 80)
	sh := l.sh

	if err := l.Update("probing docker"); err != nil {
		t.Fatal(err)
	}
	buf.Reset()

	if err := sh.Warn("docker not responding"); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "\x1b[K[cross] warning: docker not responding\n"; got != want {
		t.Errorf("stream = %q, want %q", got, want)
	}
}
