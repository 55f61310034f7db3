package cli

import (
	"bytes"
	"context"
	"errors"
	"net"
	"strings"
	"testing"

	"github.com/sabania/framesrv/internal/domain"
)

func testConfig(t *testing.T) domain.Config {
	t.Helper()
	cfg := domain.DefaultConfig()
	cfg.Host = "127.0.0.1"
	cfg.Port = 0
	cfg.Root = t.TempDir()
	return cfg
}

func runRoot(ctx context.Context, cfg domain.Config, args ...string) (string, string, error) {
	var out, errOut bytes.Buffer
	cmd := newRootCmd(cfg)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	return out.String(), errOut.String(), err
}

// --- root command ---

func TestRootAnnouncesAndStops(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := testConfig(t)
	out, _, err := runRoot(ctx, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Serving on") {
		t.Fatalf("expected announcement, got %q", out)
	}
	if !strings.Contains(out, cfg.URL()) {
		t.Fatalf("expected URL %s in %q", cfg.URL(), out)
	}
}

func TestRootRejectsArguments(t *testing.T) {
	_, _, err := runRoot(context.Background(), testConfig(t), "somewhere")
	if err == nil {
		t.Fatalf("expected error for positional argument")
	}
}

func TestRootRejectsFlags(t *testing.T) {
	_, _, err := runRoot(context.Background(), testConfig(t), "--port", "9000")
	if err == nil {
		t.Fatalf("expected error for unknown flag")
	}
}

func TestRootFailsWhenPortInUse(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	defer ln.Close()

	cfg := testConfig(t)
	cfg.Port = ln.Addr().(*net.TCPAddr).Port

	out, errOut, err := runRoot(context.Background(), cfg)
	if !errors.Is(err, domain.ErrBind) {
		t.Fatalf("expected bind error, got %v", err)
	}
	if strings.Contains(out, "Serving on") {
		t.Fatalf("did not expect announcement after bind failure, got %q", out)
	}
	if !strings.Contains(errOut, "bind") {
		t.Fatalf("expected error message on stderr, got %q", errOut)
	}
}

// --- version ---

func TestVersionCommand(t *testing.T) {
	out, _, err := runRoot(context.Background(), testConfig(t), "version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out, "framesrv dev") {
		t.Fatalf("unexpected version output %q", out)
	}
}

// --- banner ---

func TestBannerPlainWhenNotTerminal(t *testing.T) {
	var buf bytes.Buffer
	if err := newBannerAnnouncer(&buf).Announce("http://localhost:8000"); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "Serving on http://localhost:8000\n" {
		t.Fatalf("unexpected banner %q", got)
	}
}
