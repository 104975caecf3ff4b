package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"lumina/internal/assistant"
	"lumina/internal/catalog"
	"lumina/internal/config"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// setupTest resets the package globals the commands read.
func setupTest(t *testing.T) {
	t.Helper()
	cfg = config.DefaultConfig()
	cfg.Logging.File = ""
	logger = zap.NewNop()
	configPath = filepath.Join(t.TempDir(), "config.yaml")
	catalogCategory = "All"
	catalogQuery = ""
}

func TestJoinArgs(t *testing.T) {
	got := joinArgs([]string{"a", "lamp", "for", "reading"})
	if got != "a lamp for reading" {
		t.Fatalf("expected 'a lamp for reading', got '%s'", got)
	}
}

func TestListCatalogByCategory(t *testing.T) {
	setupTest(t)
	catalogCategory = "lighting"

	output := captureOutput(t, func() {
		if err := listCatalog(&cobra.Command{}, nil); err != nil {
			t.Fatalf("listCatalog returned error: %v", err)
		}
	})

	for _, want := range []string{"Pendant Sphere Light", "Brushed Steel Table Lamp", "$340"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output, got: %s", want, output)
		}
	}
	if strings.Contains(output, "Travertine Coffee Table") {
		t.Errorf("furniture should be filtered out, got: %s", output)
	}
}

func TestListCatalogSearch(t *testing.T) {
	setupTest(t)
	catalogQuery = "sideboard"

	output := captureOutput(t, func() {
		if err := listCatalog(&cobra.Command{}, nil); err != nil {
			t.Fatalf("listCatalog returned error: %v", err)
		}
	})

	if !strings.Contains(output, "Minimalist Oak Sideboard") {
		t.Fatalf("expected sideboard in output, got: %s", output)
	}
}

func TestListCatalogNoMatches(t *testing.T) {
	setupTest(t)
	catalogQuery = "no such thing"

	output := captureOutput(t, func() {
		if err := listCatalog(&cobra.Command{}, nil); err != nil {
			t.Fatalf("listCatalog returned error: %v", err)
		}
	})

	if !strings.Contains(output, "No products found.") {
		t.Fatalf("expected empty notice, got: %s", output)
	}
}

func TestListCatalogUnknownCategory(t *testing.T) {
	setupTest(t)
	catalogCategory = "Garden"

	if err := listCatalog(&cobra.Command{}, nil); err == nil {
		t.Fatal("expected error for unknown category")
	}
}

func TestAskWithoutAPIKeyPrintsFallback(t *testing.T) {
	setupTest(t)

	output := captureOutput(t, func() {
		if err := runAsk(&cobra.Command{}, []string{"a", "warm", "lamp"}); err != nil {
			t.Fatalf("runAsk returned error: %v", err)
		}
	})

	if !strings.Contains(output, assistant.FallbackMessage) {
		t.Fatalf("expected fallback message, got: %s", output)
	}
}

func TestSeedThenBrowseSQLite(t *testing.T) {
	setupTest(t)
	db := filepath.Join(t.TempDir(), "catalog.db")

	output := captureOutput(t, func() {
		if err := runSeed(&cobra.Command{}, []string{db}); err != nil {
			t.Fatalf("runSeed returned error: %v", err)
		}
	})
	if !strings.Contains(output, "Seeded 8 products") {
		t.Fatalf("expected seed summary, got: %s", output)
	}

	cfg.Catalog = config.CatalogConfig{Source: "sqlite", Path: db}
	output = captureOutput(t, func() {
		if err := listCatalog(&cobra.Command{}, nil); err != nil {
			t.Fatalf("listCatalog returned error: %v", err)
		}
	})
	if !strings.Contains(output, "Travertine Coffee Table") {
		t.Fatalf("expected seeded products, got: %s", output)
	}
}

func TestCommandContextDefaultsToBackground(t *testing.T) {
	if ctx := commandContext(&cobra.Command{}); ctx == nil {
		t.Fatal("expected a non-nil context for a command run outside Execute")
	}

	type key struct{}
	want := context.WithValue(context.Background(), key{}, "set")
	cmd := &cobra.Command{}
	cmd.SetContext(want)
	if got := commandContext(cmd); got != want {
		t.Fatal("expected the command's own context to be returned")
	}
}

func TestListCatalogFromSQLiteOutsideExecute(t *testing.T) {
	setupTest(t)
	db := filepath.Join(t.TempDir(), "catalog.db")
	if err := catalog.SeedSQLite(context.Background(), db, catalog.Default().Products()); err != nil {
		t.Fatalf("SeedSQLite returned error: %v", err)
	}
	cfg.Catalog = config.CatalogConfig{Source: "sqlite", Path: db}
	catalogCategory = "decor"

	output := captureOutput(t, func() {
		if err := listCatalog(&cobra.Command{}, nil); err != nil {
			t.Fatalf("listCatalog returned error: %v", err)
		}
	})
	if !strings.Contains(output, "Sculptural Ceramic Vase") {
		t.Fatalf("expected decor products from sqlite, got: %s", output)
	}
}

func TestConfigInit(t *testing.T) {
	setupTest(t)

	output := captureOutput(t, func() {
		if err := initConfig(&cobra.Command{}, nil); err != nil {
			t.Fatalf("initConfig returned error: %v", err)
		}
	})
	if !strings.Contains(output, "Wrote default config") {
		t.Fatalf("expected write notice, got: %s", output)
	}

	loaded, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if loaded.Shop.Name != "LUMINA" {
		t.Errorf("expected shop name LUMINA, got %q", loaded.Shop.Name)
	}

	output = captureOutput(t, func() {
		if err := initConfig(&cobra.Command{}, nil); err != nil {
			t.Fatalf("initConfig returned error: %v", err)
		}
	})
	if !strings.Contains(output, "already exists") {
		t.Fatalf("expected existing-file notice, got: %s", output)
	}
}

func captureOutput(t *testing.T, fn func()) string {
	t.Helper()

	origOut := os.Stdout
	origErr := os.Stderr
	rOut, wOut, _ := os.Pipe()
	rErr, wErr, _ := os.Pipe()
	os.Stdout = wOut
	os.Stderr = wErr

	done := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, rOut)
		_, _ = io.Copy(&buf, rErr)
		done <- buf.String()
	}()

	fn()

	_ = wOut.Close()
	_ = wErr.Close()
	os.Stdout = origOut
	os.Stderr = origErr
	return <-done
}
