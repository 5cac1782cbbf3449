package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-oxalis/internal/logger"
)

func TestNewConnectSQLite_CreateFileErrorWrapsCause(t *testing.T) {
	dbFile := filepath.Join(t.TempDir(), "no-such-dir", "oxalis-stats.db")

	_, err := NewConnectSQLite(context.Background(), dbFile, logger.Nop())
	if err == nil {
		t.Fatal("NewConnectSQLite() error = nil, want error")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("NewConnectSQLite() error = %v, want the underlying cause wrapped", err)
	}
}
