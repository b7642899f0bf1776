package backup

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeStore(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCreateBackup(t *testing.T) {
	dir := t.TempDir()
	store := writeStore(t, dir, "bloom.json", `{"selectedTheme":"calm-forest"}`)
	m := NewManager(store)

	path, err := m.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup: %v", err)
	}
	if filepath.Dir(path) != m.GetBackupDir() {
		t.Errorf("backup written to %q, want inside %q", path, m.GetBackupDir())
	}
	if !strings.HasSuffix(path, ".json") {
		t.Errorf("backup %q did not keep the storage extension", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading backup: %v", err)
	}
	if string(data) != `{"selectedTheme":"calm-forest"}` {
		t.Errorf("backup content = %q", data)
	}
}

func TestCreateBackupMissingStore(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "bloom.json"))
	if _, err := m.CreateBackup(); err == nil {
		t.Error("expected error when the storage file does not exist")
	}
}

func TestCreateBackupUniqueNames(t *testing.T) {
	dir := t.TempDir()
	store := writeStore(t, dir, "bloom.json", "{}")
	m := NewManager(store)

	first, err := m.CreateBackup()
	if err != nil {
		t.Fatalf("first CreateBackup: %v", err)
	}
	second, err := m.CreateBackup()
	if err != nil {
		t.Fatalf("second CreateBackup: %v", err)
	}
	if first == second {
		t.Errorf("two backups share the path %q", first)
	}
}

func TestListBackupsNewestFirst(t *testing.T) {
	dir := t.TempDir()
	store := writeStore(t, dir, "bloom.json", "{}")
	m := NewManager(store)

	if err := os.MkdirAll(m.GetBackupDir(), 0700); err != nil {
		t.Fatal(err)
	}
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		name := BackupFilePrefix + base.Add(time.Duration(i)*time.Minute).Format("20060102-1504") + ".json"
		writeStore(t, m.GetBackupDir(), name, "{}")
	}
	// Unrelated files are ignored
	writeStore(t, m.GetBackupDir(), "notes.txt", "not a backup")

	backups, err := m.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups: %v", err)
	}
	if len(backups) != 3 {
		t.Fatalf("got %d backups, want 3", len(backups))
	}
	for i := 1; i < len(backups); i++ {
		if backups[i].Timestamp.After(backups[i-1].Timestamp) {
			t.Error("backups not sorted newest first")
		}
	}
}

func TestListBackupsEmptyDir(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "bloom.json"))
	backups, err := m.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups: %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("got %d backups from a nonexistent dir, want 0", len(backups))
	}
}

func TestRotationKeepsMaxBackups(t *testing.T) {
	dir := t.TempDir()
	store := writeStore(t, dir, "bloom.json", "{}")
	m := NewManager(store)

	if err := os.MkdirAll(m.GetBackupDir(), 0700); err != nil {
		t.Fatal(err)
	}
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < MaxBackups+5; i++ {
		name := BackupFilePrefix + base.Add(time.Duration(i)*time.Minute).Format("20060102-1504") + ".json"
		writeStore(t, m.GetBackupDir(), name, "{}")
	}

	if _, err := m.CreateBackup(); err != nil {
		t.Fatalf("CreateBackup: %v", err)
	}

	backups, err := m.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups: %v", err)
	}
	if len(backups) > MaxBackups {
		t.Errorf("rotation left %d backups, want at most %d", len(backups), MaxBackups)
	}
	// The newest pre-existing backup survives rotation
	survivor := BackupFilePrefix + base.Add(time.Duration(MaxBackups+4)*time.Minute).Format("20060102-1504") + ".json"
	if _, err := os.Stat(filepath.Join(m.GetBackupDir(), survivor)); err != nil {
		t.Errorf("rotation removed a recent backup: %v", err)
	}
}

func TestRestoreBackup(t *testing.T) {
	dir := t.TempDir()
	store := writeStore(t, dir, "bloom.json", `{"v":"current"}`)
	m := NewManager(store)

	backupPath, err := m.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup: %v", err)
	}

	if err := os.WriteFile(store, []byte(`{"v":"changed"}`), 0600); err != nil {
		t.Fatal(err)
	}
	if err := m.RestoreBackup(backupPath); err != nil {
		t.Fatalf("RestoreBackup: %v", err)
	}

	data, err := os.ReadFile(store)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"v":"current"}` {
		t.Errorf("restored content = %q", data)
	}

	safety, err := os.ReadFile(store + ".pre-restore")
	if err != nil {
		t.Fatalf("safety copy missing: %v", err)
	}
	if string(safety) != `{"v":"changed"}` {
		t.Errorf("safety copy content = %q", safety)
	}
}

func TestRestoreBackupMissingFile(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "bloom.json"))
	if err := m.RestoreBackup(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected error restoring a nonexistent backup")
	}
}
