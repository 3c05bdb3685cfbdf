package config

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReportClose_ArchivesEntries(t *testing.T) {
	reportFile, err := os.CreateTemp("", "test-report-*.zip")
	if err != nil {
		t.Fatalf("failed to create temp report file: %v", err)
	}
	defer os.Remove(reportFile.Name())

	r := &Report{
		entries: make(map[string]entry),
		file:    reportFile,
	}

	// A stored on-disk file and raw payload data
	tmpFile := filepath.Join(t.TempDir(), "run.log")
	if err := os.WriteFile(tmpFile, []byte("log line"), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
	r.Store("logs/run.log", tmpFile)
	r.StoreData("api/files-abc.json", []byte(`{"name": "Design"}`))

	if err := r.Close(); err != nil {
		t.Fatalf("Report.Close() error: %v", err)
	}

	// Stored files are archived, never removed
	if _, err := os.Stat(tmpFile); err != nil {
		t.Errorf("stored file should not be removed, got error: %v", err)
	}

	arc, err := zip.OpenReader(reportFile.Name())
	if err != nil {
		t.Fatalf("report is not a valid archive: %v", err)
	}
	defer arc.Close()

	found := map[string]string{}
	for _, f := range arc.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("unable to open %q: %v", f.Name, err)
		}
		data, _ := io.ReadAll(rc)
		rc.Close()
		found[f.Name] = string(data)
	}

	if _, ok := found["MANIFEST"]; !ok {
		t.Error("archive has no MANIFEST")
	}
	if found["logs/run.log"] != "log line" {
		t.Errorf("stored file content = %q", found["logs/run.log"])
	}
	if !strings.Contains(found["api/files-abc.json"], "Design") {
		t.Errorf("stored data content = %q", found["api/files-abc.json"])
	}
	if !strings.Contains(found["MANIFEST"], "api/files-abc.json") {
		t.Errorf("MANIFEST does not list stored entries:\n%s", found["MANIFEST"])
	}
}

func TestReportStoreData_VersionsDuplicates(t *testing.T) {
	reportFile, err := os.CreateTemp("", "test-report-*.zip")
	if err != nil {
		t.Fatalf("failed to create temp report file: %v", err)
	}
	defer os.Remove(reportFile.Name())

	r := &Report{
		entries: make(map[string]entry),
		file:    reportFile,
	}

	r.StoreData("payload.json", []byte("first"))
	r.StoreData("payload.json", []byte("second"))

	if len(r.entries) != 2 {
		t.Errorf("duplicate names must be versioned, got %d entries", len(r.entries))
	}
	if err := r.Close(); err != nil {
		t.Fatalf("Report.Close() error: %v", err)
	}
}

func TestReportClose_NilReport(t *testing.T) {
	var r *Report
	if err := r.Close(); err != nil {
		t.Errorf("Close on nil report should not error, got: %v", err)
	}
}

func TestReportClose_NilFile(t *testing.T) {
	r := &Report{entries: make(map[string]entry)}
	if err := r.Close(); err != nil {
		t.Errorf("Close with nil file should not error, got: %v", err)
	}
}

func TestReportName(t *testing.T) {
	var r *Report
	if r.Name() != "" {
		t.Error("nil report must have no name")
	}

	conf := ReporterConfig{Destination: filepath.Join(t.TempDir(), "report.zip")}
	rpt, err := conf.Prepare()
	if err != nil {
		t.Fatalf("Prepare() error: %v", err)
	}
	defer rpt.Close()

	if !filepath.IsAbs(rpt.Name()) {
		t.Errorf("Name() = %q, want absolute path", rpt.Name())
	}
}

func TestReportStore_NilReceiver(t *testing.T) {
	var r *Report
	// must not panic
	r.Store("name", "/tmp/file")
	r.StoreData("name", []byte("data"))
}
