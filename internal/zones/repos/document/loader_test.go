package document

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const testYAML = `
name: example.com
hash: abc123
records:
  - name: example.com
    type: A
    ttl: 3600
    data:
      ip: 93.184.216.34
  - name: example.com
    type: TXT
    data:
      txt: hello
    context: []
  - name: broken.example.com
    type: A
`

const testJSON = `{
  "name": "example.org",
  "records": [
    {"name": "example.org", "type": "MX", "ttl": 300,
     "data": {"preference": 10, "exchange": "mail.example.org"},
     "context": ["prod", "staging"]}
  ]
}
`

const testTOML = `name = "example.net"

[[records]]
name = "example.net"
type = "NS"
ttl = 86400

[records.data]
dname = "ns1.example.net"
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestLoadFile_YAML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "example.com.yaml", testYAML)

	doc, ok, err := LoadFile(path, 60*time.Second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatalf("expected file to be recognized")
	}

	if doc.Name != "example.com" {
		t.Errorf("expected name example.com, got %q", doc.Name)
	}
	if doc.Hash != "abc123" {
		t.Errorf("expected hash abc123, got %q", doc.Hash)
	}
	if len(doc.Records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(doc.Records))
	}

	a := doc.Records[0]
	if a.Type != "A" || a.TTL != 3600 || a.Data["ip"] != "93.184.216.34" {
		t.Errorf("unexpected A record: %+v", a)
	}
	if a.Context != nil {
		t.Errorf("absent context must stay nil, got %v", a.Context)
	}

	txt := doc.Records[1]
	if txt.TTL != 60 {
		t.Errorf("record without ttl should get the default, got %d", txt.TTL)
	}
	if txt.Context == nil || len(txt.Context) != 0 {
		t.Errorf("present-but-empty context must be non-nil and empty, got %#v", txt.Context)
	}

	broken := doc.Records[2]
	if broken.Data != nil {
		t.Errorf("record without data must keep nil Data, got %v", broken.Data)
	}
}

func TestLoadFile_JSONContextTags(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "example.org.json", testJSON)

	doc, ok, err := LoadFile(path, 60*time.Second)
	if err != nil || !ok {
		t.Fatalf("unexpected result: ok=%v err=%v", ok, err)
	}
	if doc.Hash != "" {
		t.Errorf("absent hash must default to empty, got %q", doc.Hash)
	}
	rec := doc.Records[0]
	if len(rec.Context) != 2 || rec.Context[0] != "prod" || rec.Context[1] != "staging" {
		t.Errorf("unexpected context %v", rec.Context)
	}
	if rec.TTL != 300 {
		t.Errorf("expected ttl 300, got %d", rec.TTL)
	}
}

func TestLoadFile_TOML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "example.net.toml", testTOML)

	doc, ok, err := LoadFile(path, 60*time.Second)
	if err != nil || !ok {
		t.Fatalf("unexpected result: ok=%v err=%v", ok, err)
	}
	if len(doc.Records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(doc.Records))
	}
	if doc.Records[0].Data["dname"] != "ns1.example.net" {
		t.Errorf("unexpected record data: %v", doc.Records[0].Data)
	}
}

func TestLoadFile_MissingName(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "anon.yaml", "records: []\n")

	_, _, err := LoadFile(path, 60*time.Second)
	if err == nil {
		t.Fatalf("expected error for missing zone name")
	}
}

func TestLoadFile_UnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "README.md", "# not a zone\n")

	_, ok, err := LoadFile(path, 60*time.Second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Errorf("unsupported extensions must be skipped")
	}
}

func TestLoadDirectory_AggregatesErrors(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "good.yaml", testYAML)
	writeFile(t, dir, "bad.yaml", "name: broken.example\nrecords: {not: a list\n")
	writeFile(t, dir, "other.json", testJSON)

	docs, err := LoadDirectory(dir, 60*time.Second)
	if err == nil {
		t.Errorf("expected aggregated error for the broken file")
	}
	if len(docs) != 2 {
		t.Errorf("good files must still load, got %d documents", len(docs))
	}
}

func TestLoadDirectory_Empty(t *testing.T) {
	docs, err := LoadDirectory(t.TempDir(), 60*time.Second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(docs) != 0 {
		t.Errorf("expected no documents, got %d", len(docs))
	}
}
