// Package document loads generic zone documents from files. It
// supports YAML, JSON, and TOML files, each describing one zone: a
// name, an optional content hash, and the ordered list of untyped
// attribute records handed to the conversion pipeline.
package document

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"go.uber.org/multierr"

	"github.com/zonekit/zoned/internal/zones/common/utils"
	"github.com/zonekit/zoned/internal/zones/domain"
)

// LoadDirectory walks the given directory and loads every supported
// zone file (YAML, JSON, TOML). Files that fail to parse do not stop
// the walk: their errors are aggregated and returned alongside the
// documents that did load, so one broken file never takes down the
// rest of the directory.
func LoadDirectory(dir string, defaultTTL time.Duration) ([]domain.ZoneDocument, error) {
	var docs []domain.ZoneDocument
	var errs error

	walkErr := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		doc, ok, err := LoadFile(path, defaultTTL)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("zone file %s: %w", path, err))
			return nil
		}
		if ok {
			docs = append(docs, doc)
		}
		return nil
	})
	if walkErr != nil {
		errs = multierr.Append(errs, walkErr)
	}
	return docs, errs
}

// LoadFile loads one zone document from path. The second return value
// is false when the file extension is not a supported format, which is
// not an error (directories may carry readmes and the like).
func LoadFile(path string, defaultTTL time.Duration) (domain.ZoneDocument, bool, error) {
	parser, ok := parserFor(path)
	if !ok {
		return domain.ZoneDocument{}, false, nil
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), parser); err != nil {
		return domain.ZoneDocument{}, false, fmt.Errorf("failed to parse: %w", err)
	}

	name := k.String("name")
	if name == "" {
		return domain.ZoneDocument{}, false, fmt.Errorf("missing 'name'")
	}

	doc := domain.ZoneDocument{
		Name: utils.CanonicalName(name),
		Hash: k.String("hash"), // defaults to empty when absent
	}

	rawRecords, _ := k.Raw()["records"].([]any)
	for _, elem := range rawRecords {
		m, ok := elem.(map[string]any)
		if !ok {
			continue // skip non-map entries silently
		}
		doc.Records = append(doc.Records, toRawRecord(m, defaultTTL))
	}
	return doc, true, nil
}

// parserFor picks a koanf parser by file extension.
func parserFor(path string) (koanf.Parser, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser(), true
	case ".json":
		return json.Parser(), true
	case ".toml":
		return toml.Parser(), true
	default:
		return nil, false
	}
}

// toRawRecord converts one parsed record entry into a RawRecord,
// preserving the distinctions the pipeline cares about: a missing or
// null data key stays nil (the always-invalid state), and a missing
// context key stays nil while a present-but-empty list does not.
func toRawRecord(m map[string]any, defaultTTL time.Duration) domain.RawRecord {
	rec := domain.RawRecord{
		Name: stringAt(m, "name"),
		Type: stringAt(m, "type"),
		TTL:  uint32(defaultTTL.Seconds()),
	}

	switch ttl := m["ttl"].(type) {
	case int:
		if ttl >= 0 {
			rec.TTL = uint32(ttl)
		}
	case int64:
		if ttl >= 0 {
			rec.TTL = uint32(ttl)
		}
	case float64:
		if ttl >= 0 {
			rec.TTL = uint32(ttl)
		}
	}

	if data, ok := m["data"].(map[string]any); ok {
		rec.Data = data
	}

	if rawCtx, ok := m["context"]; ok {
		tags := []string{}
		if list, ok := rawCtx.([]any); ok {
			for _, elem := range list {
				if tag, ok := elem.(string); ok && tag != "" {
					tags = append(tags, tag)
				}
			}
		}
		rec.Context = tags
	}
	return rec
}

func stringAt(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return strings.TrimSpace(s)
}
