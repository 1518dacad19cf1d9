package zone

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"

	"github.com/haukened/rr-wire/internal/dns/common/log"
	"github.com/haukened/rr-wire/internal/dns/common/utils"
	"github.com/haukened/rr-wire/internal/dns/domain"
	"github.com/haukened/rr-wire/internal/dns/message"
	"github.com/haukened/rr-wire/internal/dns/rdata"
	"github.com/haukened/rr-wire/internal/dns/zonefile"
)

// LoadZoneDirectory walks dir, loading every supported zone file and
// returning records grouped by zone root. Master files (.zone, .db) go
// through ParseMaster; structured files (.yaml/.yml/.json/.toml) through the
// koanf loader. Any file that fails to parse aborts the load.
func LoadZoneDirectory(dir string, defaultTTL uint32) (map[string][]message.ResourceRecord, error) {
	zones := make(map[string][]message.ResourceRecord)

	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		root, records, err := loadZoneFile(path, defaultTTL)
		if err != nil {
			return fmt.Errorf("zone file %s: %w", path, err)
		}
		if root == "" {
			log.Debug(map[string]any{"path": path}, "skipping unsupported zone file")
			return nil
		}
		zones[root] = append(zones[root], records...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return zones, nil
}

// loadZoneFile dispatches on file extension. A "" root with nil error means
// the extension is not a zone format.
func loadZoneFile(path string, defaultTTL uint32) (string, []message.ResourceRecord, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".zone", ".db":
		return loadMasterFile(path, defaultTTL)
	case ".yaml", ".yml":
		return loadStructuredFile(path, yaml.Parser(), defaultTTL)
	case ".json":
		return loadStructuredFile(path, json.Parser(), defaultTTL)
	case ".toml":
		return loadStructuredFile(path, toml.Parser(), defaultTTL)
	default:
		return "", nil, nil
	}
}

// loadMasterFile parses an RFC 1035 master file whose origin is derived from
// the file name (example.com.zone -> example.com.), unless the file sets
// $ORIGIN itself before the first relative name.
func loadMasterFile(path string, defaultTTL uint32) (string, []message.ResourceRecord, error) {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	origin, err := domain.ParseName(utils.NormalizeDNSName(stem)+".", nil)
	if err != nil {
		return "", nil, fmt.Errorf("cannot derive origin from file name %q: %w", base, err)
	}
	f, err := os.Open(path)
	if err != nil {
		return "", nil, err
	}
	defer f.Close()

	records, err := ParseMaster(f, origin, defaultTTL)
	if err != nil {
		return "", nil, err
	}
	log.Debug(map[string]any{"path": path, "records": len(records)}, "loaded master zone file")
	return origin.Key(), records, nil
}

// loadStructuredFile parses a koanf-readable zone document of the shape
//
//	zone_root: example.com
//	www:
//	  A: 192.0.2.10
//	"@":
//	  MX: ["10 mail", "20 backup.example.net."]
//
// Record values use the same text forms as master-file RDATA.
func loadStructuredFile(path string, parser koanf.Parser, defaultTTL uint32) (string, []message.ResourceRecord, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), parser); err != nil {
		return "", nil, fmt.Errorf("failed to load: %w", err)
	}

	root := k.String("zone_root")
	if root == "" {
		return "", nil, fmt.Errorf("missing 'zone_root'")
	}
	origin, err := domain.ParseName(utils.NormalizeDNSName(root)+".", nil)
	if err != nil {
		return "", nil, fmt.Errorf("invalid zone_root %q: %w", root, err)
	}

	var records []message.ResourceRecord
	for name, raw := range k.Raw() {
		if name == "zone_root" {
			continue
		}
		rawMap, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		owner, err := domain.ParseName(name, &origin)
		if err != nil {
			return "", nil, fmt.Errorf("record name %q: %w", name, err)
		}
		for typeName, val := range rawMap {
			rrType := domain.RRTypeFromString(strings.ToUpper(typeName))
			if rrType == 0 {
				return "", nil, fmt.Errorf("record %q: unknown type %q", name, typeName)
			}
			for _, text := range stringValues(val) {
				rr, err := buildRecord(owner, rrType, text, origin, defaultTTL)
				if err != nil {
					return "", nil, fmt.Errorf("record %q %s: %w", name, typeName, err)
				}
				records = append(records, rr)
			}
		}
	}
	log.Debug(map[string]any{"path": path, "records": len(records)}, "loaded structured zone file")
	return origin.Key(), records, nil
}

// buildRecord runs a record's text value through the token stream and the
// typed rdata parser.
func buildRecord(owner domain.Name, rrType domain.RRType, text string, origin domain.Name, ttl uint32) (message.ResourceRecord, error) {
	tokens, err := zonefile.Tokenize(text)
	if err != nil {
		return message.ResourceRecord{}, err
	}
	data, err := rdata.Parse(rrType, tokens, &origin)
	if err != nil {
		return message.ResourceRecord{}, err
	}
	return message.ResourceRecord{
		Name:  owner,
		Type:  rrType,
		Class: domain.RRClassIN,
		TTL:   ttl,
		Data:  data,
	}, nil
}

// stringValues flattens a koanf-parsed value (string or list of strings)
// into a slice of non-empty strings, skipping anything else.
func stringValues(val any) []string {
	switch v := val.(type) {
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return nil
		}
		return []string{s}
	case []any:
		out := make([]string, 0, len(v))
		for _, elem := range v {
			s, ok := elem.(string)
			if !ok {
				continue
			}
			s = strings.TrimSpace(s)
			if s == "" {
				continue
			}
			out = append(out, s)
		}
		return out
	default:
		return nil
	}
}
