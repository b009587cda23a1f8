package charsheet

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ukaji3/charsheet-go/pkg/charsheet/models"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Entry is a loaded character record with the file it came from.
type Entry struct {
	Path   string
	Record *models.Character
}

// DiscoverInputs lists the .json files directly inside dir in name order.
func DiscoverInputs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, dir)
		}
		return nil, err
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	return paths, nil
}

// LoadCharacter parses one character file. A UTF-8 or UTF-16 byte order
// mark is accepted.
func LoadCharacter(path string) (*models.Character, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, NewRecordError(path, fmt.Errorf("%w: %s", ErrFileNotFound, path))
		}
		return nil, NewRecordError(path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(transform.NewReader(f, unicode.BOMOverride(unicode.UTF8.NewDecoder())))
	if err != nil {
		return nil, NewRecordError(path, err)
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		return nil, NewRecordError(path, fmt.Errorf("%w: top-level value is not an object", ErrInvalidJSON))
	}

	var ch models.Character
	if err := json.Unmarshal(data, &ch); err != nil {
		return nil, NewRecordError(path, fmt.Errorf("%w: %v", ErrInvalidJSON, err))
	}
	return &ch, nil
}

// LoadCharacters parses every file in paths, failing on the first bad file.
func LoadCharacters(paths []string) ([]Entry, error) {
	entries := make([]Entry, 0, len(paths))
	for _, p := range paths {
		ch, err := LoadCharacter(p)
		if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{Path: p, Record: ch})
	}
	return entries, nil
}

// SortByAgi orders entries by agi, highest first. Equal agi keeps input order.
func SortByAgi(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Record.Agi > entries[j].Record.Agi
	})
}
