package timeline

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ulikunitz/xz"
	"github.com/xyproto/unzip"
)

// LoadTrades reads a timeline export and returns every executed trade in
// chronological order. The sort is stable: events sharing a timestamp keep
// their export order.
//
// Besides plain JSON the loader accepts xz-compressed exports
// (all_events.json.xz) and zip archives containing all_events.json.
func LoadTrades(path string) ([]Trade, error) {
	data, err := readEvents(path)
	if err != nil {
		return nil, err
	}

	var events []any
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	var trades []Trade
	for _, e := range events {
		ev := asMap(e)
		if ev == nil {
			continue
		}
		if t := ParseTradeEvent(ev); t != nil {
			trades = append(trades, *t)
		}
	}

	sort.SliceStable(trades, func(i, j int) bool {
		return trades[i].Timestamp.Before(trades[j].Timestamp)
	})
	return trades, nil
}

func readEvents(path string) ([]byte, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xz":
		return readXZ(path)
	case ".zip":
		return readZip(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, notFoundErr(path)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

func readXZ(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, notFoundErr(path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r, err := xz.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("decompress %s: %w", path, err)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("decompress %s: %w", path, err)
	}
	return data, nil
}

// readZip extracts the archive to a scratch directory and reads the first
// all_events.json found inside.
func readZip(path string) ([]byte, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, notFoundErr(path)
	}

	dir, err := os.MkdirTemp("", "tradegains-events-")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(dir)

	if err := unzip.Extract(path, dir); err != nil {
		return nil, fmt.Errorf("extract %s: %w", path, err)
	}

	var found string
	err = filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && d.Name() == "all_events.json" {
			found = p
			return fs.SkipAll
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", path, err)
	}
	if found == "" {
		return nil, fmt.Errorf("%s contains no all_events.json", path)
	}
	return os.ReadFile(found)
}

func notFoundErr(path string) error {
	return fmt.Errorf("%s not found. Run 'pytr dl_docs <outdir>' to export all_events.json", path)
}
