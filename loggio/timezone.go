package loggio

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"
)

// timestampLayout is the fixed rendering for record timestamps:
// date, wall-clock time, zone abbreviation, and explicit numeric offset
// (e.g. "2024-03-01 14:05:09 PST-0800"). The offset sign is present even
// at +0000. This layout is a compatibility contract with downstream log
// parsers.
const timestampLayout = "2006-01-02 15:04:05 MST-0700"

// resolveLocation validates a timezone identifier against the IANA database
// and returns its location. The empty identifier selects the host machine's
// local timezone. Unknown or malformed identifiers fail with
// *InvalidTimezoneError so that misconfiguration surfaces at logger
// construction, not at the first log call.
func resolveLocation(id string) (*time.Location, error) {
	if id == "" {
		return time.Local, nil
	}
	if id == "Local" {
		// time.LoadLocation accepts "Local" but it is not an IANA identifier.
		return nil, &InvalidTimezoneError{ID: id}
	}
	loc, err := time.LoadLocation(id)
	if err != nil {
		return nil, &InvalidTimezoneError{ID: id}
	}
	return loc, nil
}

// renderTimestamp formats an instant in the given location using the fixed
// record layout.
func renderTimestamp(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(timestampLayout)
}

// IsValidTimezone reports whether id names a timezone known to the system's
// IANA timezone database.
func IsValidTimezone(id string) bool {
	if id == "" || id == "Local" {
		return false
	}
	_, err := time.LoadLocation(id)
	return err == nil
}

var (
	zonesOnce sync.Once
	zoneNames []string
)

// zoneSources lists the directories the Go runtime itself consults for the
// timezone database on Unix systems. $ZONEINFO takes precedence when set.
func zoneSources() []string {
	sources := []string{
		"/usr/share/zoneinfo",
		"/usr/share/lib/zoneinfo",
		"/usr/lib/locale/TZ",
	}
	if env := os.Getenv("ZONEINFO"); env != "" {
		sources = append([]string{env}, sources...)
	}
	return sources
}

// AvailableTimezones returns the sorted, deduplicated set of IANA timezone
// identifiers available on this system. The posix/ and right/ variant trees
// are excluded, as are non-zone files shipped alongside the database.
func AvailableTimezones() []string {
	zonesOnce.Do(func() {
		seen := make(map[string]struct{})
		for _, dir := range zoneSources() {
			collectZones(dir, seen)
		}
		zoneNames = make([]string, 0, len(seen))
		for name := range seen {
			zoneNames = append(zoneNames, name)
		}
		sort.Strings(zoneNames)
	})
	out := make([]string, len(zoneNames))
	copy(out, zoneNames)
	return out
}

func collectZones(dir string, seen map[string]struct{}) {
	root := os.DirFS(dir)
	_ = fs.WalkDir(root, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if path == "." {
			return nil
		}
		base := filepath.Base(path)
		// Identifiers start with an upper-case region name; everything else
		// (posixrules, leapseconds, tzdata.zi, the posix/ and right/ trees)
		// is database plumbing.
		if base[0] < 'A' || base[0] > 'Z' {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if filepath.Ext(base) != "" {
			return nil
		}
		if _, ok := seen[path]; ok {
			return nil
		}
		// Stray upper-case files (SECURITY notices and the like) live next
		// to real zone data; only keep names the database actually loads.
		if _, err := time.LoadLocation(path); err == nil {
			seen[path] = struct{}{}
		}
		return nil
	})
}
