package interp_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/loxscript/loxscript/pkg/loxscript"
)

// TestFixtures runs every .lox script under testdata/scripts end-to-end and
// compares its stdout against its go-snaps snapshot in __snapshots__
// (recorded on the first run when absent), the same pattern the
// teacher's internal/interp/fixture_test.go uses with go-snaps over a table
// of script/expected pairs — scaled down from DWScript's hundreds of
// category directories to this language's single flat testdata/scripts
// directory, since there's no unit system or type-checking mode split to
// account for.
func TestFixtures(t *testing.T) {
	scripts, err := filepath.Glob("../testdata/scripts/*.lox")
	if err != nil {
		t.Fatalf("glob testdata/scripts: %v", err)
	}
	if len(scripts) == 0 {
		t.Fatal("no fixture scripts found under testdata/scripts")
	}

	for _, path := range scripts {
		path := path
		name := filepath.Base(path)
		t.Run(name, func(t *testing.T) {
			source, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("read %s: %v", path, err)
			}

			var out bytes.Buffer
			engine := loxscript.New(loxscript.WithOutput(&out))
			result, diags := engine.Run(string(source))
			if len(diags) > 0 {
				t.Fatalf("unexpected diagnostics running %s: %v", name, diags)
			}
			if !result.Success {
				t.Fatalf("%s did not report success", name)
			}

			snaps.MatchSnapshot(t, out.String())
		})
	}
}
