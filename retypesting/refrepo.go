// Package retypesting checks text produced in Go tests against recorded
// sample texts with the token comparison of retype. Unlike a plain string
// comparison a failing test reports the missing and extra tokens.
//
// Example reads the sample text from testdata/TestGreeting.sample:
//
//	func TestGreeting(t *testing.T) {
//		Error(t, "", strings.NewReader(greet("world")))
//	}
package retypesting

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/fractalqb/retype"
)

// When this environment variable is set to a regexp and the name of the current
// test matches, calls to Error or Fatal will record the subj as new sample
// instead of comparing it. E.g.
//
//	RETYPESTING_RECORD=TestRecording go test .
const RecordEnv = "RETYPESTING_RECORD"

// GoTestdataDir is the name of Go's default directory for testdata (see go help
// test).
const GoTestdataDir = "testdata"

func Error(t *testing.T, hint string, subj io.Reader) error {
	return defaultConfig.Error(t, hint, subj)
}

func Fatal(t *testing.T, hint string, subj io.Reader) {
	defaultConfig.Fatal(t, hint, subj)
}

func Record(t *testing.T, hint string, subj io.Reader) {
	defaultConfig.Record(t, hint, subj)
}

type RefRepo struct {
	Dir    string
	Suffix string
}

const (
	StdSuffix = ".sample"
	NoSuffix  = "\x00"
)

func (rr RefRepo) Filename(t *testing.T, hint string) string {
	suffix := rr.Suffix
	switch suffix {
	case "":
		suffix = StdSuffix
	case NoSuffix:
		suffix = ""
	}
	if hint == "" {
		return filepath.Join(rr.Dir, t.Name()+suffix)
	}
	if suffix == "" || strings.HasSuffix(hint, suffix) {
		return filepath.Join(rr.Dir, t.Name(), hint)
	}
	return filepath.Join(rr.Dir, t.Name(), hint+suffix)
}

type Config struct {
	RefFileName func(t *testing.T, hint string) string
	// Raw whitelist, see retype.ParseWhitelist
	Whitelist string
	// Report at most ErrorLimit errors, 0 means all.
	ErrorLimit      int
	RecordOverwrite bool
}

var defaultConfig = Config{
	RefFileName:     RefRepo{Dir: GoTestdataDir}.Filename,
	ErrorLimit:      10,
	RecordOverwrite: false,
}

// ErrorCount is returned when a subject does not reproduce its sample.
type ErrorCount int

func (ec ErrorCount) Error() string {
	return fmt.Sprintf("%d typing errors", ec)
}

func (cfg Config) Error(t *testing.T, hint string, subj io.Reader) error {
	t.Helper()
	if recordTest(t) {
		cfg.Record(t, hint, subj)
		return nil
	}
	err := cfg.compare(t, hint, subj)
	if err != nil {
		t.Error(err)
	}
	return err
}

func (cfg Config) Fatal(t *testing.T, hint string, subj io.Reader) {
	t.Helper()
	if recordTest(t) {
		cfg.Record(t, hint, subj)
	} else if err := cfg.compare(t, hint, subj); err != nil {
		t.Fatal(err)
	}
}

func recordTest(t *testing.T) bool {
	rec := os.Getenv(RecordEnv)
	if rec == "" {
		return false
	}
	r, err := regexp.Compile(rec)
	if err != nil {
		t.Logf("retypesting: invalid regexp '%s' in %s, not recording: %s", rec, RecordEnv, err)
		return false
	}
	return r.MatchString(t.Name())
}

func (cfg *Config) compare(t *testing.T, hint string, subj io.Reader) error {
	t.Helper()
	reffile := cfg.RefFileName(t, hint)
	if _, err := os.Stat(reffile); os.IsNotExist(err) {
		t.Logf("to record a sample file run '%[1]s=%[2]s go test -run %[2]s'",
			RecordEnv,
			t.Name(),
		)
		return fmt.Errorf("sample file %s does not exists", reffile)
	}
	ref, err := os.Open(reffile)
	if err != nil {
		return err
	}
	defer ref.Close()
	cmpr := retype.Compare{
		Whitelist: retype.NewWhitelist(retype.ParseWhitelist(cfg.Whitelist)...),
		MaxTokens: -1,
		OnError:   ErrorReporter(t, hint, cfg.ErrorLimit),
	}
	res, err := cmpr.Readers(ref, subj)
	if err != nil {
		return err
	}
	if !res.OK() {
		return ErrorCount(res.Errors)
	}
	return nil
}

func (cfg Config) Record(t *testing.T, hint string, subj io.Reader) {
	t.Helper()
	reffile := cfg.RefFileName(t, hint)
	if _, err := os.Stat(reffile); !os.IsNotExist(err) && !cfg.RecordOverwrite {
		t.Fatalf("Record: sample file '%s' already exists", reffile)
	}
	dir := filepath.Dir(reffile)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err = os.MkdirAll(dir, 0777); err != nil {
			t.Fatal(err)
		}
	}
	wr, err := os.Create(reffile)
	if err != nil {
		t.Fatal(err)
	}
	defer wr.Close()
	if _, err = io.Copy(wr, subj); err != nil {
		t.Error(err)
	}
	t.Errorf("retypesting recorder wrote: %s", reffile)
}

// ErrorReporter logs each typing error with t.Errorf. After limit errors
// the remaining ones are dropped, limit 0 reports all errors.
func ErrorReporter(t *testing.T, hint string, limit int) retype.ErrorFunc {
	if hint == "" {
		hint = "subject"
	}
	count := 0
	return func(rec retype.ErrorRecord) {
		t.Helper()
		count++
		switch {
		case limit > 0 && count > limit:
			return
		case limit > 0 && count == limit:
			t.Errorf("%s:%s %s (further errors dropped)", hint, strconv.Itoa(rec.Pos), rec.Message())
		default:
			t.Errorf("%s:%s %s", hint, strconv.Itoa(rec.Pos), rec.Message())
		}
	}
}
