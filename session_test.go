package retype

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

const exercisesText = `# Greeting
Hello world.

The [kw] ran
away.


# Last
Stop now`

func TestReadExercises(t *testing.T) {
	exs, err := ReadExercises(strings.NewReader(exercisesText))
	if err != nil {
		t.Fatal(err)
	}
	want := []*Exercise{
		{Title: "Greeting", Sample: "Hello world."},
		{Sample: "The [kw] ran\naway."},
		{Title: "Last", Sample: "Stop now"},
	}
	if diff := cmp.Diff(want, exs, cmpopts.IgnoreUnexported(Exercise{})); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestReadExercises_longLine(t *testing.T) {
	long := strings.Repeat("word ", 20000) + "end"
	exs, err := ReadExercises(strings.NewReader("# Long\n" + long + "\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(exs) != 1 || exs[0].Sample != long {
		t.Errorf("got %d exercises", len(exs))
	}
}

func TestSession(t *testing.T) {
	exs, err := ReadExercises(strings.NewReader(exercisesText))
	if err != nil {
		t.Fatal(err)
	}
	s := NewSession(Compare{}, "[x]", exs...)
	if s.Left() != 3 || s.Current() != exs[0] {
		t.Fatalf("bad start: %d left, current %v", s.Left(), s.Current())
	}
	if !s.Whitelist().Contains("[kw]") || !s.Whitelist().Contains("[x]") {
		t.Error("session whitelist not seeded")
	}
	res := testCheck(t, s, "Hello  world.")
	if res.Extra != 1 {
		t.Errorf("unexpected result %+v", res)
	}
	if s.Current() != exs[1] {
		t.Fatal("session did not advance")
	}
	s.Skip()
	res = testCheck(t, s, "Stop now")
	if !res.OK() {
		t.Errorf("unexpected errors %v", res.Records)
	}
	if s.Current() != nil || s.Left() != 0 {
		t.Error("session not done")
	}
	if _, err := s.Check("x"); !errors.Is(err, ErrNoExercise) {
		t.Errorf("want ErrNoExercise, got %v", err)
	}
	s.Skip()
	want := Summary{Exercises: 3, Checked: 2, Skipped: 1, Errors: 1, Extra: 1}
	if got := s.Summary(); got != want {
		t.Errorf("summary %+v", got)
	}

	s.Restart()
	if s.Left() != 3 || s.Current() != exs[0] {
		t.Errorf("restart: %d left, current %v", s.Left(), s.Current())
	}
	if got := s.Summary(); got != (Summary{Exercises: 3}) {
		t.Errorf("summary after restart %+v", got)
	}
	if sugg := s.Suggest("a [x"); len(sugg) != 1 || sugg[0] != "[x]" {
		t.Errorf("suggestions %v", sugg)
	}
}

func TestSession_empty(t *testing.T) {
	s := NewSession(Compare{}, "")
	if s.Current() != nil || s.Left() != 0 {
		t.Error("empty session has exercises")
	}
	s.Skip()
	if _, err := s.Check(""); !errors.Is(err, ErrNoExercise) {
		t.Errorf("want ErrNoExercise, got %v", err)
	}
}

func TestSession_tooLarge(t *testing.T) {
	s := NewSession(Compare{MaxTokens: 2}, "", &Exercise{Sample: "a b"})
	if _, err := s.Check("a b"); !errors.Is(err, ErrTooLarge) {
		t.Fatalf("want ErrTooLarge, got %v", err)
	}
	if s.Left() != 1 {
		t.Error("failed check advanced the session")
	}
}

func testCheck(t *testing.T, s *Session, typed string) *Result {
	t.Helper()
	res, err := s.Check(typed)
	if err != nil {
		t.Fatal(err)
	}
	return res
}
