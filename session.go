package retype

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"git.fractalqb.de/fractalqb/icontainer/islist"
)

// ErrNoExercise is returned when checking a session that has no current
// exercise.
var ErrNoExercise = errors.New("no exercise left")

// Exercise is a sample text to be typed.
type Exercise struct {
	Title  string
	Sample string

	lsNext *Exercise
}

// ListNext to implement intrusive singly linked list
func (e *Exercise) ListNext() islist.Node {
	if e.lsNext == nil {
		return nil
	}
	return e.lsNext
}

// SetListNext to implement intrusive singly linked list
func (e *Exercise) SetListNext(n islist.Node) {
	if n == nil {
		e.lsNext = nil
	} else {
		e.lsNext = n.(*Exercise)
	}
}

// MaxLineLength is the longest line accepted when reading exercises.
const MaxLineLength = 1 << 20

// ReadExercises reads exercises separated by blank lines. A line starting
// with '#' sets the title of the following exercise. Lines of one exercise
// are joined with "\n".
func ReadExercises(r io.Reader) (res []*Exercise, err error) {
	var (
		title string
		lines []string
	)
	flush := func() {
		if len(lines) > 0 {
			res = append(res, &Exercise{
				Title:  title,
				Sample: strings.Join(lines, "\n"),
			})
			title, lines = "", nil
		}
	}
	scn := bufio.NewScanner(r)
	scn.Buffer(nil, MaxLineLength)
	for scn.Scan() {
		line := scn.Text()
		switch {
		case strings.TrimSpace(line) == "":
			flush()
		case line[0] == '#':
			flush()
			title = strings.TrimSpace(line[1:])
		default:
			lines = append(lines, line)
		}
	}
	if err = scn.Err(); err != nil {
		return nil, err
	}
	flush()
	return res, nil
}

// Summary accumulates the results of a session.
type Summary struct {
	Exercises int
	Checked   int
	Skipped   int
	Errors    int
	Missing   int
	Extra     int
}

// Session is a practice run over a queue of exercises with a fixed
// whitelist. A Session must not be used concurrently.
type Session struct {
	cmpr  Compare
	all   []*Exercise
	queue *islist.List
	sum   Summary
}

// NewSession creates a session whose whitelist is parsed from whitelist and
// seeded with [SessionSeeds]. cmpr configures the comparison, its
// Whitelist is replaced.
func NewSession(cmpr Compare, whitelist string, exs ...*Exercise) *Session {
	cmpr.Whitelist = SessionWhitelist(whitelist)
	s := &Session{cmpr: cmpr, all: exs}
	s.Restart()
	return s
}

func (s *Session) Whitelist() Whitelist { return s.cmpr.Whitelist }

// Suggest returns whitelist entries completing the bracket fragment
// before an input cursor.
func (s *Session) Suggest(before string) []string {
	return s.cmpr.Whitelist.Suggest(before)
}

// Current returns the exercise to be typed next or nil if there is none.
func (s *Session) Current() *Exercise {
	if s.queue == nil || s.queue.Len() == 0 {
		return nil
	}
	return s.queue.Front().(*Exercise)
}

// Left returns the number of exercises not yet checked or skipped,
// including the current one.
func (s *Session) Left() int {
	if s.queue == nil {
		return 0
	}
	return s.queue.Len()
}

// Check compares typed with the current exercise and advances to the next
// one. Check does not advance if the comparison fails.
func (s *Session) Check(typed string) (*Result, error) {
	ex := s.Current()
	if ex == nil {
		return nil, ErrNoExercise
	}
	res, err := s.cmpr.Strings(ex.Sample, typed)
	if err != nil {
		return nil, err
	}
	s.queue.Drop(1)
	s.sum.Checked++
	s.sum.Errors += res.Errors
	s.sum.Missing += res.Missing
	s.sum.Extra += res.Extra
	return res, nil
}

// Skip advances to the next exercise.
func (s *Session) Skip() {
	if s.Current() != nil {
		s.queue.Drop(1)
		s.sum.Skipped++
	}
}

// Restart queues all exercises again and clears the summary.
func (s *Session) Restart() {
	s.sum = Summary{Exercises: len(s.all)}
	s.queue = nil
	for _, ex := range s.all {
		ex.lsNext = nil
		if s.queue == nil {
			s.queue = islist.New(ex)
		} else {
			s.queue.PushBack(ex)
		}
	}
}

func (s *Session) Summary() Summary { return s.sum }
