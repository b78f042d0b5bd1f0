package retype

import (
	"fmt"
	"slices"
)

// Alignment operations
const (
	// Sample and user token are equal.
	Match Op = iota
	// The sample token is absent from the user text at this position.
	Missing
	// The user token is not in the sample at this position.
	Extra
)

type Op int

func (op Op) String() string {
	switch op {
	case Match:
		return "match"
	case Missing:
		return "missing"
	case Extra:
		return "extra"
	}
	return fmt.Sprintf("Op(%d)", int(op))
}

// Step is one unit of an alignment. Sample is empty for Extra, User is empty
// for Missing.
type Step struct {
	Op     Op
	Sample Token
	User   Token
}

// Token returns the token the step is about, i.e. the user token of Extra
// steps and the sample token otherwise.
func (s Step) Token() Token {
	if s.Op == Extra {
		return s.User
	}
	return s.Sample
}

func (s Step) String() string {
	return fmt.Sprintf("%s(%q)", s.Op, s.Token())
}

// Diff aligns sample and user such that the number of Match steps is the
// length of their longest common token subsequence. Sample tokens of
// Match and Missing steps reconstruct sample, user tokens of Match and
// Extra steps reconstruct user.
//
// Among equally long alignments Diff picks one deterministically: tracing
// back from the end it takes an Extra step whenever that keeps the match
// count maximal.
func Diff(sample, user []Token) []Step {
	n, m := len(sample), len(user)
	if n == 0 && m == 0 {
		return nil
	}
	w := m + 1
	lcs := make([]int32, (n+1)*w)
	at := func(i, j int) int32 { return lcs[i*w+j] }
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			switch {
			case sample[i-1] == user[j-1]:
				lcs[i*w+j] = at(i-1, j-1) + 1
			case at(i-1, j) >= at(i, j-1):
				lcs[i*w+j] = at(i-1, j)
			default:
				lcs[i*w+j] = at(i, j-1)
			}
		}
	}
	steps := make([]Step, 0, n+m-int(at(n, m)))
	i, j := n, m
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 &&
			sample[i-1] == user[j-1] &&
			at(i, j) == at(i-1, j-1)+1:
			steps = append(steps, Step{Op: Match, Sample: sample[i-1], User: user[j-1]})
			i--
			j--
		case j > 0 && (i == 0 || at(i, j-1) >= at(i-1, j)):
			steps = append(steps, Step{Op: Extra, User: user[j-1]})
			j--
		default:
			steps = append(steps, Step{Op: Missing, Sample: sample[i-1]})
			i--
		}
	}
	slices.Reverse(steps)
	return steps
}

// SampleTokens returns the sample tokens of steps in order.
func SampleTokens(steps []Step) (res []Token) {
	for _, s := range steps {
		if s.Op != Extra {
			res = append(res, s.Sample)
		}
	}
	return res
}

// UserTokens returns the user tokens of steps in order.
func UserTokens(steps []Step) (res []Token) {
	for _, s := range steps {
		if s.Op != Missing {
			res = append(res, s.User)
		}
	}
	return res
}
