package retype

import (
	"fmt"
	"unicode/utf8"

	"github.com/antzucaro/matchr"
)

// Typo pairs a missing sample word with an extra user word that is probably
// a misspelling of it.
type Typo struct {
	// Position of the missing sample word
	Pos      int
	Expected Token
	Got      Token
	// Damerau-Levenshtein distance of Expected and Got
	Distance int
	// Jaro-Winkler similarity of Expected and Got
	Similarity float64
}

func (t Typo) String() string {
	return fmt.Sprintf("position %d: typed \"%s\" for \"%s\"", t.Pos, t.Got, t.Expected)
}

// Typos pairs the missing and extra words of res that are not separated by
// matching tokens. A pair is accepted if the edit distance is at most
// maxDist and less than the length of the expected word. Each missing word
// takes the closest unpaired extra word. If maxDist <= 0 Typos returns nil.
func Typos(res *Result, maxDist int) (typos []Typo) {
	if maxDist <= 0 {
		return nil
	}
	for start := 0; start < len(res.Records); {
		end := start + 1
		for end < len(res.Records) && res.Records[end].gap == res.Records[start].gap {
			end++
		}
		typos = gapTypos(typos, res.Records[start:end], maxDist)
		start = end
	}
	return typos
}

func gapTypos(typos []Typo, gap []ErrorRecord, maxDist int) []Typo {
	used := make([]bool, len(gap))
	for _, miss := range gap {
		if miss.Op != Missing || miss.Token.Kind() != Word {
			continue
		}
		best := Typo{Distance: -1}
		bestIdx := -1
		for i, xtr := range gap {
			if used[i] || xtr.Op != Extra || xtr.Token.Kind() != Word {
				continue
			}
			e, g := string(miss.Token), string(xtr.Token)
			d := matchr.DamerauLevenshtein(e, g)
			if d > maxDist || d >= utf8.RuneCountInString(e) {
				continue
			}
			sim := matchr.JaroWinkler(e, g, false)
			if bestIdx < 0 || d < best.Distance || (d == best.Distance && sim > best.Similarity) {
				best = Typo{
					Pos:        miss.Pos,
					Expected:   miss.Token,
					Got:        xtr.Token,
					Distance:   d,
					Similarity: sim,
				}
				bestIdx = i
			}
		}
		if bestIdx >= 0 {
			used[bestIdx] = true
			typos = append(typos, best)
		}
	}
	return typos
}
