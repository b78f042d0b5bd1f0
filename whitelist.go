package retype

import (
	"strings"
	"unicode"
)

// SessionSeeds are put in front of every session whitelist.
var SessionSeeds = []string{"[kw]", "[KW]"}

// ParseWhitelist splits raw on ',', ';' and newlines. Pieces are trimmed,
// empty pieces dropped. Duplicates are kept, see [NewWhitelist].
func ParseWhitelist(raw string) []string {
	if raw == "" {
		return nil
	}
	var res []string
	for _, p := range strings.FieldsFunc(raw, isWhitelistSep) {
		if p = strings.TrimSpace(p); p != "" {
			res = append(res, p)
		}
	}
	return res
}

func isWhitelistSep(r rune) bool { return r == ',' || r == ';' || r == '\n' }

// Whitelist is a set of tokens that do not count as errors. It also keeps
// the order in which entries were first added. The zero value is an empty
// whitelist. A Whitelist must not be modified after it is shared.
type Whitelist struct {
	list []string
	set  map[string]struct{}
}

func NewWhitelist(entries ...string) Whitelist {
	var wl Whitelist
	wl.Add(entries...)
	return wl
}

// SessionWhitelist parses raw and seeds the result with [SessionSeeds].
func SessionWhitelist(raw string) Whitelist {
	entries := append(append([]string{}, SessionSeeds...), ParseWhitelist(raw)...)
	return NewWhitelist(entries...)
}

// Add appends entries not yet in wl.
func (wl *Whitelist) Add(entries ...string) {
	if wl.set == nil {
		wl.set = make(map[string]struct{}, len(entries))
	}
	for _, e := range entries {
		if _, ok := wl.set[e]; ok {
			continue
		}
		wl.set[e] = struct{}{}
		wl.list = append(wl.list, e)
	}
}

func (wl Whitelist) Contains(t Token) bool {
	_, ok := wl.set[string(t)]
	return ok
}

func (wl Whitelist) Len() int { return len(wl.list) }

// Entries returns the entries in insertion order. The returned slice must
// not be modified.
func (wl Whitelist) Entries() []string { return wl.list }

// Suggest returns the entries that complete the bracket fragment at the
// end of before, i.e. the text left of an input cursor. E.g. "foo [k"
// suggests "[kw]". Suggestions are in insertion order.
func (wl Whitelist) Suggest(before string) []string {
	open := strings.LastIndexByte(before, '[')
	if open < 0 {
		return nil
	}
	frag := before[open+1:]
	if strings.IndexFunc(frag, func(r rune) bool {
		return r == ']' || unicode.IsSpace(r)
	}) >= 0 {
		return nil
	}
	prefix := "[" + frag
	var res []string
	for _, e := range wl.list {
		if strings.HasPrefix(e, prefix) {
			res = append(res, e)
		}
	}
	return res
}
