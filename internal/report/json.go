package report

import (
	"encoding/json"
	"io"

	"github.com/fractalqb/retype"
)

// JSON writes one JSON object per result.
type JSON struct {
	Indent string
}

type jsonRecord struct {
	Kind     string `json:"kind"`
	Position int    `json:"position"`
	Token    string `json:"token"`
	Message  string `json:"message"`
}

type jsonRendered struct {
	Token string `json:"token"`
	Class string `json:"class"`
}

type jsonTypo struct {
	Position   int     `json:"position"`
	Expected   string  `json:"expected"`
	Got        string  `json:"got"`
	Distance   int     `json:"distance"`
	Similarity float64 `json:"similarity"`
}

type jsonResult struct {
	Name         string         `json:"name,omitempty"`
	SampleTokens int            `json:"sample_tokens"`
	UserTokens   int            `json:"user_tokens"`
	Errors       int            `json:"errors"`
	Missing      int            `json:"missing"`
	Extra        int            `json:"extra"`
	Records      []jsonRecord   `json:"records"`
	Rendered     []jsonRendered `json:"rendered"`
	Typos        []jsonTypo     `json:"typos,omitempty"`
}

func (j JSON) Write(w io.Writer, name string, res *retype.Result) error {
	out := jsonResult{
		Name:         name,
		SampleTokens: res.SampleTokens,
		UserTokens:   res.UserTokens,
		Errors:       res.Errors,
		Missing:      res.Missing,
		Extra:        res.Extra,
		Records:      make([]jsonRecord, len(res.Records)),
		Rendered:     make([]jsonRendered, len(res.Rendered)),
	}
	for i, rec := range res.Records {
		out.Records[i] = jsonRecord{
			Kind:     rec.Op.String(),
			Position: rec.Pos,
			Token:    string(rec.Token),
			Message:  rec.Message(),
		}
	}
	for i, r := range res.Rendered {
		out.Rendered[i] = jsonRendered{Token: string(r.Token), Class: r.Class.String()}
	}
	for _, ty := range res.Typos {
		out.Typos = append(out.Typos, jsonTypo{
			Position:   ty.Pos,
			Expected:   string(ty.Expected),
			Got:        string(ty.Got),
			Distance:   ty.Distance,
			Similarity: ty.Similarity,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", j.Indent)
	return enc.Encode(out)
}
