package probe

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/tbckr/resolvctl/internal/output"
)

// Result is the outcome of probing a single server (or the DoH reference).
type Result struct {
	Server  string        `json:"server"`
	RTT     time.Duration `json:"rtt"`
	Rcode   string        `json:"rcode,omitempty"`
	Answers []string      `json:"answers,omitempty"`
	Err     string        `json:"error,omitempty"`

	// MatchesReference is set only when a DoH reference was queried and
	// this server answered: true when the answer sets are equal.
	MatchesReference *bool `json:"matches_reference,omitempty"`
}

// Results aggregates the per-server outcomes of one probe run.
type Results struct {
	Domain    string   `json:"domain"`
	Servers   []Result `json:"servers"`
	Reference *Result  `json:"reference,omitempty"`
}

// IsEmpty reports whether the run produced no per-server results.
func (r *Results) IsEmpty() bool { return len(r.Servers) == 0 }

// SetReference attaches the DoH reference answer and marks, per server,
// whether its answer set matches.
func (r *Results) SetReference(ref *Result) {
	r.Reference = ref
	for i := range r.Servers {
		if r.Servers[i].Err != "" {
			continue
		}
		match := sameAnswerSet(r.Servers[i].Answers, ref.Answers)
		r.Servers[i].MatchesReference = &match
	}
}

// sameAnswerSet compares two answer lists ignoring order.
func sameAnswerSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	as := append([]string(nil), a...)
	bs := append([]string(nil), b...)
	sort.Strings(as)
	sort.Strings(bs)
	for i := range as {
		if as[i] != bs[i] {
			return false
		}
	}
	return true
}

// WriteTable renders one row per probed server.
func (r *Results) WriteTable(w io.Writer) error {
	withRef := r.Reference != nil

	table := output.NewWrappingTable(w, 24, 46)
	if withRef {
		table.Header("SERVER", "RTT", "RCODE", "ANSWERS", "REF MATCH")
	} else {
		table.Header("SERVER", "RTT", "RCODE", "ANSWERS")
	}

	for _, s := range r.Servers {
		row := []string{s.Server, formatRTT(s), s.Rcode, formatAnswers(s)}
		if withRef {
			row = append(row, formatMatch(s))
		}
		if err := table.Append(row); err != nil {
			return err
		}
	}
	if withRef {
		row := []string{r.Reference.Server, formatRTT(*r.Reference), r.Reference.Rcode, formatAnswers(*r.Reference), "reference"}
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}

// WritePlain renders one server per line for piping.
func (r *Results) WritePlain(w io.Writer) error {
	for _, s := range r.Servers {
		if s.Err != "" {
			if _, err := fmt.Fprintf(w, "%s\tERROR\t%s\n", s.Server, s.Err); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			s.Server, formatRTT(s), s.Rcode, strings.Join(s.Answers, ",")); err != nil {
			return err
		}
	}
	return nil
}

func formatRTT(s Result) string {
	if s.Err != "" {
		return "-"
	}
	return s.RTT.Round(time.Millisecond).String()
}

func formatAnswers(s Result) string {
	if s.Err != "" {
		return s.Err
	}
	if len(s.Answers) == 0 {
		return "-"
	}
	return strings.Join(s.Answers, ", ")
}

func formatMatch(s Result) string {
	switch {
	case s.MatchesReference == nil:
		return "-"
	case *s.MatchesReference:
		return "yes"
	default:
		return "NO"
	}
}
