package solver

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/gifnksm/slither-link-solver/internal/core"
)

// ParseTheoremError is the taxonomy of ways a theorem definition's text can
// fail to parse, mirroring srither-solver's ParseTheoremError.
type ParseTheoremError struct {
	Kind string // NoSeparator, TooSmallRows, TooSmallColumns, UnpairedLetter, SizeMismatch, MatcherDisappear, Lattice
	Msg  string
	Err  error
}

func (e *ParseTheoremError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse theorem: %s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("parse theorem: %s: %s", e.Kind, e.Msg)
}

func (e *ParseTheoremError) Unwrap() error { return e.Err }

func trimBlank(lines []string) []string {
	start, end := 0, len(lines)
	for start < end && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return lines[start:end]
}

// parseLines parses one lattice-drawing block (either a theorem's matcher,
// result, or closed-hint column) into its hint and edge patterns. Digits
// 0-4 in a cell become a HintPattern there. Letters pair up by lowercased
// identity: when both cases occur, a letter's first lowercase and first
// uppercase occurrence become a Line edge (they are on different sides);
// every later occurrence of the same case becomes a Cross edge back to that
// case's first occurrence (they are on the same side as it). A letter that
// occurs only once in the block is an error.
func parseLines(lines []string) ([]HintPattern, []EdgePattern[core.Point], core.Size, error) {
	lp, err := core.NewLatticeParser(lines)
	if err != nil {
		return nil, nil, core.Size{}, &ParseTheoremError{Kind: "Lattice", Err: err}
	}
	rows, cols := lp.NumRows(), lp.NumCols()
	if rows < 1 {
		return nil, nil, core.Size{}, &ParseTheoremError{Kind: "TooSmallRows", Msg: "theorem must have at least one row"}
	}
	if cols < 1 {
		return nil, nil, core.Size{}, &ParseTheoremError{Kind: "TooSmallColumns", Msg: "theorem must have at least one column"}
	}

	var hints []HintPattern
	var edges []EdgePattern[core.Point]

	// An H-edge drawn at lattice row y, column x separates the cell above
	// it, (x, y-1), from the cell below it, (x, y) — not the two lattice
	// points it spans. Likewise a V-edge at column x, row y separates cell
	// (x-1, y) from cell (x, y). EdgePattern's endpoints are always cell
	// coordinates (negative/out-of-range ones become the exterior once
	// instantiated via ToCellId), matching the convention FromPuzzle uses
	// to seed a SideMap from a parsed Puzzle's fixed edges.
	for y := 0; y <= rows; y++ {
		for x := 0; x < cols; x++ {
			top, bottom := core.Point{X: x, Y: y - 1}, core.Point{X: x, Y: y}
			switch lp.HEdge(y, x) {
			case 'x':
				edges = append(edges, Cross(top, bottom))
			case '-':
				edges = append(edges, LineEdge(top, bottom))
			}
		}
	}
	for y := 0; y < rows; y++ {
		for x := 0; x <= cols; x++ {
			left, right := core.Point{X: x - 1, Y: y}, core.Point{X: x, Y: y}
			switch lp.VEdge(y, x) {
			case 'x':
				edges = append(edges, Cross(left, right))
			case '|':
				edges = append(edges, LineEdge(left, right))
			}
		}
	}

	type occurrences struct {
		lower []core.Point
		upper []core.Point
	}
	pairs := map[rune]*occurrences{}
	var order []rune

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			p := core.Point{X: x, Y: y}
			for _, r := range lp.CellText(y, x) {
				switch {
				case r >= '0' && r <= '4':
					hints = append(hints, HintPattern{Hint: core.Hint(r - '0'), Point: p})
				case unicode.IsLetter(r):
					key := unicode.ToLower(r)
					o, ok := pairs[key]
					if !ok {
						o = &occurrences{}
						pairs[key] = o
						order = append(order, key)
					}
					if unicode.IsUpper(r) {
						o.upper = append(o.upper, p)
					} else {
						o.lower = append(o.lower, p)
					}
				}
			}
		}
	}

	for _, key := range order {
		o := pairs[key]
		if len(o.lower)+len(o.upper) < 2 {
			return nil, nil, core.Size{}, &ParseTheoremError{Kind: "UnpairedLetter", Msg: fmt.Sprintf("letter %q occurs only once", key)}
		}
		if len(o.lower) > 0 && len(o.upper) > 0 {
			edges = append(edges, LineEdge(o.lower[0], o.upper[0]))
		}
		for i := 1; i < len(o.lower); i++ {
			edges = append(edges, Cross(o.lower[i], o.lower[0]))
		}
		for i := 1; i < len(o.upper); i++ {
			edges = append(edges, Cross(o.upper[i], o.upper[0]))
		}
	}

	hints = sortDedupHints(hints)
	edges = sortDedupEdges(edges)
	return hints, edges, core.Size{Rows: rows, Cols: cols}, nil
}

func hintListEqual(a, b []HintPattern) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func removeEdge(es []EdgePattern[core.Point], target EdgePattern[core.Point]) ([]EdgePattern[core.Point], bool) {
	for i, e := range es {
		if e == target {
			return append(append([]EdgePattern[core.Point]{}, es[:i]...), es[i+1:]...), true
		}
	}
	return es, false
}

// ParseTheorem parses one `!`-separated lattice-drawing theorem
// definition: a matcher block, a result block, and an optional
// closed-hint block, each drawn side by side on the same lines.
//
// Grounded on srither-solver/src/model/theorem/parse.rs.
func ParseTheorem(text string) (*Theorem, error) {
	rawLines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	lines := trimBlank(rawLines)

	var matcherLines, resultLines, closedLines []string
	hasClosed := false
	for _, l := range lines {
		parts := strings.Split(l, "!")
		switch len(parts) {
		case 2:
			matcherLines = append(matcherLines, parts[0])
			resultLines = append(resultLines, parts[1])
			closedLines = append(closedLines, "")
		case 3:
			matcherLines = append(matcherLines, parts[0])
			resultLines = append(resultLines, parts[1])
			closedLines = append(closedLines, parts[2])
			hasClosed = true
		default:
			return nil, &ParseTheoremError{Kind: "NoSeparator", Msg: "each line must contain exactly one or two '!' separators"}
		}
	}

	mHints, mEdges, mSize, err := parseLines(matcherLines)
	if err != nil {
		return nil, err
	}
	rHints, rEdges, rSize, err := parseLines(resultLines)
	if err != nil {
		return nil, err
	}
	if mSize != rSize {
		return nil, &ParseTheoremError{Kind: "SizeMismatch", Msg: "matcher and result have different sizes"}
	}
	if !hintListEqual(mHints, rHints) {
		return nil, &ParseTheoremError{Kind: "MatcherDisappear", Msg: "matcher hint patterns must reappear unchanged in the result"}
	}

	remaining := append([]EdgePattern[core.Point]{}, rEdges...)
	for _, me := range mEdges {
		var ok bool
		remaining, ok = removeEdge(remaining, me)
		if !ok {
			return nil, &ParseTheoremError{Kind: "MatcherDisappear", Msg: "every matcher edge must reappear in the result with the same polarity"}
		}
	}

	var closed *ClosedHint
	if hasClosed {
		cHints, _, cSize, err := parseLines(closedLines)
		if err != nil {
			return nil, err
		}
		if cSize != mSize {
			return nil, &ParseTheoremError{Kind: "SizeMismatch", Msg: "closed-hint block has a different size"}
		}
		sum := 0
		for _, h := range cHints {
			sum += int(h.Hint)
		}
		closed = &ClosedHint{Sum: sum, Patterns: cHints}
	}

	return &Theorem{
		Size:        mSize,
		HintMatcher: mHints,
		EdgeMatcher: mEdges,
		Result:      rEdges,
		ClosedHint:  closed,
	}, nil
}

// ParseTheoremFile parses a file containing one or more theorem
// definitions, each separated from the next by one or more blank lines,
// matching how the built-in corpus lays its entries out.
func ParseTheoremFile(text string) ([]*Theorem, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	var blocks [][]string
	var cur []string
	for _, l := range strings.Split(text, "\n") {
		if strings.TrimSpace(l) == "" {
			if len(cur) > 0 {
				blocks = append(blocks, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, l)
	}
	if len(cur) > 0 {
		blocks = append(blocks, cur)
	}

	theorems := make([]*Theorem, 0, len(blocks))
	for _, block := range blocks {
		th, err := ParseTheorem(strings.Join(block, "\n"))
		if err != nil {
			return nil, err
		}
		theorems = append(theorems, th)
	}
	return theorems, nil
}
