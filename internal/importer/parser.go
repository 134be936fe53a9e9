// Package importer turns a plain text exercise list (the .txt files lifters
// keep their programs in) into exercise drafts for a training day.
package importer

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	DefaultSets        = 3
	DefaultReps        = "8-10"
	DefaultRestSeconds = 60
	// simple format lines without an NxM pattern
	defaultWorkingSets = "3x8-10"
	// block format fields are searched in this many lines after the header
	blockLookahead = 5
)

var (
	setsCountRegex   = regexp.MustCompile(`(\d+)x`)
	blockHeaderRegex = regexp.MustCompile(`(?i)exercício:|exercise:`)
	weightCleanRegex = regexp.MustCompile(`[^\d.,]`)
)

// Draft is one parsed exercise, not yet bound to a training day.
// Set fields keep the lifter's notation, e.g. "2x12" or "1x6-8".
type Draft struct {
	Name        string   `json:"name"`
	WarmupSets  string   `json:"warmupSets,omitempty"`
	PrepSets    string   `json:"prepSets,omitempty"`
	WorkingSets string   `json:"workingSets"`
	WorkingReps string   `json:"workingReps"`
	WeightKg    *float64 `json:"weightKg,omitempty"`
}

// Sets is the total number of sets the draft describes.
func (d Draft) Sets() int {
	return TotalSets(d.WarmupSets, d.PrepSets, d.WorkingSets)
}

// Reps falls back to DefaultReps when the working reps are missing.
func (d Draft) Reps() string {
	if d.WorkingReps == "" {
		return DefaultReps
	}
	return d.WorkingReps
}

// TotalSets adds up the leading set counts ("3x..") of the given notations.
// Notations without a count contribute nothing, an overall 0 becomes DefaultSets.
func TotalSets(notations ...string) int {
	total := 0
	for _, n := range notations {
		if n == "" || n == "-" {
			continue
		}
		m := setsCountRegex.FindStringSubmatch(n)
		if m == nil {
			continue
		}
		count, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		total += count
	}
	if total == 0 {
		return DefaultSets
	}
	return total
}

// Parse reads the exercises out of text. Three layouts are understood, and can be mixed:
//
//	Supino reto | 2x12 | 1x6 | 3x8 | 8-10
//
//	Exercise: Squat
//	Warmup: 2x10
//	Working: 4x6
//	Reps: 6
//	Weight: 100 kg
//
//	Deadlift
//	3x5
//
// Lines that fit none of them are skipped.
func Parse(text string) []Draft {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}

	var drafts []Draft
	for i := 0; i < len(lines); i++ {
		line := lines[i]
		lower := strings.ToLower(line)

		switch {
		case strings.Contains(line, "|"):
			if d, ok := parsePipeLine(line); ok {
				drafts = append(drafts, d)
			}
		case blockHeaderRegex.MatchString(lower):
			end := i + 1
			for end < len(lines) && end <= i+blockLookahead && !startsLayout(lines[end]) {
				end++
			}
			if d, ok := parseBlock(line, lines[i+1:end]); ok {
				drafts = append(drafts, d)
			}
		case !strings.Contains(line, ":") && i+1 < len(lines):
			next := lines[i+1]
			if startsLayout(next) {
				continue
			}
			if !strings.Contains(next, "x") && !strings.Contains(next, "séries") && !strings.Contains(next, "sets") {
				continue
			}
			drafts = append(drafts, parseSimple(line, next))
			// the sets line is consumed
			i++
		}
	}

	return drafts
}

// startsLayout reports whether line opens a pipe or block exercise of its own.
func startsLayout(line string) bool {
	return strings.Contains(line, "|") || blockHeaderRegex.MatchString(line)
}

func parsePipeLine(line string) (Draft, bool) {
	parts := strings.Split(line, "|")
	if len(parts) < 5 {
		return Draft{}, false
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return Draft{
		Name:        parts[0],
		WarmupSets:  dashAsEmpty(parts[1]),
		PrepSets:    dashAsEmpty(parts[2]),
		WorkingSets: parts[3],
		WorkingReps: parts[4],
	}, true
}

func parseBlock(header string, following []string) (Draft, bool) {
	d := Draft{
		Name: strings.TrimSpace(blockHeaderRegex.ReplaceAllString(header, "")),
	}

	for _, line := range following {
		lower := strings.ToLower(line)
		value := fieldValue(line)
		if strings.Contains(lower, "aquecimento:") || strings.Contains(lower, "warmup:") {
			d.WarmupSets = value
		}
		if strings.Contains(lower, "preparatórias:") || strings.Contains(lower, "prep:") {
			d.PrepSets = value
		}
		if strings.Contains(lower, "valendo:") || strings.Contains(lower, "working:") {
			d.WorkingSets = value
		}
		if strings.Contains(lower, "repetições:") || strings.Contains(lower, "reps:") {
			d.WorkingReps = value
		}
		if strings.Contains(lower, "peso:") || strings.Contains(lower, "weight:") {
			if w, ok := parseWeight(value); ok {
				d.WeightKg = &w
			}
		}
	}

	return d, d.WorkingSets != "" && d.WorkingReps != ""
}

func parseSimple(name, setsLine string) Draft {
	d := Draft{
		Name:        name,
		WorkingSets: defaultWorkingSets,
		WorkingReps: DefaultReps,
	}
	if !strings.Contains(setsLine, "x") {
		return d
	}

	d.WorkingSets, _, _ = strings.Cut(setsLine, " ")
	_, afterX, _ := strings.Cut(setsLine, "x")
	afterX, _, _ = strings.Cut(afterX, "x")
	if reps, _, _ := strings.Cut(afterX, " "); reps != "" {
		d.WorkingReps = reps
	}
	return d
}

// fieldValue returns the text between the first and the second colon.
func fieldValue(line string) string {
	parts := strings.Split(line, ":")
	if len(parts) < 2 {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func parseWeight(s string) (float64, bool) {
	cleaned := strings.Replace(weightCleanRegex.ReplaceAllString(s, ""), ",", ".", 1)
	if cleaned == "" {
		return 0, false
	}
	w, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return w, true
}

func dashAsEmpty(s string) string {
	if s == "-" {
		return ""
	}
	return s
}
