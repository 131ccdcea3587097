package usecase

import (
	"fmt"
	"sort"
	"strings"

	"code-refactor-insight/internal/model"
)

// Render formats a report as the plain-text body shown in the channel.
func Render(r model.Report) string {
	var b strings.Builder

	b.WriteString(HeaderCommits)
	b.WriteString("\n\n")
	if r.CommitsStatus == model.SectionOK {
		for _, c := range r.Commits {
			fmt.Fprintf(&b, "- [%s] %s by %s\n", c.ShortSHA(), firstLine(c.Message), c.Author)
		}
	} else {
		fmt.Fprintf(&b, "- %s\n", r.CommitsNote)
	}

	b.WriteString("\n")
	b.WriteString(HeaderMetrics)
	b.WriteString("\n")
	if r.MetricsStatus == model.SectionOK {
		keys := make([]string, 0, len(r.Metrics))
		for k := range r.Metrics {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, "- %s: %s\n", metricLabel(k), r.Metrics[k])
		}
	} else {
		fmt.Fprintf(&b, "- %s\n", r.MetricsNote)
	}

	return strings.TrimRight(b.String(), "\n")
}

// metricLabel turns "code_smells" into "Code Smells".
func metricLabel(key string) string {
	words := strings.Split(key, "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
