package summary

import "strconv"

func fmtInt(value int) string {
	return strconv.Itoa(value)
}

// formatPrevious reports a file's status in the previous run, or "new".
func formatPrevious(statuses map[string]string, name string) string {
	if status, ok := statuses[name]; ok {
		return status
	}
	return "new"
}
