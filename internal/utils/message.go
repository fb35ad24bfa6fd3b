package utils

import (
	"fmt"
	"strings"
)

const messagePlaceholder = "{}"

// FormatMessage substitutes every "{}" placeholder of template with the next
// value of args, formatted with fmt.Sprint.
//
// Placeholders without a matching argument are kept verbatim and surplus
// arguments are ignored:
//
//	FormatMessage("event {} has {} seats left", 7, 3) // "event 7 has 3 seats left"
//	FormatMessage("event {} not found")               // "event {} not found"
func FormatMessage(template string, args ...any) string {
	if len(args) == 0 || !strings.Contains(template, messagePlaceholder) {
		return template
	}

	var b strings.Builder
	b.Grow(len(template) + 16*len(args))

	rest := template
	for _, arg := range args {
		idx := strings.Index(rest, messagePlaceholder)
		if idx < 0 {
			break
		}
		b.WriteString(rest[:idx])
		b.WriteString(fmt.Sprint(arg))
		rest = rest[idx+len(messagePlaceholder):]
	}
	b.WriteString(rest)

	return b.String()
}
