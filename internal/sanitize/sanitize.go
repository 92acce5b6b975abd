// Package sanitize applies a fixed HTML policy to publisher-supplied rich
// text before it is embedded in CDATA sections. Publisher records routinely
// contain pasted markup; the UGC policy keeps harmless formatting and strips
// everything else.
package sanitize

import "github.com/microcosm-cc/bluemonday"

var policy = bluemonday.UGCPolicy()

// HTML returns s with disallowed markup removed.
func HTML(s string) string {
	return policy.Sanitize(s)
}
