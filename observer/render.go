// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package observer

import "fmt"

func render(values []any) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = fmt.Sprint(v)
	}
	return out
}

// Field names shared by the structured sinks.
const (
	FieldTag    = "tag"
	FieldEvent  = "event"
	FieldValues = "values"
)

// Message is the log message of every zerolog and zap entry.
const Message = "transduce"
