// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package observer

import (
	"github.com/google/uuid"

	"code.hybscloud.com/transduce"
)

// Correlation prefixes the values of every event with its run id.
type Correlation struct {
	ID   uuid.UUID
	next transduce.Observer
}

// Correlated wraps obs with a fresh random run id.
func Correlated(obs transduce.Observer) *Correlation {
	if obs == nil {
		obs = transduce.Discard
	}
	return &Correlation{ID: uuid.New(), next: obs}
}

// Observe implements transduce.Observer.
func (c *Correlation) Observe(tag string, event string, values ...any) {
	c.next.Observe(tag, event, append([]any{c.ID.String()}, values...)...)
}
