// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package observer

import (
	"github.com/rs/zerolog"

	"code.hybscloud.com/transduce"
)

type zerologObserver struct {
	logger zerolog.Logger
	level  zerolog.Level
}

func (o zerologObserver) Observe(tag string, event string, values ...any) {
	e := o.logger.WithLevel(o.level)
	if !e.Enabled() {
		return
	}
	e.Str(FieldTag, tag).
		Str(FieldEvent, event).
		Strs(FieldValues, render(values)).
		Msg(Message)
}

// Zerolog returns an Observer that writes one event at level to logger
// per call.
func Zerolog(logger zerolog.Logger, level zerolog.Level) transduce.Observer {
	return zerologObserver{logger: logger, level: level}
}
