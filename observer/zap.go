// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package observer

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"code.hybscloud.com/transduce"
)

type zapObserver struct {
	logger *zap.Logger
	level  zapcore.Level
}

func (o zapObserver) Observe(tag string, event string, values ...any) {
	ce := o.logger.Check(o.level, Message)
	if ce == nil {
		return
	}
	ce.Write(
		zap.String(FieldTag, tag),
		zap.String(FieldEvent, event),
		zap.Strings(FieldValues, render(values)),
	)
}

// Zap returns an Observer that writes one entry at level to logger per
// call. A nil logger discards.
func Zap(logger *zap.Logger, level zapcore.Level) transduce.Observer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return zapObserver{logger: logger, level: level}
}
