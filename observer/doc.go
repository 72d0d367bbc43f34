// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package observer provides [transduce.Observer] sinks for [transduce.Debug].
//
// Sinks:
//
//   - [Zerolog]: one zerolog event per reducer call
//   - [Zap]: one zap entry per reducer call
//   - [Span]: one OpenTelemetry span event per reducer call
//   - [Counter]: an OpenTelemetry counter of reducer calls by tag and event
//   - [Recorder]: in-memory capture
//
// [Multi] fans one event out to several sinks and [Correlated] stamps every
// event with a run id. [LoadConfig] and [New] build a sink from viper
// configuration under the key [ConfigKey].
//
// Values are rendered with fmt.Sprint before they reach a structured sink.
package observer
