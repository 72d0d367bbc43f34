// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package transduce

import "errors"

// ErrNoIdentity is returned by Identity on a reducer that has no identity
// value. Entry points that take no explicit initial value ([TransduceLeft1],
// [TransduceRight1]) and [Categorising] completion surface it.
var ErrNoIdentity = errors.New("transduce: reducer has no identity")
