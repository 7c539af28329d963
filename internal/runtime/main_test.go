// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"os"
	"testing"

	"github.com/eventlOwOp/R-with-conda/internal/testutil"
)

func TestMain(m *testing.M) {
	testutil.RunHelperProcessIfRequested()
	os.Exit(m.Run())
}
