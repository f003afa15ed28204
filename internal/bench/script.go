package bench

import (
	"fmt"
	"strings"
)

// alfredApp is the scripting bridge identifier of the Alfred application.
const alfredApp = "com.runningwithcrayons.Alfred"

// KV is one configuration key/value pair set during a repetition.
type KV struct {
	Key   string
	Value string
}

// benchPairs generates the n throwaway key/value pairs a repetition sets.
// Keys are BENCH_<i>; values keep the historic VAL_SINGLE_<i> form for
// every strategy so runs remain comparable with old measurements.
func benchPairs(n int) []KV {
	pairs := make([]KV, 0, n)
	for i := 0; i < n; i++ {
		pairs = append(pairs, KV{
			Key:   fmt.Sprintf("BENCH_%d", i),
			Value: fmt.Sprintf("VAL_SINGLE_%d", i),
		})
	}
	return pairs
}

// SingleStatement builds one self-contained JXA statement that resolves
// Alfred and sets a single configuration value scoped to bundleID.
func SingleStatement(kv KV, bundleID string) string {
	return fmt.Sprintf(`Application('%s').setConfiguration('%s', {
    toValue: '%s',
    inWorkflow: '%s'
});
`, alfredApp, kv.Key, kv.Value, bundleID)
}

// BatchScript builds one script that binds the Alfred handle in a
// preamble and reuses it for every pair.
func BatchScript(pairs []KV, bundleID string) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "var alfred = Application('%s');\n", alfredApp)

	for _, kv := range pairs {
		fmt.Fprintf(&sb, `alfred.setConfiguration('%s', {
    toValue: '%s',
    inWorkflow: '%s'
});
`, kv.Key, kv.Value, bundleID)
	}

	return sb.String()
}

// BatchAltScript builds one script from independent single statements,
// each re-resolving the application, joined with newlines.
func BatchAltScript(pairs []KV, bundleID string) string {
	statements := make([]string, 0, len(pairs))
	for _, kv := range pairs {
		statements = append(statements, SingleStatement(kv, bundleID))
	}
	return strings.Join(statements, "\n")
}
