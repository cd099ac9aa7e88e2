package contract

import _ "embed"

// SampleText is a sample software license and services agreement used by the
// CLI's --sample flag and by the extraction smoke tests.
//
//go:embed testdata/sample_agreement.txt
var SampleText string
