// Package main is the batch data-reduction CLI.
//
// It reads YAML or TOML worksheets of named measurements and prints each
// reduced quantity on its own line:
//
//	$ reduce lab.yaml
//	period: mean: 10, uncertainty: 0.2181..., relativeUncertainty: 0.0218...
//
// Flags:
//   - --divisor: confidence divisor for sheets without one
//   - --dev: development logging
//
// Exit status is 1 when any measurement fails to reduce.
package main
