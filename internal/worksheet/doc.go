// Package worksheet reduces a file of named measurements to quantities.
//
// A worksheet is YAML or TOML with a "measurements" list. Each entry gives
// raw samples, a summary (mean, n, sigma), a mean with a known uncertainty,
// a single instrument reading, or an exact constant:
//
//	measurements:
//	  - name: period
//	    samples: [9.8, 9.9, 10.0, 10.1, 10.2]
//	    tolerance: 0.1
//	  - name: g
//	    constant: 9.81
package worksheet
