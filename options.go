package shtest

import "shtest/internal/domain"

type options struct {
	verbosity domain.Verbosity
	help      bool
}

// parseArgs consumes flags left to right. Unknown tokens are ignored, the
// last verbosity flag wins, and -h stops processing immediately.
func parseArgs(args []string) options {
	opts := options{verbosity: domain.Normal}
	for _, arg := range args {
		switch arg {
		case "-v", "--verbose":
			opts.verbosity = domain.Verbose
		case "-s", "--summary":
			opts.verbosity = domain.Summary
		case "-q", "--quiet":
			opts.verbosity = domain.Quiet
		case "-h", "--help":
			opts.help = true
			return opts
		}
	}
	return opts
}
