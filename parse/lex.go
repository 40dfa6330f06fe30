//go:build linux || darwin

package parse

import "github.com/google/shlex"

// Split tokenizes a command line using POSIX shell word-splitting rules
func Split(s string) ([]string, error) {
	args, err := shlex.Split(s)
	if err != nil {
		return nil, err
	}

	return args, nil
}
