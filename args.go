package main

// entrypointArguments drops the executable name from argv and returns a copy
// of the rest, in order and unmodified.
func entrypointArguments(argv []string) []string {
	if len(argv) <= 1 {
		return []string{}
	}
	args := make([]string, len(argv)-1)
	copy(args, argv[1:])
	return args
}
