// Command spanscan runs the span search kernels over command-line input.
//
// Usage:
//
//	$ spanscan index --input 'hello world' o
//	OP      NEEDLE   INDEX   END
//	index   "o"      4       5
//
//	$ spanscan index --seq --input 'GET /x HTTP/1.1' GET POST
//	$ spanscan --output yaml compare abc abd
//	$ spanscan --no-accel --verbose info
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
