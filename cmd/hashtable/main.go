// Command hashtable builds a hash table from command line options and lets
// you insert and search keys interactively, from a script or in bulk.
//
//	hashtable --ts 100 --fd 1 --hash open
//	hashtable --ts 150 --fd 2 --hash close --bs 3 --fe 2
//	hashtable --ts 200 --fd 3 --hash close --bs 4 --fe 3 script ops.txt
//	hashtable --ts 1031 --fd 4 --hash close --bs 8 --fe 1 fill 5000
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
