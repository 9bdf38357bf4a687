// Command radixset-check loads a newline-delimited file of keys into a
// Tree, then checks a second newline-delimited file of queries against
// it, printing True or False for each line in order.
//
// It mirrors the load-then-check driver the reference implementation
// this package is modeled on ships as its own test harness, trading
// its mmap-based key loading for plain buffered scanning.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/flier/radixset"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s <keys-file> <check-file>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}

	tr := radixset.New()
	defer tr.Destroy()

	if err := loadKeys(tr, flag.Arg(0)); err != nil {
		log.Fatalf("radixset-check: loading keys: %v", err)
	}

	if err := checkKeys(tr, flag.Arg(1), os.Stdout); err != nil {
		log.Fatalf("radixset-check: checking keys: %v", err)
	}
}

// loadKeys inserts every line of path into tr.
func loadKeys(tr *radixset.Tree, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		tr.Insert(scanner.Bytes())
	}

	return scanner.Err()
}

// checkKeys reads each line of path and writes "True" or "False" to w
// depending on whether that line is present in tr.
func checkKeys(tr *radixset.Tree, path string, w *os.File) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	out := bufio.NewWriter(w)
	defer out.Flush()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		if tr.Search(scanner.Bytes()) {
			fmt.Fprintln(out, "True")
		} else {
			fmt.Fprintln(out, "False")
		}
	}

	return scanner.Err()
}
