// Command scanex explores scanfmt interactively: each line of standard
// input is scanned against a format string, printing the values filled,
// the remaining input, and any error.
//
//	$ echo '12 3.5 word' | scanex -f '{} {} {}' -t dfs
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/jcorbin/scanfmt"
)

func main() {
	var (
		format  = flag.String("f", "{}", "format string to scan each line with")
		types   = flag.String("t", "d", "argument types, one letter each: d i u x f s c b")
		scanf   = flag.Bool("scanf", false, "use scanf-style directive syntax")
		verbose = flag.Bool("v", false, "enable verbose output")
	)
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("> log: ")

	targets, err := makeTargets(*types)
	if err != nil {
		log.Fatal(err)
	}

	n := 0
	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		n++

		var res scanfmt.Result
		if *scanf {
			res = scanfmt.Scanf(sc.Bytes(), *format, targets...)
		} else {
			res = scanfmt.Scan(sc.Bytes(), *format, targets...)
		}

		fmt.Printf("%v. scanned %v/%v args:", n, res.Count(), len(targets))
		for _, t := range targets[:res.Count()] {
			fmt.Printf(" %v", deref(t))
		}
		fmt.Println()

		if rest, ok := res.Remaining(); ok && (*verbose || len(rest) > 0) {
			fmt.Printf("   rest: %q\n", rest)
		}
		if err := res.Err(); err != nil {
			fmt.Printf("   error: %v (%v)\n", err, res.Kind())
		}
	}
	if err := sc.Err(); err != nil {
		log.Fatalf("stdin read error: %v", err)
	}
}

func makeTargets(types string) ([]any, error) {
	targets := make([]any, 0, len(types))
	for _, t := range types {
		switch t {
		case 'd', 'i', 'x':
			targets = append(targets, new(int))
		case 'u':
			targets = append(targets, new(uint))
		case 'f':
			targets = append(targets, new(float64))
		case 's':
			targets = append(targets, new(string))
		case 'c':
			targets = append(targets, new(rune))
		case 'b':
			targets = append(targets, new(bool))
		default:
			return nil, fmt.Errorf("unknown target type %q", t)
		}
	}
	return targets, nil
}

func deref(t any) any {
	switch p := t.(type) {
	case *int:
		return *p
	case *uint:
		return *p
	case *float64:
		return *p
	case *string:
		return *p
	case *rune:
		return string(*p)
	case *bool:
		return *p
	}
	return t
}
