package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/timewinder-dev/rewinder/interp"
	"github.com/timewinder-dev/rewinder/vm"
)

var (
	file    = flag.String("file", "", "Program file, one instruction per line")
	forward = flag.Bool("forward-only", false, "Stop after running forward")
)

func main() {
	flag.Parse()
	if *file == "" {
		log.Fatal("--file is required")
	}
	ops, err := load(*file)
	if err != nil {
		log.Fatalf("couldn't load: %s", err)
	}
	in := interp.New()
	in.AddInstructions(ops...)
	trace(in, !*forward)
}

func load(path string) ([]vm.Op, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var ops []vm.Op
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		op, err := vm.ParseOp(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		ops = append(ops, op)
	}
	return ops, scanner.Err()
}

func trace(in *interp.Interpreter, rewind bool) {
	for {
		fmt.Println("*******")
		prettyPrint(in)
		if in.QueueLen() == 0 {
			fmt.Println("Finished")
			break
		}
		if _, err := in.Forward(); err != nil {
			fmt.Println("Got err:", err)
			break
		}
	}
	if !rewind {
		return
	}
	for in.HistoryLen() > 0 {
		if err := in.Back(); err != nil {
			log.Fatalln("Got err:", err)
		}
		fmt.Println("<<<<<<<")
		prettyPrint(in)
	}
	fmt.Println("Rewound")
}

func prettyPrint(in *interp.Interpreter) {
	fmt.Printf("Stack: %s\n", interp.FormatStack(in.Stack()))
	fmt.Printf("History: %d\n", in.HistoryLen())
	if op := in.Current(); op != nil {
		fmt.Printf("NextOp: %s\n", op)
	} else {
		fmt.Println("End of instructions")
	}
}
