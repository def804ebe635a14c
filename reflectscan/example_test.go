package reflectscan_test

import (
	"fmt"
	"os"

	"github.com/jonwraymond/goinspect/docfmt"
	"github.com/jonwraymond/goinspect/reflectscan"
	"github.com/jonwraymond/goinspect/report"
)

// Greeter is a tiny demo type for the examples below.
type Greeter struct {
	Greeting string
}

// Hello greets name.
func (g Greeter) Hello(name string) string { return g.Greeting + ", " + name }

func ExampleScan() {
	v, err := reflectscan.Scan(Greeter{Greeting: "hi"})
	if err != nil {
		fmt.Println("scan:", err)
		return
	}

	opts := report.Options{Detail: docfmt.DetailLine, Width: 60, NameHint: "g"}
	if err := report.Fprint(os.Stdout, v, opts); err != nil {
		fmt.Println("render:", err)
	}
	// Output:
	// NAME = g / TYPE = reflectscan_test.Greeter
	// ROLE = <empty docstring>
	//
	// PROPERTIES
	// Greeting:string = "hi"
	//
	// METHODS
	// Hello : <empty docstring>
}

func ExampleScan_map() {
	v, err := reflectscan.Scan(map[string]any{
		"retries": 3,
		"verbose": false,
	})
	if err != nil {
		fmt.Println("scan:", err)
		return
	}

	opts := report.Options{Detail: docfmt.DetailLine, Width: 60, NameHint: "config"}
	if err := report.Fprint(os.Stdout, v, opts); err != nil {
		fmt.Println("render:", err)
	}
	// Output:
	// NAME = config / TYPE = map[string]interface {}
	// ROLE = <empty docstring>
	//
	// PROPERTIES
	// retries:interface {} = 3
	// verbose:interface {} = false
}
