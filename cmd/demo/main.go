// Command demo builds a small NFA, converts it to a DFA, and prints both,
// as text and as Graphviz DOT. By default it uses a built-in automaton
// equivalent to the regular expression (aa|bb)*; pass -config to load a
// YAML automaton definition instead.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/comalice/automatax"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML automaton definition")
	dot := flag.Bool("dot", false, "print Graphviz DOT for the DFA instead of text")
	flag.Parse()

	nfa, err := buildNFA(*configPath)
	if err != nil {
		log.Fatalf("build NFA: %v", err)
	}

	fmt.Println("NFA:")
	fmt.Print(automatax.RenderText(nfa))

	nfa.BuildEpsilonClosure()
	dfa, err := automatax.ToDFA(nfa)
	if err != nil {
		log.Fatalf("convert to DFA: %v", err)
	}

	fmt.Println()
	fmt.Println("DFA:")
	if *dot {
		fmt.Print(automatax.ExportDOT(dfa))
	} else {
		fmt.Print(automatax.RenderText(dfa))
	}
}

func buildNFA(configPath string) (*automatax.NFA, error) {
	if configPath != "" {
		cfg, err := automatax.LoadConfigFile(configPath)
		if err != nil {
			return nil, err
		}
		return automatax.FromConfig(cfg)
	}

	// (aa|bb)*: X is initial, Y accepting. 5 and 6 are the star entry and
	// exit hubs; 5 -> 6 skips the body for zero repetitions, Y -> 5 repeats.
	return automatax.NewNFABuilder().
		Initial("X").
		Accepting("Y").
		Epsilon("X", "5").
		Epsilon("5", "1").
		Epsilon("5", "6").
		Transition("1", "a", "3").
		Transition("3", "a", "2").
		Transition("1", "b", "4").
		Transition("4", "b", "2").
		Epsilon("2", "6").
		Epsilon("6", "Y").
		Epsilon("Y", "5").
		Build()
}
