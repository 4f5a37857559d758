package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"shuuro-engine/shuuro"
)

func main() {
	sfen := flag.String("sfen", shuuro.StartSFEN12, "position in SFEN form")
	variant := flag.String("variant", "shuuro", "variant: shuuro, shuurofairy, shuuromini, standard")
	depth := flag.Int("depth", 0, "perft depth (required)")
	divide := flag.Bool("divide", false, "print per-move node counts at root")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	v, err := shuuro.ParseVariant(*variant)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	pos, err := shuuro.ParseSFEN(*sfen, v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ParseSFEN error: %v\n", err)
		os.Exit(2)
	}
	if pos.Phase() != shuuro.PhasePlay {
		fmt.Fprintln(os.Stderr, "position is not in the play phase")
		os.Exit(2)
	}

	if *divide {
		div := shuuro.PerftDivide(pos, *depth)
		type kv struct {
			m shuuro.NormalMove
			n uint64
		}
		arr := make([]kv, 0, len(div))
		var sum uint64
		for m, n := range div {
			arr = append(arr, kv{m, n})
			sum += n
		}
		g := pos.Geometry()
		sort.Slice(arr, func(i, j int) bool { return arr[i].m.Format(g) < arr[j].m.Format(g) })
		for _, x := range arr {
			fmt.Printf("%s: %d\n", x.m.Format(g), x.n)
		}
		fmt.Printf("Total: %d\n", sum)
		return
	}

	start := time.Now()
	nodes := shuuro.Perft(pos, *depth)
	elapsed := time.Since(start)
	fmt.Printf("depth %d \t%d nodes \t%s \t%.0f nps\n",
		*depth, nodes, elapsed, float64(nodes)/elapsed.Seconds())
}
