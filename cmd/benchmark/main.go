// Command benchmark runs a naive []int64 implementation and an
// indexedsumtree.Tree[int64] against the same randomized workload and
// prints the millisecond timing of each round. It takes no flags: the
// workload shape is read from an optional benchmark.toml in the working
// directory, falling back to built-in defaults.
package main

import (
	"fmt"
	"time"

	ist "github.com/divyanshvinayak/indexedsumtree"
)

func main() {
	cfg, err := loadConfig("benchmark.toml")
	if err != nil {
		fmt.Println("error loading config:", err.Error())
		return
	}

	for i := 0; i < cfg.Iterations; i++ {
		if err := runRound(cfg, i); err != nil {
			fmt.Println("error encountered during round:", err.Error(), ", aborting...")
			return
		}
	}
}

func runRound(cfg *benchmarkConfig, iteration int) error {
	r := newRand()
	seed := genSeed(r, cfg.N)
	plan := genPlan(r, cfg.N, cfg.M)

	naiveStart := time.Now()
	seq := newNaiveSeq(seed)
	runNaive(seq, plan)
	naiveDur := time.Since(naiveStart)

	treeStart := time.Now()
	tree, err := buildTree(seed)
	if err != nil {
		return err
	}
	if err := runTree(tree, plan); err != nil {
		return err
	}
	treeDur := time.Since(treeStart)

	fmt.Println(
		"\n====================",
		"\n====", cfg.Name,
		"\nIteration:", iteration,
		"\nElements:", cfg.N, "Ops:", cfg.M,
		"\nNaive duration:", fmt.Sprintf("%.3fms", float64(naiveDur)/float64(time.Millisecond)),
		"\nTree duration:", fmt.Sprintf("%.3fms", float64(treeDur)/float64(time.Millisecond)),
		"\n====================",
	)
	return nil
}

func buildTree(seed []int64) (*ist.Tree[int64], error) {
	tree := ist.New[int64]()
	for i, v := range seed {
		if err := tree.Insert(i+1, v); err != nil {
			return nil, err
		}
	}
	return tree, nil
}

func runNaive(seq *naiveSeq, plan []op) {
	for _, o := range plan {
		switch o.kind {
		case opUpdate:
			seq.update(o.lo, o.hi, o.diff)
		case opInsert:
			seq.insert(o.pos, o.diff)
		case opDelete:
			seq.erase(o.pos)
		}
	}
}

func runTree(tree *ist.Tree[int64], plan []op) error {
	for _, o := range plan {
		switch o.kind {
		case opUpdate:
			if err := tree.Update(o.lo, o.hi, o.diff); err != nil {
				return err
			}
		case opInsert:
			if err := tree.Insert(o.pos, o.diff); err != nil {
				return err
			}
		case opDelete:
			if err := tree.Erase(o.pos); err != nil {
				return err
			}
		}
	}
	return nil
}
