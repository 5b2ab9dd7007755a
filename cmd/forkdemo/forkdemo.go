package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"text/tabwriter"
	"time"

	"github.com/hexchain/forkchain/pkg/chain"
	"github.com/urfave/cli"
)

func run(c *cli.Context) error {
	if c.Uint64("divisor") == 0 {
		return fmt.Errorf("divisor must be positive")
	}

	cfg := chain.Config{
		Threshold:       chain.MaxHash / chain.Hash(c.Uint64("divisor")),
		ForkHeight:      c.Uint64("fork-height"),
		MaxMineAttempts: c.Int("max-attempts"),
	}

	seed := c.Int64("seed")
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	hasher := chain.NewCachingHasher(chain.SHA3Hasher{}, 1024)
	miner := chain.NewMiner(cfg, hasher, rand.New(rand.NewSource(seed)))

	prefix, even, odd, err := chain.BuildContentiousFork(context.Background(), miner, c.Int("suffix-len"))
	if err != nil {
		return err
	}

	v := chain.NewValidator(cfg, hasher)
	policies := []chain.Policy{
		chain.NewThresholdPolicy(v),
		chain.NewEvenAfterFork(v),
		chain.NewOddAfterFork(v),
	}

	g := prefix[0]
	evenChain := append(append([]*chain.Header{}, prefix[1:]...), even...)
	oddChain := append(append([]*chain.Header{}, prefix[1:]...), odd...)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "policy\teven chain\todd chain")
	for _, p := range policies {
		fmt.Fprintf(w, "%s\t%v\t%v\n",
			p.Name(),
			chain.VerifySubChain(g, evenChain, p),
			chain.VerifySubChain(g, oddChain, p),
		)
	}
	err = w.Flush()
	if err != nil {
		return err
	}

	if c.Bool("dot") {
		fmt.Println(chain.RenderForkDot(hasher, prefix, even, odd))
	}

	return nil
}

func main() {
	app := cli.NewApp()
	app.Name = "forkdemo"
	app.Usage = "mine a contentious fork and verify it under each policy"
	app.Flags = []cli.Flag{
		cli.Uint64Flag{
			Name:  "divisor",
			Usage: "proof of work threshold as a fraction of the digest range, 100 accepts 1 in 100 digests",
			Value: 100,
		},
		cli.Uint64Flag{
			Name:  "fork-height",
			Usage: "height after which the partisan policies apply",
			Value: 2,
		},
		cli.IntFlag{
			Name:  "suffix-len",
			Usage: "blocks to mine on each side of the fork",
			Value: 2,
		},
		cli.IntFlag{
			Name:  "max-attempts",
			Usage: "cap on nonce attempts per block, 0 for unbounded",
		},
		cli.Int64Flag{
			Name:  "seed",
			Usage: "random seed, 0 picks one from the clock",
		},
		cli.BoolFlag{
			Name:  "dot",
			Usage: "print the fork as a Graphviz digraph",
		},
	}
	app.Action = run

	err := app.Run(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
