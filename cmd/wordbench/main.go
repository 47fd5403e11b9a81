// Command wordbench times word lookups in a plain slice and in binary
// search trees built from the same words in different orders.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/openacid/testkeys"
	"github.com/sirupsen/logrus"

	bst "github.com/e11jah/linkedbst"
)

var log = logrus.New()

type config struct {
	words      string
	asset      string
	limit      int
	iterations int
	seed       int64
	verbose    bool
}

func main() {
	var cfg config
	flag.StringVar(&cfg.words, "words", "", "path to a file with one word per line")
	flag.StringVar(&cfg.asset, "asset", "1mvl5_10", "testkeys word set used when -words is empty")
	flag.IntVar(&cfg.limit, "limit", 20000, "maximum number of words to load, 0 for all")
	flag.IntVar(&cfg.iterations, "iterations", 10000, "lookups per phase")
	flag.Int64Var(&cfg.seed, "seed", time.Now().UnixNano(), "seed for shuffling and picking words")
	flag.BoolVar(&cfg.verbose, "v", false, "log tree internals")
	flag.Parse()

	if err := run(cfg); err != nil {
		log.WithError(err).Fatal("wordbench failed")
	}
}

func run(cfg config) error {
	if cfg.verbose {
		log.SetLevel(logrus.DebugLevel)
		bst.Log.SetLevel(logrus.DebugLevel)
	}

	words, err := loadWords(cfg)
	if err != nil {
		return err
	}
	if len(words) == 0 {
		return fmt.Errorf("no words loaded")
	}
	log.WithFields(logrus.Fields{"words": len(words), "seed": cfg.seed}).Info("loaded")

	rnd := rand.New(rand.NewSource(cfg.seed))
	pick := func() string { return words[rnd.Intn(len(words))] }

	phase(cfg, "list", func() {
		slices.Index(words, pick())
	})

	sequential := bst.New(words...)
	log.WithFields(logrus.Fields{"height": sequential.Height(), "balanced": sequential.IsBalanced()}).Debug("sequential tree")
	phase(cfg, "sequential tree", func() {
		sequential.FindIterative(pick())
	})

	shuffled := slices.Clone(words)
	rnd.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	random := bst.New(shuffled...)
	log.WithFields(logrus.Fields{"height": random.Height(), "balanced": random.IsBalanced()}).Debug("shuffled tree")
	phase(cfg, "shuffled tree", func() {
		random.FindIterative(pick())
	})

	random.Rebalance()
	phase(cfg, "balanced tree", func() {
		random.FindIterative(pick())
	})
	return nil
}

func phase(cfg config, name string, lookup func()) {
	start := time.Now()
	for i := 0; i < cfg.iterations; i++ {
		lookup()
	}
	log.WithFields(logrus.Fields{
		"phase":      name,
		"iterations": cfg.iterations,
		"elapsed":    time.Since(start),
	}).Info("searched")
}

func loadWords(cfg config) ([]string, error) {
	var words []string
	if cfg.words == "" {
		words = testkeys.Load(cfg.asset)
	} else {
		f, err := os.Open(cfg.words)
		if err != nil {
			return nil, fmt.Errorf("open word list: %w", err)
		}
		defer f.Close()

		sc := bufio.NewScanner(f)
		for sc.Scan() {
			words = append(words, strings.TrimSpace(sc.Text()))
		}
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("read word list: %w", err)
		}
	}

	if cfg.limit > 0 && len(words) > cfg.limit {
		words = words[:cfg.limit]
	}
	return words, nil
}
