package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/scottcagno/hashmaps"
	"github.com/scottcagno/hashmaps/pkg/hashmap"
	"github.com/scottcagno/hashmaps/pkg/hashmap/sharded"
)

var (
	loadConfigFile string
	loadGets       []string

	loadCmd = &cobra.Command{
		Use:   "load [files...]",
		Short: "Count the words of the given files (or stdin) into a hash map",
		RunE:  execLoad,
	}
)

func init() {
	configFlags(loadCmd, &loadConfigFile)
	loadCmd.Flags().StringSliceVar(&loadGets, "get", nil, "Keys to look up once loading is done")
}

// table is the part of a map the report needs
type table interface {
	Get(key string) (int, bool)
	Len() int
	Cap() int
	TableLoad() float64
	EmptyBuckets() int
}

// incrFunc adds one to the count stored under word
type incrFunc func(word string)

func mapIncr(m hashmap.Map[int]) incrFunc {
	return func(word string) {
		count, _ := m.Get(word)
		m.Put(word, count+1)
	}
}

func shardedIncr(m *sharded.ShardedHashMap[int]) incrFunc {
	return func(word string) {
		m.Update(word, func(count int, _ bool) int {
			return count + 1
		})
	}
}

func execLoad(cmd *cobra.Command, args []string) error {
	conf, err := loadConfig(cmd, loadConfigFile)
	if err != nil {
		return err
	}

	var t table
	var incr incrFunc
	concurrent := conf.Shards > 0
	if concurrent {
		m, err := hashmaps.NewSharded[int](conf)
		if err != nil {
			return err
		}
		t, incr = m, shardedIncr(m)
	} else {
		m, err := hashmaps.New[int](conf)
		if err != nil {
			return err
		}
		t, incr = m, mapIncr(m)
	}

	var words int
	start := time.Now()
	if len(args) == 0 {
		words, err = countWords(incr, cmd.InOrStdin())
	} else {
		words, err = countFiles(incr, args, concurrent)
	}

	log.Info().
		Str("strategy", conf.Strategy.String()).
		Str("hash", conf.Hash).
		Uint("shards", conf.Shards).
		Int("words", words).
		Int("distinct", t.Len()).
		Dur("elapsed", time.Since(start)).
		Msg("Loaded words")

	report(cmd.OutOrStdout(), conf, t, words)
	return err
}

// countFiles counts the words of every file, one goroutine per file when
// concurrent is set. A file that cannot be read does not stop the others;
// all failures are returned together.
func countFiles(incr incrFunc, paths []string, concurrent bool) (int, error) {
	var (
		mu    sync.Mutex
		wg    sync.WaitGroup
		total int
		errs  error
	)
	count := func(path string) {
		n, err := countFile(incr, path)
		if err != nil {
			log.Warn().Err(err).Str("file", path).Msg("Failed to load file")
		}
		mu.Lock()
		total += n
		errs = multierr.Append(errs, err)
		mu.Unlock()
	}
	for _, path := range paths {
		if !concurrent {
			count(path)
			continue
		}
		wg.Add(1)
		go func(path string) {
			defer wg.Done()
			count(path)
		}(path)
	}
	wg.Wait()
	return total, errs
}

func countFile(incr incrFunc, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()
	n, err := countWords(incr, f)
	return n, errors.Wrapf(err, "reading %s", path)
}

// countWords counts every whitespace separated word read from r and returns
// how many words it read
func countWords(incr incrFunc, r io.Reader) (int, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	var n int
	for sc.Scan() {
		incr(sc.Text())
		n++
	}
	return n, sc.Err()
}

func report(w io.Writer, conf *hashmaps.Config, t table, words int) {
	_, _ = fmt.Fprintf(w, "strategy:      %s\n", conf.Strategy)
	_, _ = fmt.Fprintf(w, "hash:          %s\n", conf.Hash)
	if conf.Shards > 0 {
		_, _ = fmt.Fprintf(w, "shards:        %d\n", conf.Shards)
	}
	_, _ = fmt.Fprintf(w, "words:         %s\n", humanize.Comma(int64(words)))
	_, _ = fmt.Fprintf(w, "distinct:      %s\n", humanize.Comma(int64(t.Len())))
	_, _ = fmt.Fprintf(w, "capacity:      %s\n", humanize.Comma(int64(t.Cap())))
	_, _ = fmt.Fprintf(w, "load:          %.2f\n", t.TableLoad())
	_, _ = fmt.Fprintf(w, "empty buckets: %s\n", humanize.Comma(int64(t.EmptyBuckets())))
	if c, ok := t.(interface{ LongestChain() int }); ok {
		_, _ = fmt.Fprintf(w, "longest chain: %s\n", humanize.Comma(int64(c.LongestChain())))
	}
	for _, key := range loadGets {
		if count, ok := t.Get(key); ok {
			_, _ = fmt.Fprintf(w, "get %s:       %s\n", key, humanize.Comma(int64(count)))
			continue
		}
		_, _ = fmt.Fprintf(w, "get %s:       absent\n", key)
	}
}
