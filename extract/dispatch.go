package extract

import (
	"log"
	"os"
	"path/filepath"

	"cfreport/variant"

	"golang.org/x/sync/errgroup"
)

// maxWorkers caps the number of files extracted concurrently.
const maxWorkers = 48

// GoExtractAll runs fn once per input file with bounded concurrency and merges
// the owned fragments into read-only result maps after all workers join. A
// worker panic (unreadable file, failed annotator run) is contained to that
// worker: its sample is logged and omitted while siblings complete normally.
// The second return value holds fusion control probe records, keyed the same way.
func GoExtractAll(files []string, fn func(file string) Fragment) (variant.Results, variant.Results) {
	fragments := make(chan Fragment, len(files))
	g := new(errgroup.Group)
	g.SetLimit(maxWorkers)
	for i := range files {
		file := files[i]
		g.Go(func() error {
			defer func() {
				if r := recover(); r != nil {
					log.Printf("WARNING: skipping %s: %v\n", file, r)
				}
			}()
			if _, err := os.Stat(file); err != nil {
				log.Printf("WARNING: skipping %s: %v\n", file, err)
				return nil
			}
			fragments <- fn(file)
			return nil
		})
	}
	_ = g.Wait()
	close(fragments)

	results := make(variant.Results)
	controls := make(variant.Results)
	from := make(map[variant.Sample]string)
	for frag := range fragments {
		if frag.Sample.Name == "" {
			frag.Sample.Name = filepath.Base(frag.File)
		}
		if prev, collides := from[frag.Sample]; collides {
			log.Printf("WARNING: %s and %s resolve to the same sample %q; keeping records from %s\n", prev, frag.File, frag.Sample.Name, frag.File)
		}
		from[frag.Sample] = frag.File
		results[frag.Sample] = frag.Records
		if len(frag.Controls) > 0 {
			controls[frag.Sample] = frag.Controls
		}
	}
	return results, controls
}
